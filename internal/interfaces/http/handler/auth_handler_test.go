package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/shopnet/backend/internal/application/identity"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/infrastructure/auth"
	"github.com/shopnet/backend/internal/infrastructure/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "shopnet-test",
	}
}

type authFixture struct {
	handler   *AuthHandler
	userRepo  *MockUserRepository
	tokenRepo *MockConfirmTokenRepository
	shopRepo  *MockShopRepository
	publisher *MockEventPublisher
	jwt       *auth.JWTService
}

func newAuthFixture() *authFixture {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockConfirmTokenRepository)
	shopRepo := new(MockShopRepository)
	publisher := new(MockEventPublisher)
	jwtService := auth.NewJWTService(testJWTConfig())

	userService := appidentity.NewUserService(userRepo, tokenRepo, shopRepo, publisher, zap.NewNop())
	authService := appidentity.NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())

	return &authFixture{
		handler:   NewAuthHandler(userService, authService),
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		shopRepo:  shopRepo,
		publisher: publisher,
		jwt:       jwtService,
	}
}

func activeUser(t *testing.T, email, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(email, password, "Ivan", "Petrov", identity.UserTypeBuyer)
	require.NoError(t, err)
	require.NoError(t, user.Activate())
	user.ClearDomainEvents()
	return user
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates a buyer account", func(t *testing.T) {
		f := newAuthFixture()
		engine := setupRouter(f.handler, uuid.Nil)

		f.userRepo.On("ExistsByEmail", mock.Anything, "ivan@example.com").Return(false, nil)
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)
		f.tokenRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.ConfirmEmailToken")).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		w := performRequest(engine, http.MethodPost, "/api/v1/user/register", map[string]any{
			"email":      "ivan@example.com",
			"password":   "secret1pass",
			"first_name": "Ivan",
			"last_name":  "Petrov",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeResponse(w)
		data := body["data"].(map[string]any)
		assert.Equal(t, "ivan@example.com", data["email"])
		assert.NotEmpty(t, data["id"])
		f.userRepo.AssertExpectations(t)
	})

	t.Run("rejects a malformed payload", func(t *testing.T) {
		f := newAuthFixture()
		engine := setupRouter(f.handler, uuid.Nil)

		w := performRequest(engine, http.MethodPost, "/api/v1/user/register", map[string]any{
			"email":    "not-an-email",
			"password": "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports a taken email", func(t *testing.T) {
		f := newAuthFixture()
		engine := setupRouter(f.handler, uuid.Nil)

		f.userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		w := performRequest(engine, http.MethodPost, "/api/v1/user/register", map[string]any{
			"email":      "taken@example.com",
			"password":   "secret1pass",
			"first_name": "Ivan",
			"last_name":  "Petrov",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_ConfirmEmail(t *testing.T) {
	f := newAuthFixture()
	engine := setupRouter(f.handler, uuid.Nil)

	user, err := identity.NewUser("ivan@example.com", "secret1pass", "Ivan", "Petrov", identity.UserTypeBuyer)
	require.NoError(t, err)
	user.ClearDomainEvents()
	token, err := identity.NewConfirmEmailToken(user.ID)
	require.NoError(t, err)

	f.userRepo.On("FindByEmail", mock.Anything, "ivan@example.com").Return(user, nil)
	f.tokenRepo.On("FindByUserAndKey", mock.Anything, user.ID, token.Key).Return(token, nil)
	f.userRepo.On("Update", mock.Anything, user).Return(nil)
	f.tokenRepo.On("DeleteByUser", mock.Anything, user.ID).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	w := performRequest(engine, http.MethodPost, "/api/v1/user/register/confirm", map[string]any{
		"email": "ivan@example.com",
		"token": token.Key,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, user.Active)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a token pair", func(t *testing.T) {
		f := newAuthFixture()
		engine := setupRouter(f.handler, uuid.Nil)

		user := activeUser(t, "ivan@example.com", "secret1pass")
		f.userRepo.On("FindByEmail", mock.Anything, "ivan@example.com").Return(user, nil)

		w := performRequest(engine, http.MethodPost, "/api/v1/user/login", map[string]any{
			"email":    "ivan@example.com",
			"password": "secret1pass",
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(w)
		data := body["data"].(map[string]any)
		assert.NotEmpty(t, data["access_token"])
		assert.NotEmpty(t, data["refresh_token"])
		assert.Equal(t, "Bearer", data["token_type"])
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		f := newAuthFixture()
		engine := setupRouter(f.handler, uuid.Nil)

		user := activeUser(t, "ivan@example.com", "secret1pass")
		f.userRepo.On("FindByEmail", mock.Anything, "ivan@example.com").Return(user, nil)

		w := performRequest(engine, http.MethodPost, "/api/v1/user/login", map[string]any{
			"email":    "ivan@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an unconfirmed account", func(t *testing.T) {
		f := newAuthFixture()
		engine := setupRouter(f.handler, uuid.Nil)

		user, err := identity.NewUser("ivan@example.com", "secret1pass", "Ivan", "Petrov", identity.UserTypeBuyer)
		require.NoError(t, err)
		user.ClearDomainEvents()
		f.userRepo.On("FindByEmail", mock.Anything, "ivan@example.com").Return(user, nil)

		w := performRequest(engine, http.MethodPost, "/api/v1/user/login", map[string]any{
			"email":    "ivan@example.com",
			"password": "secret1pass",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	f := newAuthFixture()
	engine := setupRouter(f.handler, uuid.Nil)

	user := activeUser(t, "ivan@example.com", "secret1pass")
	pair, err := f.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: string(user.Type),
	})
	require.NoError(t, err)

	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	w := performRequest(engine, http.MethodPost, "/api/v1/auth/refresh", map[string]any{
		"refresh_token": pair.RefreshToken,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(w)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
	assert.NotEqual(t, pair.AccessToken, data["access_token"])
}
