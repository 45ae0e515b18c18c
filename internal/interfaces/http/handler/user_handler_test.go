package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/shopnet/backend/internal/application/identity"
	"github.com/shopnet/backend/internal/domain/identity"
)

type userFixture struct {
	handler     *UserHandler
	userRepo    *MockUserRepository
	contactRepo *MockContactRepository
}

func newUserFixture() *userFixture {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockConfirmTokenRepository)
	shopRepo := new(MockShopRepository)
	contactRepo := new(MockContactRepository)
	publisher := new(MockEventPublisher)
	logger := zap.NewNop()

	userService := appidentity.NewUserService(userRepo, tokenRepo, shopRepo, publisher, logger)
	contactService := appidentity.NewContactService(contactRepo, logger)

	return &userFixture{
		handler:     NewUserHandler(userService, contactService),
		userRepo:    userRepo,
		contactRepo: contactRepo,
	}
}

func TestUserHandler_GetProfile(t *testing.T) {
	f := newUserFixture()

	user := activeUser(t, "ivan@example.com", "secret1pass")
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	w := performRequest(setupRouter(f.handler, user.ID), http.MethodGet, "/api/v1/user/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(w)["data"].(map[string]any)
	assert.Equal(t, "ivan@example.com", data["email"])
	assert.Equal(t, "buyer", data["type"])
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	f := newUserFixture()

	user := activeUser(t, "ivan@example.com", "secret1pass")
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("Update", mock.Anything, user).Return(nil)

	w := performRequest(setupRouter(f.handler, user.ID), http.MethodPut, "/api/v1/user/profile", map[string]any{
		"first_name": "Petr",
		"last_name":  "Sidorov",
		"company":    "Svyaznoy",
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(w)["data"].(map[string]any)
	assert.Equal(t, "Petr", data["first_name"])
	assert.Equal(t, "Svyaznoy", data["company"])
}

func TestUserHandler_Contacts(t *testing.T) {
	t.Run("adds a delivery address", func(t *testing.T) {
		f := newUserFixture()
		userID := uuid.New()

		f.contactRepo.On("CountByUserAndType", mock.Anything, userID, identity.ContactTypeAddress).
			Return(int64(0), nil)
		f.contactRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.Contact")).Return(nil)

		w := performRequest(setupRouter(f.handler, userID), http.MethodPost, "/api/v1/user/contacts", map[string]any{
			"type":  "address",
			"value": "Moscow, Tverskaya 1",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		data := decodeResponse(w)["data"].(map[string]any)
		assert.Equal(t, "address", data["type"])
	})

	t.Run("rejects an unknown contact type", func(t *testing.T) {
		f := newUserFixture()

		w := performRequest(setupRouter(f.handler, uuid.New()), http.MethodPost, "/api/v1/user/contacts", map[string]any{
			"type":  "pigeon",
			"value": "coop 5",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("deletes contacts by ID", func(t *testing.T) {
		f := newUserFixture()
		userID := uuid.New()
		contactID := uuid.New()

		f.contactRepo.On("DeleteByIDsForUser", mock.Anything, userID, []uuid.UUID{contactID}).
			Return(int64(1), nil)

		w := performRequest(setupRouter(f.handler, userID), http.MethodDelete, "/api/v1/user/contacts", map[string]any{
			"ids": []string{contactID.String()},
		})

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(w)["data"].(map[string]any)
		assert.Equal(t, float64(1), data["deleted"])
	})
}
