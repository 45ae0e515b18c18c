package identity

import (
	"context"
	"testing"

	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserServiceForTest() (*UserService, *MockUserRepository, *MockConfirmTokenRepository, *MockShopRepository, *MockEventPublisher) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockConfirmTokenRepository)
	shopRepo := new(MockShopRepository)
	bus := new(MockEventPublisher)
	svc := NewUserService(userRepo, tokenRepo, shopRepo, bus, zap.NewNop())
	return svc, userRepo, tokenRepo, shopRepo, bus
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers buyer and requests confirmation", func(t *testing.T) {
		svc, userRepo, tokenRepo, _, bus := newUserServiceForTest()

		userRepo.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
		tokenRepo.On("Save", ctx, mock.AnythingOfType("*identity.ConfirmEmailToken")).Return(nil)
		bus.On("Publish", ctx, mock.Anything).Return(nil)

		result, err := svc.Register(ctx, RegisterInput{
			Email:     "ivan@example.com",
			Password:  "secret1pass",
			FirstName: "Ivan",
			LastName:  "Petrov",
			Type:      identity.UserTypeBuyer,
		})

		require.NoError(t, err)
		assert.Equal(t, "ivan@example.com", result.Email)

		types := make([]string, 0, len(bus.published))
		for _, e := range bus.published {
			types = append(types, e.EventType())
		}
		assert.Contains(t, types, identity.EventTypeUserRegistered)
		assert.Contains(t, types, identity.EventTypeConfirmEmailRequested)
	})

	t.Run("creates shop for partner accounts", func(t *testing.T) {
		svc, userRepo, tokenRepo, shopRepo, bus := newUserServiceForTest()

		userRepo.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
		tokenRepo.On("Save", ctx, mock.Anything).Return(nil)
		shopRepo.On("Save", ctx, mock.AnythingOfType("*shop.Shop")).Return(nil)
		bus.On("Publish", ctx, mock.Anything).Return(nil)

		_, err := svc.Register(ctx, RegisterInput{
			Email:     "partner@example.com",
			Password:  "secret1pass",
			FirstName: "Olga",
			LastName:  "Sidorova",
			Company:   "Svyaznoy",
			Type:      identity.UserTypeShop,
		})

		require.NoError(t, err)
		shopRepo.AssertCalled(t, "Save", ctx, mock.AnythingOfType("*shop.Shop"))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, userRepo, _, _, _ := newUserServiceForTest()

		userRepo.On("ExistsByEmail", ctx, mock.Anything).Return(true, nil)

		_, err := svc.Register(ctx, RegisterInput{
			Email:     "taken@example.com",
			Password:  "secret1pass",
			FirstName: "Ivan",
			LastName:  "Petrov",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	})
}

func TestUserService_ConfirmEmail(t *testing.T) {
	ctx := context.Background()

	user, err := identity.NewUser("ivan@example.com", "secret1pass", "Ivan", "Petrov", identity.UserTypeBuyer)
	require.NoError(t, err)
	user.ClearDomainEvents()

	token, err := identity.NewConfirmEmailToken(user.ID)
	require.NoError(t, err)

	t.Run("activates account and drops tokens", func(t *testing.T) {
		svc, userRepo, tokenRepo, _, bus := newUserServiceForTest()

		fresh := *user
		fresh.Active = false
		userRepo.On("FindByEmail", ctx, "ivan@example.com").Return(&fresh, nil)
		tokenRepo.On("FindByUserAndKey", ctx, user.ID, token.Key).Return(token, nil)
		userRepo.On("Update", ctx, mock.Anything).Return(nil)
		tokenRepo.On("DeleteByUser", ctx, user.ID).Return(nil)
		bus.On("Publish", ctx, mock.Anything).Return(nil)

		err := svc.ConfirmEmail(ctx, ConfirmEmailInput{Email: "ivan@example.com", Key: token.Key})

		require.NoError(t, err)
		assert.True(t, fresh.Active)
		tokenRepo.AssertCalled(t, "DeleteByUser", ctx, user.ID)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		svc, userRepo, tokenRepo, _, _ := newUserServiceForTest()

		fresh := *user
		fresh.Active = false
		userRepo.On("FindByEmail", ctx, "ivan@example.com").Return(&fresh, nil)
		tokenRepo.On("FindByUserAndKey", ctx, user.ID, "wrong").Return(nil, shared.ErrNotFound)

		err := svc.ConfirmEmail(ctx, ConfirmEmailInput{Email: "ivan@example.com", Key: "wrong"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	user, err := identity.NewUser("ivan@example.com", "secret1pass", "Ivan", "Petrov", identity.UserTypeBuyer)
	require.NoError(t, err)
	user.ClearDomainEvents()

	t.Run("rejects wrong current password", func(t *testing.T) {
		svc, userRepo, _, _, _ := newUserServiceForTest()
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "not-the-password",
			NewPassword: "another1pass",
		})

		assert.Error(t, err)
	})
}
