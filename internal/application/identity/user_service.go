package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"go.uber.org/zap"
)

// UserService handles registration, email confirmation and profile management
type UserService struct {
	userRepo  identity.UserRepository
	tokenRepo identity.ConfirmTokenRepository
	shopRepo  shop.ShopRepository
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	tokenRepo identity.ConfirmTokenRepository,
	shopRepo shop.ShopRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		shopRepo:  shopRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// Register creates an inactive account and issues a confirmation token.
// Partner accounts additionally get an empty shop named after the company.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register user")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(input.Email, input.Password, input.FirstName, input.LastName, input.Type)
	if err != nil {
		return nil, err
	}
	user.Company = input.Company
	user.Position = input.Position

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register user")
	}

	token, err := identity.NewConfirmEmailToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Save(ctx, token); err != nil {
		s.logger.Error("Failed to save confirmation token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register user")
	}

	if user.IsShop() && input.Company != "" {
		if err := s.createPartnerShop(ctx, user); err != nil {
			s.logger.Warn("Failed to create partner shop on registration",
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
		}
	}

	events := append(user.GetDomainEvents(), identity.NewConfirmEmailRequestedEvent(user, token))
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish registration events", zap.Error(err))
	}
	user.ClearDomainEvents()

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("type", string(user.Type)))

	return &RegisterResult{UserID: user.ID, Email: user.Email}, nil
}

// ConfirmEmail activates the account matching the email and token key
func (s *UserService) ConfirmEmail(ctx context.Context, input ConfirmEmailInput) error {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return shared.NewDomainError("INVALID_TOKEN", "Invalid email or confirmation token")
	}

	token, err := s.tokenRepo.FindByUserAndKey(ctx, user.ID, input.Key)
	if err != nil || !token.Matches(input.Key) {
		return shared.NewDomainError("INVALID_TOKEN", "Invalid email or confirmation token")
	}

	if err := user.Activate(); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to activate user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to confirm email")
	}

	if err := s.tokenRepo.DeleteByUser(ctx, user.ID); err != nil {
		s.logger.Warn("Failed to delete confirmation tokens",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	if err := s.eventBus.Publish(ctx, user.GetDomainEvents()...); err != nil {
		s.logger.Error("Failed to publish confirmation events", zap.Error(err))
	}
	user.ClearDomainEvents()

	s.logger.Info("Email confirmed", zap.String("user_id", user.ID.String()))

	return nil
}

// GetProfile returns the user's profile
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	info := newUserInfo(user)
	return &info, nil
}

// UpdateProfile updates the editable profile fields
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.UpdateProfile(input.FirstName, input.LastName, input.Company, input.Position); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	info := newUserInfo(user)
	return &info, nil
}

// ChangePassword changes a user's password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	if err := s.eventBus.Publish(ctx, user.GetDomainEvents()...); err != nil {
		s.logger.Error("Failed to publish password change events", zap.Error(err))
	}
	user.ClearDomainEvents()

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))

	return nil
}

func (s *UserService) createPartnerShop(ctx context.Context, user *identity.User) error {
	ownerID := user.ID
	partnerShop, err := shop.NewShop(user.Company, &ownerID)
	if err != nil {
		return err
	}
	return s.shopRepo.Save(ctx, partnerShop)
}
