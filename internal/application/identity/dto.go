package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/identity"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Company   string
	Position  string
	Type      identity.UserType
}

// RegisterResult contains the result of a successful registration
type RegisterResult struct {
	UserID uuid.UUID
	Email  string
}

// ConfirmEmailInput contains the input for email confirmation
type ConfirmEmailInput struct {
	Email string
	Key   string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned after login
type UserInfo struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Company   string
	Position  string
	Type      identity.UserType
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	TokenTTL time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UpdateProfileInput contains the editable profile fields
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Company   string
	Position  string
}

// AddContactInput contains the input for creating a delivery contact
type AddContactInput struct {
	UserID uuid.UUID
	Type   identity.ContactType
	Value  string
}

// ContactInfo describes one delivery contact
type ContactInfo struct {
	ID    uuid.UUID
	Type  identity.ContactType
	Value string
}

// DeleteContactsInput contains the input for deleting contacts
type DeleteContactsInput struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
}

func newUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Position:  user.Position,
		Type:      user.Type,
	}
}

func newContactInfo(contact *identity.Contact) ContactInfo {
	return ContactInfo{
		ID:    contact.ID,
		Type:  contact.Type,
		Value: contact.Value,
	}
}
