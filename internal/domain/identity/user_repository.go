package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll returns users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
}

// ContactRepository defines the interface for delivery contact persistence
type ContactRepository interface {
	// Save creates or updates a contact
	Save(ctx context.Context, contact *Contact) error

	// FindByID finds a contact by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Contact, error)

	// FindByUser returns all contacts belonging to a user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Contact, error)

	// CountByUserAndType counts a user's contacts of a given type
	CountByUserAndType(ctx context.Context, userID uuid.UUID, contactType ContactType) (int64, error)

	// DeleteByIDsForUser deletes the given contacts if they belong to the user,
	// returning the number of rows removed
	DeleteByIDsForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// ConfirmTokenRepository defines the interface for confirmation token persistence
type ConfirmTokenRepository interface {
	// Save creates a token
	Save(ctx context.Context, token *ConfirmEmailToken) error

	// FindByUserAndKey finds a token by owner and key
	FindByUserAndKey(ctx context.Context, userID uuid.UUID, key string) (*ConfirmEmailToken, error)

	// Delete deletes a token by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser deletes all tokens belonging to a user
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
