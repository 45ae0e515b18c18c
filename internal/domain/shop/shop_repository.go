package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// ShopRepository defines the interface for shop persistence
type ShopRepository interface {
	// Save creates or updates a shop
	Save(ctx context.Context, shop *Shop) error

	// FindByID finds a shop by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)

	// FindByUser finds the shop owned by a user
	FindByUser(ctx context.Context, userID uuid.UUID) (*Shop, error)

	// FindByName finds a shop by name
	FindByName(ctx context.Context, name string) (*Shop, error)

	// FindAccepting returns shops currently accepting orders
	FindAccepting(ctx context.Context, filter shared.Filter) ([]Shop, error)

	// FindAll returns shops matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Shop, error)

	// Delete deletes a shop by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
