package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// CartRepository defines the interface for basket persistence
type CartRepository interface {
	// Save persists the cart together with its items
	Save(ctx context.Context, cart *Cart) error

	// FindByUser finds the cart owned by a user
	FindByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// Delete deletes a cart by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Save persists the order together with its items
	Save(ctx context.Context, o *Order) error

	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUser returns a user's orders, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)

	// FindByShop returns orders containing items sold by the shop
	FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Order, error)
}
