package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// CartItem is one position in a basket
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ListingID uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cart is a user's basket. It is a separate entity from Order: items
// accumulate here and move into a new Order exactly once at checkout.
type Cart struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Items  []CartItem
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}

	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             make([]CartItem, 0),
	}, nil
}

// SetItem adds a listing to the cart or replaces its quantity
func (c *Cart) SetItem(listingID uuid.UUID, quantity int) error {
	if listingID == uuid.Nil {
		return shared.NewDomainError("INVALID_LISTING", "Listing ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	now := time.Now()
	for idx := range c.Items {
		if c.Items[idx].ListingID == listingID {
			c.Items[idx].Quantity = quantity
			c.Items[idx].UpdatedAt = now
			c.UpdatedAt = now
			c.IncrementVersion()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ID:        uuid.New(),
		CartID:    c.ID,
		ListingID: listingID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	c.UpdatedAt = now
	c.IncrementVersion()

	return nil
}

// RemoveItems deletes the given item IDs, returning how many were removed
func (c *Cart) RemoveItems(itemIDs []uuid.UUID) int {
	wanted := make(map[uuid.UUID]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}

	kept := make([]CartItem, 0, len(c.Items))
	removed := 0
	for _, item := range c.Items {
		if wanted[item.ID] {
			removed++
			continue
		}
		kept = append(kept, item)
	}

	if removed > 0 {
		c.Items = kept
		c.UpdatedAt = time.Now()
		c.IncrementVersion()
	}

	return removed
}

// Clear empties the cart after checkout
func (c *Cart) Clear() {
	c.Items = make([]CartItem, 0)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
