package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopnet/backend/internal/domain/shared"
)

// OrderItem is a line of a placed order. Prices and the listing model are
// snapshotted at checkout so later feed imports do not change historical
// orders.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ListingID uuid.UUID
	ShopID    uuid.UUID
	Model     string
	Quantity  int
	Price     decimal.Decimal
	PriceRRC  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Amount returns quantity times the recommended retail price
func (i *OrderItem) Amount() decimal.Decimal {
	return i.PriceRRC.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrderItem creates an order line
func NewOrderItem(orderID, listingID, shopID uuid.UUID, model string, quantity int, price, priceRRC decimal.Decimal) (*OrderItem, error) {
	if listingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING", "Listing ID cannot be empty")
	}
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	now := time.Now()
	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ListingID: listingID,
		ShopID:    shopID,
		Model:     model,
		Quantity:  quantity,
		Price:     price,
		PriceRRC:  priceRRC,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Order represents a placed order aggregate root
type Order struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID
	ContactID uuid.UUID
	Status    OrderStatus
	Items     []OrderItem
	PlacedAt  time.Time
}

// NewOrder creates an order in status new with the given items.
// An order cannot be created without items.
func NewOrder(userID, contactID uuid.UUID, items []OrderItem) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if contactID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Delivery contact is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Cannot place an order without items")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ContactID:         contactID,
		Status:            OrderStatusNew,
		Items:             make([]OrderItem, 0, len(items)),
		PlacedAt:          time.Now(),
	}

	for idx := range items {
		items[idx].OrderID = o.ID
		o.Items = append(o.Items, items[idx])
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// ChangeStatus moves the order to the target status if the transition
// table allows it
func (o *Order) ChangeStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}

	old := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old, target))

	return nil
}

// Total returns the order total: sum of quantity times retail price
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for idx := range o.Items {
		total = total.Add(o.Items[idx].Amount())
	}
	return total
}

// ContainsShop reports whether any item belongs to the given shop
func (o *Order) ContainsShop(shopID uuid.UUID) bool {
	for idx := range o.Items {
		if o.Items[idx].ShopID == shopID {
			return true
		}
	}
	return false
}

// ItemsForShop returns the order lines sold by the given shop
func (o *Order) ItemsForShop(shopID uuid.UUID) []OrderItem {
	items := make([]OrderItem, 0)
	for idx := range o.Items {
		if o.Items[idx].ShopID == shopID {
			items = append(items, o.Items[idx])
		}
	}
	return items
}

// ShopIDs returns the distinct shops involved in the order
func (o *Order) ShopIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for idx := range o.Items {
		if !seen[o.Items[idx].ShopID] {
			seen[o.Items[idx].ShopID] = true
			ids = append(ids, o.Items[idx].ShopID)
		}
	}
	return ids
}
