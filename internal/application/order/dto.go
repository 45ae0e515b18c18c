package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/domain/shared"
)

// SetCartItemInput adds an offer to the basket or changes its quantity
type SetCartItemInput struct {
	UserID    uuid.UUID
	ListingID uuid.UUID
	Quantity  int
}

// RemoveCartItemsInput removes basket positions by their item IDs
type RemoveCartItemsInput struct {
	UserID  uuid.UUID
	ItemIDs []uuid.UUID
}

// CartItemInfo describes one basket position
type CartItemInfo struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	Model     string
	Quantity  int
	Price     decimal.Decimal
	PriceRRC  decimal.Decimal
	Amount    decimal.Decimal
}

// CartInfo describes the basket with its priced positions
type CartInfo struct {
	ID    uuid.UUID
	Items []CartItemInfo
	Total decimal.Decimal
}

// CheckoutInput converts the basket into an order
type CheckoutInput struct {
	UserID    uuid.UUID
	ContactID uuid.UUID
}

// OrderItemInfo describes one order line
type OrderItemInfo struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	ShopID    uuid.UUID
	Model     string
	Quantity  int
	Price     decimal.Decimal
	PriceRRC  decimal.Decimal
	Amount    decimal.Decimal
}

// OrderInfo describes an order for its buyer
type OrderInfo struct {
	ID       uuid.UUID
	Status   order.OrderStatus
	PlacedAt time.Time
	Items    []OrderItemInfo
	Total    decimal.Decimal
}

// PartnerOrderInfo describes an order from a shop's point of view:
// only the lines sold by that shop, with their subtotal
type PartnerOrderInfo struct {
	OrderID  uuid.UUID
	Status   order.OrderStatus
	PlacedAt time.Time
	Items    []OrderItemInfo
	Total    decimal.Decimal
}

// ListOrdersInput lists a buyer's orders
type ListOrdersInput struct {
	UserID uuid.UUID
	Filter shared.Filter
}

// PartnerOrdersInput lists orders containing a partner's items
type PartnerOrdersInput struct {
	UserID uuid.UUID
	Filter shared.Filter
}

// ChangeStatusInput moves an order to a new status on behalf of a partner
type ChangeStatusInput struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
	Status  order.OrderStatus
}

func newOrderItemInfo(item *order.OrderItem) OrderItemInfo {
	return OrderItemInfo{
		ID:        item.ID,
		ListingID: item.ListingID,
		ShopID:    item.ShopID,
		Model:     item.Model,
		Quantity:  item.Quantity,
		Price:     item.Price,
		PriceRRC:  item.PriceRRC,
		Amount:    item.Amount(),
	}
}

func newOrderInfo(o *order.Order) OrderInfo {
	items := make([]OrderItemInfo, len(o.Items))
	for i := range o.Items {
		items[i] = newOrderItemInfo(&o.Items[i])
	}
	return OrderInfo{
		ID:       o.ID,
		Status:   o.Status,
		PlacedAt: o.PlacedAt,
		Items:    items,
		Total:    o.Total(),
	}
}

func newPartnerOrderInfo(o *order.Order, shopID uuid.UUID) PartnerOrderInfo {
	shopItems := o.ItemsForShop(shopID)
	items := make([]OrderItemInfo, len(shopItems))
	total := decimal.Zero
	for i := range shopItems {
		items[i] = newOrderItemInfo(&shopItems[i])
		total = total.Add(shopItems[i].Amount())
	}
	return PartnerOrderInfo{
		OrderID:  o.ID,
		Status:   o.Status,
		PlacedAt: o.PlacedAt,
		Items:    items,
		Total:    total,
	}
}
