package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// CartModel is the persistence model for the Cart aggregate.
type CartModel struct {
	AggregateModel
	UserID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Items  []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// ToDomain converts the persistence model to a domain Cart.
func (m *CartModel) ToDomain() *order.Cart {
	c := &order.Cart{
		UserID: m.UserID,
		Items:  make([]order.CartItem, len(m.Items)),
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	for i := range m.Items {
		c.Items[i] = m.Items[i].ToDomain()
	}
	return c
}

// FromDomain populates the persistence model from a domain Cart.
func (m *CartModel) FromDomain(c *order.Cart) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.UserID = c.UserID
	m.Items = make([]CartItemModel, len(c.Items))
	for i := range c.Items {
		m.Items[i].FromDomain(c.Items[i])
	}
}

// CartModelFromDomain creates a new persistence model from a domain Cart.
func CartModelFromDomain(c *order.Cart) *CartModel {
	m := &CartModel{}
	m.FromDomain(c)
	return m
}

// CartItemModel is one position of a basket.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_listing,unique"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_listing,unique"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem.
func (m *CartItemModel) ToDomain() order.CartItem {
	return order.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ListingID: m.ListingID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain CartItem.
func (m *CartItemModel) FromDomain(i order.CartItem) {
	m.ID = i.ID
	m.CartID = i.CartID
	m.ListingID = i.ListingID
	m.Quantity = i.Quantity
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	AggregateModel
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	ContactID uuid.UUID         `gorm:"type:uuid;not null"`
	Status    order.OrderStatus `gorm:"type:varchar(20);not null;default:'new';index"`
	PlacedAt  time.Time         `gorm:"not null"`
	Items     []OrderItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		UserID:    m.UserID,
		ContactID: m.ContactID,
		Status:    m.Status,
		PlacedAt:  m.PlacedAt,
		Items:     make([]order.OrderItem, len(m.Items)),
	}
	m.PopulateAggregateRoot(&o.BaseAggregateRoot)
	for i := range m.Items {
		o.Items[i] = m.Items[i].ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Order.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.UserID = o.UserID
	m.ContactID = o.ContactID
	m.Status = o.Status
	m.PlacedAt = o.PlacedAt
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is one line of a placed order with snapshotted prices.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ListingID uuid.UUID       `gorm:"type:uuid;not null"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Model     string          `gorm:"size:255;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceRRC  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() order.OrderItem {
	return order.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ListingID: m.ListingID,
		ShopID:    m.ShopID,
		Model:     m.Model,
		Quantity:  m.Quantity,
		Price:     m.Price,
		PriceRRC:  m.PriceRRC,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain OrderItem.
func (m *OrderItemModel) FromDomain(i order.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ListingID = i.ListingID
	m.ShopID = i.ShopID
	m.Model = i.Model
	m.Quantity = i.Quantity
	m.Price = i.Price
	m.PriceRRC = i.PriceRRC
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}
