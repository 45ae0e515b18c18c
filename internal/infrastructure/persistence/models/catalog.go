package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	ExternalID int64  `gorm:"not null;uniqueIndex"`
	Name       string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		ExternalID: m.ExternalID,
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Category.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ExternalID = c.ExternalID
	m.Name = c.Name
}

// CategoryModelFromDomain creates a new persistence model from a domain Category.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name       string    `gorm:"type:varchar(300);not null;index:idx_products_name_category,unique"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index:idx_products_name_category,unique"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		CategoryID: m.CategoryID,
	}
}

// FromDomain populates the persistence model from a domain Product.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.CategoryID = p.CategoryID
}

// ProductModelFromDomain creates a new persistence model from a domain Product.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ListingModel is the persistence model for the Listing domain entity.
// Parameters are stored in their own table and loaded with Preload.
type ListingModel struct {
	BaseModel
	ProductID  uuid.UUID               `gorm:"type:uuid;not null;index"`
	ShopID     uuid.UUID               `gorm:"type:uuid;not null;index:idx_listings_shop_external,unique"`
	ExternalID int64                   `gorm:"not null;index:idx_listings_shop_external,unique"`
	Model      string                  `gorm:"type:varchar(200)"`
	Quantity   int                     `gorm:"not null;default:0"`
	Price      decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
	PriceRRC   decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
	Parameters []ListingParameterModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ListingModel) TableName() string {
	return "listings"
}

// ToDomain converts the persistence model to a domain Listing.
func (m *ListingModel) ToDomain() *catalog.Listing {
	params := make(map[string]string, len(m.Parameters))
	for i := range m.Parameters {
		params[m.Parameters[i].Name] = m.Parameters[i].Value
	}
	return &catalog.Listing{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		ShopID:     m.ShopID,
		ExternalID: m.ExternalID,
		Model:      m.Model,
		Quantity:   m.Quantity,
		Price:      m.Price,
		PriceRRC:   m.PriceRRC,
		Parameters: params,
	}
}

// FromDomain populates the persistence model from a domain Listing.
func (m *ListingModel) FromDomain(l *catalog.Listing) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.ProductID = l.ProductID
	m.ShopID = l.ShopID
	m.ExternalID = l.ExternalID
	m.Model = l.Model
	m.Quantity = l.Quantity
	m.Price = l.Price
	m.PriceRRC = l.PriceRRC

	m.Parameters = make([]ListingParameterModel, 0, len(l.Parameters))
	now := time.Now()
	for name, value := range l.Parameters {
		m.Parameters = append(m.Parameters, ListingParameterModel{
			ID:        uuid.New(),
			ListingID: l.ID,
			Name:      name,
			Value:     value,
			CreatedAt: now,
		})
	}
}

// ListingModelFromDomain creates a new persistence model from a domain Listing.
func ListingModelFromDomain(l *catalog.Listing) *ListingModel {
	m := &ListingModel{}
	m.FromDomain(l)
	return m
}

// ListingParameterModel is one free-form attribute of a listing.
type ListingParameterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index:idx_listing_parameters_name,unique"`
	Name      string    `gorm:"type:varchar(100);not null;index:idx_listing_parameters_name,unique"`
	Value     string    `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ListingParameterModel) TableName() string {
	return "listing_parameters"
}
