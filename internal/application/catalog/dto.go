package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
)

// StartImportInput contains the input for a price list import
type StartImportInput struct {
	UserID uuid.UUID
	URL    string
}

// CategoryInfo describes one catalog category
type CategoryInfo struct {
	ID         uuid.UUID
	ExternalID int64
	Name       string
}

// ShopInfo describes one partner shop
type ShopInfo struct {
	ID              uuid.UUID
	Name            string
	AcceptingOrders bool
}

// ListingInfo describes one offer available for sale
type ListingInfo struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	ShopID      uuid.UUID
	ExternalID  int64
	Model       string
	Quantity    int
	Price       decimal.Decimal
	PriceRRC    decimal.Decimal
	Parameters  map[string]string
}

// ListProductsInput narrows the product listing query
type ListProductsInput struct {
	ShopID     *uuid.UUID
	CategoryID *uuid.UUID
	Filter     shared.Filter
}

func newCategoryInfo(c *catalog.Category) CategoryInfo {
	return CategoryInfo{
		ID:         c.ID,
		ExternalID: c.ExternalID,
		Name:       c.Name,
	}
}

func newShopInfo(s *shop.Shop) ShopInfo {
	return ShopInfo{
		ID:              s.ID,
		Name:            s.Name,
		AcceptingOrders: s.AcceptingOrders,
	}
}

func newListingInfo(l *catalog.Listing, productName string) ListingInfo {
	return ListingInfo{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: productName,
		ShopID:      l.ShopID,
		ExternalID:  l.ExternalID,
		Model:       l.Model,
		Quantity:    l.Quantity,
		Price:       l.Price,
		PriceRRC:    l.PriceRRC,
		Parameters:  l.Parameters,
	}
}
