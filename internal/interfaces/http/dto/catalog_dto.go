package dto

import (
	"github.com/shopspring/decimal"

	appcatalog "github.com/shopnet/backend/internal/application/catalog"
)

// CategoryResponse describes one catalog category
type CategoryResponse struct {
	ID         string `json:"id"`
	ExternalID int64  `json:"external_id"`
	Name       string `json:"name"`
}

// NewCategoryResponse builds a CategoryResponse from application category info
func NewCategoryResponse(info appcatalog.CategoryInfo) CategoryResponse {
	return CategoryResponse{
		ID:         info.ID.String(),
		ExternalID: info.ExternalID,
		Name:       info.Name,
	}
}

// ShopResponse describes one partner shop
type ShopResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AcceptingOrders bool   `json:"accepting_orders"`
}

// NewShopResponse builds a ShopResponse from application shop info
func NewShopResponse(info appcatalog.ShopInfo) ShopResponse {
	return ShopResponse{
		ID:              info.ID.String(),
		Name:            info.Name,
		AcceptingOrders: info.AcceptingOrders,
	}
}

// ProductQuery narrows the product listing by shop and category
type ProductQuery struct {
	ListRequest
	ShopID     string `form:"shop_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
}

// ListingResponse describes one offer available for sale
type ListingResponse struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	ShopID      string            `json:"shop_id"`
	ExternalID  int64             `json:"external_id"`
	Model       string            `json:"model"`
	Quantity    int               `json:"quantity"`
	Price       decimal.Decimal   `json:"price"`
	PriceRRC    decimal.Decimal   `json:"price_rrc"`
	Parameters  map[string]string `json:"parameters,omitempty"`
}

// NewListingResponse builds a ListingResponse from application listing info
func NewListingResponse(info appcatalog.ListingInfo) ListingResponse {
	return ListingResponse{
		ID:          info.ID.String(),
		ProductID:   info.ProductID.String(),
		ProductName: info.ProductName,
		ShopID:      info.ShopID.String(),
		ExternalID:  info.ExternalID,
		Model:       info.Model,
		Quantity:    info.Quantity,
		Price:       info.Price,
		PriceRRC:    info.PriceRRC,
		Parameters:  info.Parameters,
	}
}
