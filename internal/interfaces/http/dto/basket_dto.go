package dto

import (
	"github.com/shopspring/decimal"

	apporder "github.com/shopnet/backend/internal/application/order"
)

// SetBasketItemRequest puts an offer into the basket or changes its quantity
type SetBasketItemRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// RemoveBasketItemsRequest removes basket positions by their item IDs
type RemoveBasketItemsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required,min=1,dive,uuid"`
}

// BasketItemResponse describes one basket position
type BasketItemResponse struct {
	ID        string          `json:"id"`
	ListingID string          `json:"listing_id"`
	Model     string          `json:"model"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	PriceRRC  decimal.Decimal `json:"price_rrc"`
	Amount    decimal.Decimal `json:"amount"`
}

// BasketResponse describes the basket with its priced positions
type BasketResponse struct {
	ID    string               `json:"id"`
	Items []BasketItemResponse `json:"items"`
	Total decimal.Decimal      `json:"total"`
}

// NewBasketResponse builds a BasketResponse from application cart info
func NewBasketResponse(info *apporder.CartInfo) BasketResponse {
	items := make([]BasketItemResponse, len(info.Items))
	for i, item := range info.Items {
		items[i] = BasketItemResponse{
			ID:        item.ID.String(),
			ListingID: item.ListingID.String(),
			Model:     item.Model,
			Quantity:  item.Quantity,
			Price:     item.Price,
			PriceRRC:  item.PriceRRC,
			Amount:    item.Amount,
		}
	}
	return BasketResponse{
		ID:    info.ID.String(),
		Items: items,
		Total: info.Total,
	}
}
