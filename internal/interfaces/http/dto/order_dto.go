package dto

import (
	"time"

	"github.com/shopspring/decimal"

	apporder "github.com/shopnet/backend/internal/application/order"
)

// CheckoutRequest converts the basket into an order
type CheckoutRequest struct {
	ContactID string `json:"contact_id" binding:"required,uuid"`
}

// OrderItemResponse describes one order line
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ListingID string          `json:"listing_id"`
	ShopID    string          `json:"shop_id"`
	Model     string          `json:"model"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	PriceRRC  decimal.Decimal `json:"price_rrc"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderResponse describes an order for its buyer
type OrderResponse struct {
	ID       string              `json:"id"`
	Status   string              `json:"status"`
	PlacedAt time.Time           `json:"placed_at"`
	Items    []OrderItemResponse `json:"items"`
	Total    decimal.Decimal     `json:"total"`
}

func newOrderItemResponses(items []apporder.OrderItemInfo) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, item := range items {
		out[i] = OrderItemResponse{
			ID:        item.ID.String(),
			ListingID: item.ListingID.String(),
			ShopID:    item.ShopID.String(),
			Model:     item.Model,
			Quantity:  item.Quantity,
			Price:     item.Price,
			PriceRRC:  item.PriceRRC,
			Amount:    item.Amount,
		}
	}
	return out
}

// NewOrderResponse builds an OrderResponse from application order info
func NewOrderResponse(info *apporder.OrderInfo) OrderResponse {
	return OrderResponse{
		ID:       info.ID.String(),
		Status:   string(info.Status),
		PlacedAt: info.PlacedAt,
		Items:    newOrderItemResponses(info.Items),
		Total:    info.Total,
	}
}

// PartnerOrderResponse describes an order restricted to one shop's lines
type PartnerOrderResponse struct {
	OrderID  string              `json:"order_id"`
	Status   string              `json:"status"`
	PlacedAt time.Time           `json:"placed_at"`
	Items    []OrderItemResponse `json:"items"`
	Total    decimal.Decimal     `json:"total"`
}

// NewPartnerOrderResponse builds a PartnerOrderResponse from application order info
func NewPartnerOrderResponse(info *apporder.PartnerOrderInfo) PartnerOrderResponse {
	return PartnerOrderResponse{
		OrderID:  info.OrderID.String(),
		Status:   string(info.Status),
		PlacedAt: info.PlacedAt,
		Items:    newOrderItemResponses(info.Items),
		Total:    info.Total,
	}
}
