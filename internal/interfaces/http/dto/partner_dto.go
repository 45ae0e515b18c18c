package dto

import (
	appshop "github.com/shopnet/backend/internal/application/shop"
)

// PartnerUpdateRequest starts a price list import from a feed URL
type PartnerUpdateRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// PartnerStateRequest switches order taking on or off
type PartnerStateRequest struct {
	AcceptingOrders *bool `json:"accepting_orders" binding:"required"`
}

// PartnerStateResponse describes the partner shop state
type PartnerStateResponse struct {
	ShopID          string `json:"shop_id"`
	Name            string `json:"name"`
	URL             string `json:"url,omitempty"`
	AcceptingOrders bool   `json:"accepting_orders"`
}

// NewPartnerStateResponse builds a PartnerStateResponse from application state info
func NewPartnerStateResponse(info *appshop.StateInfo) PartnerStateResponse {
	return PartnerStateResponse{
		ShopID:          info.ShopID.String(),
		Name:            info.Name,
		URL:             info.URL,
		AcceptingOrders: info.AcceptingOrders,
	}
}

// ChangeOrderStatusRequest moves an order to a new status
type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new confirmed assembled sent delivered cancelled"`
}
