package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apporder "github.com/shopnet/backend/internal/application/order"
	"github.com/shopnet/backend/internal/interfaces/http/dto"
)

// BasketHandler handles the buyer's basket endpoints
type BasketHandler struct {
	BaseHandler
	cartService *apporder.CartService
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(cartService *apporder.CartService) *BasketHandler {
	return &BasketHandler{
		cartService: cartService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *BasketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	basket := rg.Group("/basket")
	{
		basket.GET("", h.GetBasket)
		basket.POST("", h.SetItem)
		basket.DELETE("", h.RemoveItems)
	}
}

// GetBasket returns the basket with current prices
func (h *BasketHandler) GetBasket(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewBasketResponse(info))
}

// SetItem puts an offer into the basket or changes its quantity
func (h *BasketHandler) SetItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.SetBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	info, err := h.cartService.SetItem(c.Request.Context(), apporder.SetCartItemInput{
		UserID:    userID,
		ListingID: listingID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewBasketResponse(info))
}

// RemoveItems removes basket positions by their item IDs
func (h *BasketHandler) RemoveItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.RemoveBasketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	itemIDs := make([]uuid.UUID, len(req.ItemIDs))
	for i, raw := range req.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid item ID")
			return
		}
		itemIDs[i] = id
	}

	info, err := h.cartService.RemoveItems(c.Request.Context(), apporder.RemoveCartItemsInput{
		UserID:  userID,
		ItemIDs: itemIDs,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewBasketResponse(info))
}
