package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apporder "github.com/shopnet/backend/internal/application/order"
	"github.com/shopnet/backend/internal/interfaces/http/dto"
)

// OrderHandler handles the buyer's order endpoints
type OrderHandler struct {
	BaseHandler
	orderService    *apporder.OrderService
	checkoutService *apporder.CheckoutService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *apporder.OrderService, checkoutService *apporder.CheckoutService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.Checkout)
		orders.GET("/:id", h.GetOrder)
		orders.DELETE("/:id", h.CancelOrder)
	}
}

// ListOrders returns the buyer's orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), apporder.ListOrdersInput{
		UserID: userID,
		Filter: req.ToFilter(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		out[i] = dto.NewOrderResponse(&orders[i])
	}
	h.Success(c, out)
}

// Checkout converts the basket into an order
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}

	info, err := h.checkoutService.Checkout(c.Request.Context(), apporder.CheckoutInput{
		UserID:    userID,
		ContactID: contactID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewOrderResponse(info))
}

// GetOrder returns one of the buyer's orders
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := h.bindOrderID(c)
	if !ok {
		return
	}

	info, err := h.orderService.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewOrderResponse(info))
}

// CancelOrder cancels one of the buyer's orders
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := h.bindOrderID(c)
	if !ok {
		return
	}

	info, err := h.orderService.CancelOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewOrderResponse(info))
}

func (h *OrderHandler) bindOrderID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, err.Error())
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}
