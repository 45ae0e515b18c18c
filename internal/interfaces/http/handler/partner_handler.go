package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/shopnet/backend/internal/application/catalog"
	apporder "github.com/shopnet/backend/internal/application/order"
	appshop "github.com/shopnet/backend/internal/application/shop"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/infrastructure/feed"
	"github.com/shopnet/backend/internal/interfaces/http/dto"
	"github.com/shopnet/backend/internal/interfaces/http/middleware"
)

const yamlContentType = "application/x-yaml; charset=utf-8"

// PartnerHandler handles the partner shop endpoints
type PartnerHandler struct {
	BaseHandler
	importService *appcatalog.ImportService
	exportService *appcatalog.ExportService
	shopService   *appshop.Service
	orderService  *apporder.OrderService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(
	importService *appcatalog.ImportService,
	exportService *appcatalog.ExportService,
	shopService *appshop.Service,
	orderService *apporder.OrderService,
) *PartnerHandler {
	return &PartnerHandler{
		importService: importService,
		exportService: exportService,
		shopService:   shopService,
		orderService:  orderService,
	}
}

// RegisterRoutes implements router.RouteRegistrar. The whole group is
// restricted to shop accounts; buyers get 403.
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partner := rg.Group("/partner", middleware.RequireUserType(string(identity.UserTypeShop)))
	{
		partner.POST("/update", h.Update)
		partner.GET("/export", h.Export)
		partner.GET("/state", h.GetState)
		partner.POST("/state", h.SetState)
		partner.GET("/orders", h.ListOrders)
		partner.POST("/orders/:id/status", h.ChangeStatus)
	}
}

// Update schedules a price list import from the given feed URL
func (h *PartnerHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.PartnerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	err = h.importService.StartImport(c.Request.Context(), appcatalog.StartImportInput{
		UserID: userID,
		URL:    req.URL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.NewSuccessResponse(gin.H{"started": true}))
}

// Export returns the shop's current catalog in the price list format
func (h *PartnerHandler) Export(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	file, err := h.exportService.Export(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	data, err := feed.Encode(file)
	if err != nil {
		h.InternalError(c, "Failed to encode price list")
		return
	}

	c.Data(http.StatusOK, yamlContentType, data)
}

// GetState returns whether the shop takes new orders
func (h *PartnerHandler) GetState(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.shopService.GetState(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewPartnerStateResponse(info))
}

// SetState switches order taking on or off
func (h *PartnerHandler) SetState(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.PartnerStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.shopService.SetState(c.Request.Context(), userID, *req.AcceptingOrders)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewPartnerStateResponse(info))
}

// ListOrders returns orders containing the shop's items
func (h *PartnerHandler) ListOrders(c *gin.Context) {
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

	orders, err := h.orderService.PartnerOrders(c.Request.Context(), apporder.PartnerOrdersInput{
		UserID: userID,
		Filter: req.ToFilter(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.PartnerOrderResponse, len(orders))
	for i := range orders {
		out[i] = dto.NewPartnerOrderResponse(&orders[i])
	}
	h.Success(c, out)
}

// ChangeStatus moves an order containing the shop's items to a new status
func (h *PartnerHandler) ChangeStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	orderID, err := uuid.Parse(uriReq.ID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req dto.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.orderService.ChangeStatus(c.Request.Context(), apporder.ChangeStatusInput{
		UserID:  userID,
		OrderID: orderID,
		Status:  order.OrderStatus(req.Status),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewOrderResponse(info))
}
