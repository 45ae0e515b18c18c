package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/shopnet/backend/internal/application/catalog"
	"github.com/shopnet/backend/internal/interfaces/http/dto"
)

// CatalogHandler handles the public catalog endpoints
type CatalogHandler struct {
	BaseHandler
	queryService *appcatalog.QueryService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(queryService *appcatalog.QueryService) *CatalogHandler {
	return &CatalogHandler{
		queryService: queryService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/shops", h.ListShops)
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
}

// ListCategories returns catalog categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	categories, err := h.queryService.ListCategories(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = dto.NewCategoryResponse(category)
	}
	h.Success(c, out)
}

// ListShops returns shops that currently accept orders
func (h *CatalogHandler) ListShops(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shops, err := h.queryService.ListShops(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.ShopResponse, len(shops))
	for i, s := range shops {
		out[i] = dto.NewShopResponse(s)
	}
	h.Success(c, out)
}

// ListProducts returns offers for sale, optionally narrowed by shop and category
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	req := dto.ProductQuery{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := appcatalog.ListProductsInput{Filter: req.ToFilter()}
	if req.ShopID != "" {
		id, err := uuid.Parse(req.ShopID)
		if err != nil {
			h.BadRequest(c, "Invalid shop ID")
			return
		}
		input.ShopID = &id
	}
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		input.CategoryID = &id
	}

	listings, err := h.queryService.ListProducts(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.ListingResponse, len(listings))
	for i, listing := range listings {
		out[i] = dto.NewListingResponse(listing)
	}
	h.Success(c, out)
}

// GetProduct returns a single offer by its listing ID
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	listing, err := h.queryService.GetListing(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewListingResponse(*listing))
}
