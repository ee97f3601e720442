package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/promo-kiosk/internal/application/service"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/dto/request"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/dto/response"
	"github.com/sangkips/promo-kiosk/pkg/pagination"
)

// CatalogHandler serves the read-only stock board
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles listing products with their stock
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req request.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := pagination.DefaultPagination()
	if req.Page > 0 {
		params.Page = req.Page
	}
	if req.PerPage > 0 {
		params.PerPage = req.PerPage
	}

	result := h.catalogService.ListProducts(service.ProductFilter{
		Search:          req.Search,
		PromotionalOnly: req.Promotional,
		InStockOnly:     req.InStock,
	}, params)

	response.SuccessWithPagination(c, "Products retrieved successfully", result)
}

// GetProduct handles fetching one product by name
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// ListPromotions handles listing promotions
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	var req request.PromotionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	response.OK(c, "Promotions retrieved successfully", h.catalogService.ListPromotions(req.Active))
}
