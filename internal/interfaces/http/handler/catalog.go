package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saborfome/backend/internal/application/storefront"
	"github.com/saborfome/backend/internal/interfaces/http/dto"
)

// CatalogHandler serves catalog browse and search endpoints
type CatalogHandler struct {
	BaseHandler
	catalog *storefront.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *storefront.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/catalog")
	{
		group.GET("/products", h.ListProducts)
		group.GET("/products/:slug", h.GetProduct)
		group.GET("/products/:slug/related", h.GetRelated)
		group.GET("/categories", h.ListCategories)
	}
}

// ListProducts handles GET /catalog/products?category=&q=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToProductResponses(products))
}

// GetProduct handles GET /catalog/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToProductResponse(product))
}

// GetRelated handles GET /catalog/products/:slug/related?limit=
func (h *CatalogHandler) GetRelated(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	related, err := h.catalog.GetRelated(c.Request.Context(), c.Param("slug"), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToProductResponses(related))
}

// ListCategories handles GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}
