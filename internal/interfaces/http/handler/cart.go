package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saborfome/backend/internal/application/storefront"
	"github.com/saborfome/backend/internal/interfaces/http/dto"
	"github.com/saborfome/backend/internal/interfaces/http/middleware"
)

// CartHandler serves the session cart endpoints
type CartHandler struct {
	BaseHandler
	cart *storefront.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart *storefront.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/cart")
	{
		group.GET("", h.Get)
		group.DELETE("", h.Clear)
		group.POST("/items", h.AddItem)
		group.PUT("/items/:productId", h.UpdateItem)
		group.DELETE("/items/:productId", h.RemoveItem)
	}
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cart.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCartResponse(cart))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	cart, err := h.cart.AddItem(c.Request.Context(), middleware.GetSessionID(c), productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCartResponse(cart))
}

// UpdateItem handles PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	cart, err := h.cart.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCartResponse(cart))
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	cart, err := h.cart.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCartResponse(cart))
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	cart, err := h.cart.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCartResponse(cart))
}
