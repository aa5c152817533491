package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/saborfome/backend/internal/application/storefront"
	"github.com/saborfome/backend/internal/interfaces/http/dto"
	"github.com/saborfome/backend/internal/interfaces/http/middleware"
)

// CheckoutHandler serves the checkout endpoints
type CheckoutHandler struct {
	BaseHandler
	checkout *storefront.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout *storefront.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/checkout")
	{
		group.POST("/preview", h.Preview)
		group.POST("/confirm", h.Confirm)
	}
}

// Preview handles POST /checkout/preview
func (h *CheckoutHandler) Preview(c *gin.Context) {
	result, err := h.checkout.Preview(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCheckoutResponse(result))
}

// Confirm handles POST /checkout/confirm
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	result, err := h.checkout.Confirm(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToCheckoutResponse(result))
}
