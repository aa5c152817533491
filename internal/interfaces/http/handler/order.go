package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/saborfome/backend/internal/application/storefront"
	"github.com/saborfome/backend/internal/infrastructure/postal"
	"github.com/saborfome/backend/internal/interfaces/http/dto"
	"github.com/saborfome/backend/internal/interfaces/http/middleware"
)

// OrderHandler serves the session order form endpoints
type OrderHandler struct {
	BaseHandler
	orders *storefront.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *storefront.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers order form routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/order")
	{
		group.GET("", h.Get)
		group.PUT("", h.Update)
		group.DELETE("", h.Clear)
		group.POST("/address/lookup", h.LookupAddress)
	}
}

// Get handles GET /order
func (h *OrderHandler) Get(c *gin.Context) {
	details, err := h.orders.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToOrderDetailsResponse(details))
}

// Update handles PUT /order
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	details, err := h.orders.Update(c.Request.Context(), middleware.GetSessionID(c), req.ToUpdateInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToOrderDetailsResponse(details))
}

// Clear handles DELETE /order
func (h *OrderHandler) Clear(c *gin.Context) {
	details, err := h.orders.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToOrderDetailsResponse(details))
}

// LookupAddress handles POST /order/address/lookup
func (h *OrderHandler) LookupAddress(c *gin.Context) {
	var req dto.AddressLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.orders.LookupAddress(c.Request.Context(), middleware.GetSessionID(c), req.CEP)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.AddressLookupResponse{
		CEP: postal.FormatCEP(req.CEP),
		Data: dto.AddressDataResponse{
			Logradouro: result.Data.Logradouro,
			Bairro:     result.Data.Bairro,
			Cidade:     result.Data.Cidade,
		},
		Applied: result.Applied,
		Details: dto.ToOrderDetailsResponse(result.Details),
	})
}
