package dto

import (
	"github.com/saborfome/backend/internal/application/storefront"
	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/order"
)

// ProductResponse is a catalog product as the storefront renders it
type ProductResponse struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Price          string   `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
	Unit           string   `json:"unit"`
	Image          string   `json:"image,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags"`
	Available      bool     `json:"available"`
}

// ToProductResponse converts a product to its response representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:             p.ID.String(),
		Slug:           p.Slug,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price.StringFixed(2),
		PriceFormatted: p.PriceMoney().Format(),
		Unit:           p.Unit,
		Image:          p.Image,
		Description:    p.Description,
		Tags:           tags,
		Available:      p.Available,
	}
}

// ToProductResponses converts a product list
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}

// CartLineResponse is one cart line
type CartLineResponse struct {
	Product           ProductResponse `json:"product"`
	Quantity          int             `json:"quantity"`
	Subtotal          string          `json:"subtotal"`
	SubtotalFormatted string          `json:"subtotal_formatted"`
}

// CartResponse is the session's cart with derived totals
type CartResponse struct {
	Items             []CartLineResponse `json:"items"`
	TotalItems        int                `json:"total_items"`
	Subtotal          string             `json:"subtotal"`
	SubtotalFormatted string             `json:"subtotal_formatted"`
	Total             string             `json:"total"`
	TotalFormatted    string             `json:"total_formatted"`
}

// ToCartResponse converts a cart to its response representation
func ToCartResponse(cart *order.Cart) CartResponse {
	items := make([]CartLineResponse, 0, len(cart.Lines))
	for i := range cart.Lines {
		line := cart.Lines[i]
		subtotal := line.Subtotal()
		items = append(items, CartLineResponse{
			Product:           ToProductResponse(&line.Product),
			Quantity:          line.Quantity,
			Subtotal:          subtotal.StringFixed(2),
			SubtotalFormatted: subtotal.Format(),
		})
	}
	subtotal := cart.Subtotal()
	total := cart.Total()
	return CartResponse{
		Items:             items,
		TotalItems:        cart.TotalItems(),
		Subtotal:          subtotal.StringFixed(2),
		SubtotalFormatted: subtotal.Format(),
		Total:             total.StringFixed(2),
		TotalFormatted:    total.Format(),
	}
}

// AddCartItemRequest adds a product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets a line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// AddressDataResponse is the structured part of a resolved address
type AddressDataResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
}

// OrderDetailsResponse is the session's order form
type OrderDetailsResponse struct {
	CustomerName    string               `json:"customer_name"`
	PaymentMethod   string               `json:"payment_method"`
	Observations    string               `json:"observations"`
	Address         string               `json:"address"`
	NeedsChange     bool                 `json:"needs_change"`
	ChangeFor       string               `json:"change_for"`
	CardType        string               `json:"card_type"`
	ResidenceType   string               `json:"residence_type"`
	ApartmentNumber string               `json:"apartment_number"`
	StreetNumber    string               `json:"street_number"`
	AddressData     *AddressDataResponse `json:"address_data,omitempty"`
}

// ToOrderDetailsResponse converts order details to their response representation
func ToOrderDetailsResponse(d *order.Details) OrderDetailsResponse {
	resp := OrderDetailsResponse{
		CustomerName:    d.CustomerName,
		PaymentMethod:   string(d.PaymentMethod),
		Observations:    d.Observations,
		Address:         d.Address,
		NeedsChange:     d.NeedsChange,
		ChangeFor:       d.ChangeFor,
		CardType:        string(d.CardType),
		ResidenceType:   string(d.ResidenceType),
		ApartmentNumber: d.ApartmentNumber,
		StreetNumber:    d.StreetNumber,
	}
	if d.AddressData != nil {
		resp.AddressData = &AddressDataResponse{
			Logradouro: d.AddressData.Logradouro,
			Bairro:     d.AddressData.Bairro,
			Cidade:     d.AddressData.Cidade,
		}
	}
	return resp
}

// UpdateOrderRequest is a partial order form update. Absent fields are
// left untouched.
type UpdateOrderRequest struct {
	CustomerName    *string `json:"customer_name"`
	PaymentMethod   *string `json:"payment_method" binding:"omitempty,oneof=Pix Dinheiro Cartão"`
	Observations    *string `json:"observations"`
	Address         *string `json:"address"`
	NeedsChange     *bool   `json:"needs_change"`
	ChangeFor       *string `json:"change_for"`
	CardType        *string `json:"card_type" binding:"omitempty,oneof=Débito Crédito"`
	ResidenceType   *string `json:"residence_type" binding:"omitempty,oneof=Casa Apartamento"`
	ApartmentNumber *string `json:"apartment_number"`
	StreetNumber    *string `json:"street_number"`
}

// ToUpdateInput converts the request to the application-layer input
func (r *UpdateOrderRequest) ToUpdateInput() storefront.UpdateDetailsInput {
	input := storefront.UpdateDetailsInput{
		CustomerName:    r.CustomerName,
		Observations:    r.Observations,
		Address:         r.Address,
		NeedsChange:     r.NeedsChange,
		ChangeFor:       r.ChangeFor,
		ApartmentNumber: r.ApartmentNumber,
		StreetNumber:    r.StreetNumber,
	}
	if r.PaymentMethod != nil {
		m := order.PaymentMethod(*r.PaymentMethod)
		input.PaymentMethod = &m
	}
	if r.CardType != nil {
		ct := order.CardType(*r.CardType)
		input.CardType = &ct
	}
	if r.ResidenceType != nil {
		rt := order.ResidenceType(*r.ResidenceType)
		input.ResidenceType = &rt
	}
	return input
}

// AddressLookupRequest resolves a postal code
type AddressLookupRequest struct {
	CEP string `json:"cep" binding:"required"`
}

// AddressLookupResponse is the outcome of a postal lookup
type AddressLookupResponse struct {
	CEP     string               `json:"cep"`
	Data    AddressDataResponse  `json:"data"`
	Applied bool                 `json:"applied"`
	Details OrderDetailsResponse `json:"details"`
}

// CheckoutResponse is a composed order ready for hand-off
type CheckoutResponse struct {
	OrderID        string `json:"order_id,omitempty"`
	Message        string `json:"message"`
	Link           string `json:"link,omitempty"`
	Total          string `json:"total"`
	TotalFormatted string `json:"total_formatted"`
	TotalItems     int    `json:"total_items"`
}

// ToCheckoutResponse converts a checkout result to its response representation
func ToCheckoutResponse(r *storefront.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:        r.OrderID,
		Message:        r.Message,
		Link:           r.Link,
		Total:          r.Total.StringFixed(2),
		TotalFormatted: r.Total.Format(),
		TotalItems:     r.TotalItems,
	}
}
