package order

import (
	"github.com/google/uuid"

	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/shared/valueobject"
)

// Line pairs one product with a positive quantity.
// A cart never holds more than one line per product id.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line
func (l Line) Subtotal() valueobject.Money {
	return l.Product.PriceMoney().MultiplyByInt(int64(l.Quantity))
}

// Cart is the in-progress order's line items, in insertion order.
// Totals are always derived from the lines, never stored.
type Cart struct {
	Lines []Line `json:"items"`
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddItem adds quantity of the product to the cart. If a line for the
// product already exists its quantity is incremented, otherwise a new
// line is appended. Quantities below 1 are clamped to 1.
func (c *Cart) AddItem(product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, Line{Product: product, Quantity: quantity})
}

// RemoveItem removes the line for the product id. Removing an absent
// id is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity.
// A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems returns the sum of all line quantities
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the sum of all line subtotals
func (c *Cart) Subtotal() valueobject.Money {
	subtotal := valueobject.ZeroBRL()
	for _, line := range c.Lines {
		subtotal = subtotal.MustAdd(line.Subtotal())
	}
	return subtotal
}

// Total returns the order total. The delivery fee is arranged over
// WhatsApp and never enters the numeric total, so this equals Subtotal.
func (c *Cart) Total() valueobject.Money {
	return c.Subtotal()
}
