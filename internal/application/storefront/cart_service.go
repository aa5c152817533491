package storefront

import (
	"context"

	"github.com/google/uuid"

	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/order"
	"github.com/saborfome/backend/internal/domain/shared"
)

// ErrProductUnavailable is returned when adding a product the shop is
// not currently selling
var ErrProductUnavailable = shared.NewDomainError("PRODUCT_UNAVAILABLE", "Produto indisponível no momento")

// CartService handles cart operations for a session
type CartService struct {
	sessions *Sessions
	products catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(sessions *Sessions, products catalog.ProductRepository) *CartService {
	return &CartService{sessions: sessions, products: products}
}

// Get returns the session's cart
func (s *CartService) Get(ctx context.Context, sessionID string) (*order.Cart, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Cart, nil
}

// AddItem adds quantity of the product to the session's cart. The
// product is re-read from the catalog so the cart always carries the
// current price and name.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*order.Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, ErrProductUnavailable
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Cart.AddItem(*product, quantity)
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Cart, nil
}

// UpdateQuantity sets a line's quantity exactly; zero or less removes it
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*order.Cart, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Cart.UpdateQuantity(productID, quantity)
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Cart, nil
}

// RemoveItem removes the line for the product id
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*order.Cart, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Cart.RemoveItem(productID)
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Cart, nil
}

// Clear empties the session's cart
func (s *CartService) Clear(ctx context.Context, sessionID string) (*order.Cart, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Cart.Clear()
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Cart, nil
}
