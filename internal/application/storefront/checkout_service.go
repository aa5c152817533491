package storefront

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/saborfome/backend/internal/domain/order"
	"github.com/saborfome/backend/internal/domain/shared"
	"github.com/saborfome/backend/internal/domain/shared/valueobject"
)

// ErrEmptyCart is returned when checking out with nothing in the cart
var ErrEmptyCart = shared.NewDomainError("EMPTY_CART", "Seu carrinho está vazio")

// LinkBuilder turns a composed order message into the hand-off link
type LinkBuilder interface {
	Configured() bool
	OrderLink(message string) (string, error)
}

// CheckoutResult is a composed order ready for hand-off
type CheckoutResult struct {
	OrderID    string
	Message    string
	Link       string
	Total      valueobject.Money
	TotalItems int
}

// CheckoutService validates the session's cart and order form,
// composes the order message, and builds the hand-off link
type CheckoutService struct {
	sessions  *Sessions
	links     LinkBuilder
	storeName string
	limits    order.ValidationLimits
	logger    *zap.Logger
	now       func() time.Time
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(sessions *Sessions, links LinkBuilder, storeName string, limits order.ValidationLimits, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		sessions:  sessions,
		links:     links,
		storeName: storeName,
		limits:    limits,
		logger:    logger,
		now:       time.Now,
	}
}

// Preview validates the session and composes the order without side
// effects: no order id is generated, no link is built, and the cart is
// left alone. The storefront uses it to show the message ahead of the
// hand-off.
func (s *CheckoutService) Preview(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	state, err := s.validated(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Message:    order.ComposeMessageBody(s.messageInput(state)),
		Total:      state.Cart.Total(),
		TotalItems: state.Cart.TotalItems(),
	}, nil
}

// Confirm validates the session, composes the full order message with
// a fresh order id, builds the hand-off link, and clears the cart. The
// order form is kept so the next order starts pre-filled. A session
// whose link cannot be built keeps its cart untouched.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	state, err := s.validated(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orderID := order.NewOrderID(s.now())
	message := order.ComposeMessage(orderID, s.messageInput(state))

	link, err := s.links.OrderLink(message)
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{
		OrderID:    orderID,
		Message:    message,
		Link:       link,
		Total:      state.Cart.Total(),
		TotalItems: state.Cart.TotalItems(),
	}

	state.Cart.Clear()
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.logger.Info("order handed off",
		zap.String("session_id", sessionID),
		zap.String("order_id", orderID),
		zap.Int("items", result.TotalItems),
		zap.String("total", result.Total.StringFixed(2)))

	return result, nil
}

// validated loads the session and runs the checkout checks: the form
// first, field by field, then the cart. The cart check runs last so
// the customer fixes form mistakes before hearing about an empty cart.
func (s *CheckoutService) validated(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := state.Details.Validate(s.limits); err != nil {
		return nil, err
	}
	if state.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return state, nil
}

func (s *CheckoutService) messageInput(state *State) order.MessageInput {
	d := state.Details
	return order.MessageInput{
		StoreName:     s.storeName,
		Lines:         state.Cart.Lines,
		Total:         state.Cart.Total(),
		CustomerName:  d.CustomerName,
		PaymentMethod: d.PaymentMethod,
		Observations:  d.Observations,
		Address:       d.Address,
		NeedsChange:   d.NeedsChange,
		ChangeFor:     d.ChangeFor,
		CardType:      d.CardType,
	}
}
