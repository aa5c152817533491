package storefront

import (
	"context"

	"go.uber.org/zap"

	"github.com/saborfome/backend/internal/domain/order"
)

// PostalLookup resolves a postal code to a structured address
type PostalLookup interface {
	Lookup(ctx context.Context, cep string) (*order.AddressData, error)
}

// UpdateDetailsInput carries a partial order form update. Nil fields
// are left untouched so the form can be saved field by field as the
// customer types.
type UpdateDetailsInput struct {
	CustomerName    *string              `json:"customerName"`
	PaymentMethod   *order.PaymentMethod `json:"paymentMethod"`
	Observations    *string              `json:"observations"`
	Address         *string              `json:"address"`
	NeedsChange     *bool                `json:"needsChange"`
	ChangeFor       *string              `json:"changeFor"`
	CardType        *order.CardType      `json:"cardType"`
	ResidenceType   *order.ResidenceType `json:"residenceType"`
	ApartmentNumber *string              `json:"apartmentNumber"`
	StreetNumber    *string              `json:"streetNumber"`
}

// AddressLookupResult is what a completed postal lookup produced
type AddressLookupResult struct {
	Data    *order.AddressData
	Details *order.Details
	Applied bool
}

// OrderService handles the order form of a session
type OrderService struct {
	sessions *Sessions
	postal   PostalLookup
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(sessions *Sessions, postal PostalLookup, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{sessions: sessions, postal: postal, logger: logger}
}

// Get returns the session's order form
func (s *OrderService) Get(ctx context.Context, sessionID string) (*order.Details, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Details, nil
}

// Update applies a partial form update and persists the session
func (s *OrderService) Update(ctx context.Context, sessionID string, input UpdateDetailsInput) (*order.Details, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	d := state.Details
	if input.CustomerName != nil {
		d.SetCustomerName(*input.CustomerName)
	}
	if input.PaymentMethod != nil {
		if err := d.SetPaymentMethod(*input.PaymentMethod); err != nil {
			return nil, err
		}
	}
	if input.Observations != nil {
		d.SetObservations(*input.Observations)
	}
	if input.Address != nil {
		d.SetAddress(*input.Address)
	}
	if input.NeedsChange != nil {
		d.SetNeedsChange(*input.NeedsChange)
	}
	if input.ChangeFor != nil {
		d.SetChangeFor(*input.ChangeFor)
	}
	if input.CardType != nil {
		if err := d.SetCardType(*input.CardType); err != nil {
			return nil, err
		}
	}
	if input.ResidenceType != nil {
		if err := d.SetResidenceType(*input.ResidenceType); err != nil {
			return nil, err
		}
	}
	if input.ApartmentNumber != nil {
		d.SetApartmentNumber(*input.ApartmentNumber)
	}
	if input.StreetNumber != nil {
		d.SetStreetNumber(*input.StreetNumber)
	}

	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return d, nil
}

// Clear resets the session's order form. Lookups still in flight when
// the form is cleared are invalidated: their results must not
// repopulate the address afterward.
func (s *OrderService) Clear(ctx context.Context, sessionID string) (*order.Details, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Details.Clear()
	state.Details.AddressSeq = state.LookupSeq
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Details, nil
}

// LookupAddress resolves a postal code and applies the result to the
// session's order form. Each lookup takes a sequence number before the
// remote call starts; the form only accepts a result if no newer
// lookup has been issued meanwhile, so a slow response can never
// overwrite a faster, more recent one.
func (s *OrderService) LookupAddress(ctx context.Context, sessionID, cep string) (*AddressLookupResult, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.LookupSeq++
	seq := state.LookupSeq
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	data, err := s.postal.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}

	// Reload: the session may have moved on while the lookup ran
	state, err = s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	applied := state.Details.ApplyAddressData(*data, seq)
	if applied {
		if err := s.sessions.Save(ctx, sessionID, state); err != nil {
			return nil, err
		}
	} else {
		s.logger.Debug("ignoring stale postal lookup result",
			zap.String("session_id", sessionID),
			zap.Int64("seq", seq),
			zap.Int64("latest", state.Details.AddressSeq))
	}

	return &AddressLookupResult{
		Data:    data,
		Details: state.Details,
		Applied: applied,
	}, nil
}
