package whatsapp

import (
	"net/url"

	"github.com/saborfome/backend/internal/domain/shared"
)

// PlaceholderNumber is the seeded destination meaning "not configured"
const PlaceholderNumber = "5500000000000"

// ErrNotConfigured is returned when no real destination number is set
var ErrNotConfigured = shared.NewDomainError("WHATSAPP_NOT_CONFIGURED", "Número de WhatsApp não configurado")

// LinkBuilder builds wa.me deep links for the order hand-off
type LinkBuilder struct {
	number string
}

// NewLinkBuilder creates a link builder for the given destination
// number (digits only, country code included)
func NewLinkBuilder(number string) *LinkBuilder {
	return &LinkBuilder{number: number}
}

// Configured reports whether a real destination number is set
func (b *LinkBuilder) Configured() bool {
	return b.number != "" && b.number != PlaceholderNumber
}

// OrderLink builds the deep link that opens a chat with the shop,
// message prefilled. Returns ErrNotConfigured while the destination is
// still the placeholder so checkout can degrade gracefully.
func (b *LinkBuilder) OrderLink(message string) (string, error) {
	if !b.Configured() {
		return "", ErrNotConfigured
	}
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + b.number,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String(), nil
}
