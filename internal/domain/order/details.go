package order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saborfome/backend/internal/domain/shared"
)

// PaymentMethod is the closed set of accepted payment methods
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "Pix"
	PaymentCash PaymentMethod = "Dinheiro"
	PaymentCard PaymentMethod = "Cartão"
)

// CardType qualifies card payments
type CardType string

const (
	CardDebit  CardType = "Débito"
	CardCredit CardType = "Crédito"
)

// ResidenceType gates whether an apartment number is required
type ResidenceType string

const (
	ResidenceHouse     ResidenceType = "Casa"
	ResidenceApartment ResidenceType = "Apartamento"
)

// AddressData is the structured address resolved from a postal lookup
type AddressData struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
}

// Details holds the checkout form state. It persists across orders;
// only the cart is cleared after a successful hand-off.
type Details struct {
	CustomerName    string        `json:"customerName"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Observations    string        `json:"observations"`
	Address         string        `json:"address"`
	NeedsChange     bool          `json:"needsChange"`
	ChangeFor       string        `json:"changeFor"`
	CardType        CardType      `json:"cardType"`
	ResidenceType   ResidenceType `json:"residenceType"`
	ApartmentNumber string        `json:"apartmentNumber"`
	StreetNumber    string        `json:"streetNumber"`

	// AddressData, when present, is the single source of truth for the
	// address string: Address is regenerated from it whenever any
	// structured component changes.
	AddressData *AddressData `json:"addressData,omitempty"`

	// AddressSeq is the sequence of the last applied postal lookup.
	// Lookups resolving out of order are dropped.
	AddressSeq int64 `json:"addressSeq"`
}

// NewDetails creates order details with the form defaults
func NewDetails() *Details {
	return &Details{
		PaymentMethod: PaymentPix,
		ResidenceType: ResidenceHouse,
	}
}

// Clear resets all fields to defaults
func (d *Details) Clear() {
	*d = *NewDetails()
}

// SetCustomerName sets the customer display name
func (d *Details) SetCustomerName(name string) {
	d.CustomerName = name
}

// SetPaymentMethod sets the payment method
func (d *Details) SetPaymentMethod(method PaymentMethod) error {
	switch method {
	case PaymentPix, PaymentCash, PaymentCard:
		d.PaymentMethod = method
		return nil
	default:
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Método de pagamento inválido")
	}
}

// SetObservations sets the free-text order notes
func (d *Details) SetObservations(observations string) {
	d.Observations = observations
}

// SetAddress sets a manually entered address. Manual entry takes over
// as authoritative, so any previously resolved structured address is
// dropped.
func (d *Details) SetAddress(address string) {
	d.Address = address
	d.AddressData = nil
}

// SetNeedsChange sets whether the customer needs change for cash
func (d *Details) SetNeedsChange(needsChange bool) {
	d.NeedsChange = needsChange
}

// SetChangeFor sets the bill amount the customer will pay with
func (d *Details) SetChangeFor(changeFor string) {
	d.ChangeFor = changeFor
}

// SetCardType sets the card subtype for card payments
func (d *Details) SetCardType(cardType CardType) error {
	switch cardType {
	case CardDebit, CardCredit, "":
		d.CardType = cardType
		return nil
	default:
		return shared.NewDomainError("INVALID_CARD_TYPE", "Tipo de cartão inválido")
	}
}

// SetResidenceType sets the residence type. Switching away from
// Apartamento invalidates any apartment number previously entered.
func (d *Details) SetResidenceType(residenceType ResidenceType) error {
	switch residenceType {
	case ResidenceHouse:
		d.ResidenceType = residenceType
		d.ApartmentNumber = ""
	case ResidenceApartment:
		d.ResidenceType = residenceType
	default:
		return shared.NewDomainError("INVALID_RESIDENCE_TYPE", "Tipo de residência inválido")
	}
	d.recomposeAddress()
	return nil
}

// SetApartmentNumber sets the apartment number
func (d *Details) SetApartmentNumber(apartmentNumber string) {
	d.ApartmentNumber = apartmentNumber
	d.recomposeAddress()
}

// SetStreetNumber sets the street number
func (d *Details) SetStreetNumber(streetNumber string) {
	d.StreetNumber = streetNumber
	d.recomposeAddress()
}

// ApplyAddressData applies a postal lookup result. Results carry the
// sequence of the request that produced them; a result older than the
// last applied one is ignored and false is returned.
func (d *Details) ApplyAddressData(data AddressData, seq int64) bool {
	if seq <= d.AddressSeq {
		return false
	}
	d.AddressSeq = seq
	d.AddressData = &data
	d.recomposeAddress()
	return true
}

// recomposeAddress regenerates the address string from the structured
// address. Manual addresses (no AddressData) are left untouched.
func (d *Details) recomposeAddress() {
	if d.AddressData == nil {
		return
	}
	d.Address = ComposeAddress(*d.AddressData, d.StreetNumber, d.ResidenceType, d.ApartmentNumber)
}

// ComposeAddress joins the structured address components into the
// delivery address string. Empty parts are dropped.
func ComposeAddress(data AddressData, streetNumber string, residenceType ResidenceType, apartmentNumber string) string {
	parts := make([]string, 0, 5)
	if data.Logradouro != "" {
		parts = append(parts, data.Logradouro)
	}
	if s := strings.TrimSpace(streetNumber); s != "" {
		parts = append(parts, fmt.Sprintf("nº %s", s))
	}
	if a := strings.TrimSpace(apartmentNumber); residenceType == ResidenceApartment && a != "" {
		parts = append(parts, fmt.Sprintf("Apto %s", a))
	}
	if data.Bairro != "" {
		parts = append(parts, data.Bairro)
	}
	if data.Cidade != "" {
		parts = append(parts, data.Cidade)
	}
	return strings.Join(parts, ", ")
}

// ValidationLimits holds the configurable checkout thresholds
type ValidationLimits struct {
	MinNameLength    int
	MinAddressLength int
}

// DefaultValidationLimits returns the storefront defaults
func DefaultValidationLimits() ValidationLimits {
	return ValidationLimits{
		MinNameLength:    3,
		MinAddressLength: 10,
	}
}

// Validation errors, one per missing field. The validator is
// fail-fast: only the first failure is ever reported.
var (
	ErrMissingName            = shared.NewDomainError("MISSING_NAME", "Por favor, informe seu nome")
	ErrMissingAddress         = shared.NewDomainError("MISSING_ADDRESS", "Por favor, informe seu endereço completo")
	ErrMissingStreetNumber    = shared.NewDomainError("MISSING_STREET_NUMBER", "Por favor, informe o número da residência")
	ErrMissingApartmentNumber = shared.NewDomainError("MISSING_APARTMENT_NUMBER", "Por favor, informe o número do apartamento")
	ErrMissingCardType        = shared.NewDomainError("MISSING_CARD_TYPE", "Selecione o tipo de cartão")
	ErrMissingChangeFor       = shared.NewDomainError("MISSING_CHANGE_FOR", "Informe o valor para o troco")
)

// Validate runs the conditional-requirement checks in a fixed order
// and returns the first failure: customer name, address, street number
// (structured address only), apartment number (Apartamento only), card
// type (Cartão only), change amount (Dinheiro with change only).
func (d *Details) Validate(limits ValidationLimits) error {
	if utf8.RuneCountInString(strings.TrimSpace(d.CustomerName)) < limits.MinNameLength {
		return ErrMissingName
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Address)) < limits.MinAddressLength {
		return ErrMissingAddress
	}
	if d.AddressData != nil && strings.TrimSpace(d.StreetNumber) == "" {
		return ErrMissingStreetNumber
	}
	if d.ResidenceType == ResidenceApartment && strings.TrimSpace(d.ApartmentNumber) == "" {
		return ErrMissingApartmentNumber
	}
	if d.PaymentMethod == PaymentCard && d.CardType == "" {
		return ErrMissingCardType
	}
	if d.PaymentMethod == PaymentCash && d.NeedsChange && strings.TrimSpace(d.ChangeFor) == "" {
		return ErrMissingChangeFor
	}
	return nil
}
