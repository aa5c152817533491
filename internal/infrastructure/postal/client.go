package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/saborfome/backend/internal/domain/order"
	"github.com/saborfome/backend/internal/domain/shared"
)

// ErrInvalidCEP is returned for postal codes that are not 8 digits
var ErrInvalidCEP = shared.NewDomainError("INVALID_CEP", "CEP inválido")

// ErrCEPNotFound is returned when the postal code resolves to nothing,
// whether the upstream knows no such code or the lookup itself failed.
// Callers treat both the same: the customer types the address by hand.
var ErrCEPNotFound = shared.NewDomainError("CEP_NOT_FOUND", "CEP não encontrado")

// Client resolves Brazilian postal codes against the ViaCEP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds the lookup settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a postal lookup client
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	Erro       bool   `json:"erro"`
}

// Lookup resolves a postal code to a structured address. The input may
// carry formatting (e.g. "11045-200"); anything that is not exactly 8
// digits after stripping is rejected with ErrInvalidCEP.
func (c *Client) Lookup(ctx context.Context, cep string) (*order.AddressData, error) {
	digits := NormalizeCEP(cep)
	if len(digits) != 8 {
		return nil, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrCEPNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrCEPNotFound
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ErrCEPNotFound
	}
	if body.Erro {
		return nil, ErrCEPNotFound
	}

	return &order.AddressData{
		Logradouro: body.Logradouro,
		Bairro:     body.Bairro,
		Cidade:     body.Localidade,
	}, nil
}

// NormalizeCEP strips everything but digits
func NormalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCEP renders a postal code as NNNNN-NNN once it has 8 digits;
// shorter input is returned as bare digits for progressive typing.
func FormatCEP(cep string) string {
	digits := NormalizeCEP(cep)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}
