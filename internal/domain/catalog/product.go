package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/saborfome/backend/internal/domain/shared"
	"github.com/saborfome/backend/internal/domain/shared/valueobject"
)

// TagList stores product tag labels as a JSON array column
type TagList []string

// Value implements driver.Valuer
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (t *TagList) Scan(value any) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}
	if len(data) == 0 {
		*t = TagList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(t))
}

// Product represents an item of the storefront catalog
// It is the aggregate root for catalog operations
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"price"`
	Unit        string          `gorm:"type:varchar(20);not null" json:"unit"` // display label, e.g. "unidade", "kg"
	Image       string          `gorm:"type:text" json:"image"`
	Description string          `gorm:"type:text" json:"description"`
	Tags        TagList         `gorm:"type:text" json:"tags"`
	Available   bool            `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(name, category, unit string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Product unit cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New(),
		Slug:      Slugify(name),
		Name:      name,
		Category:  category,
		Price:     price,
		Unit:      unit,
		Tags:      TagList{},
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetSlug overrides the generated slug
func (p *Product) SetSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Product slug cannot be empty")
	}
	p.Slug = slug
	p.UpdatedAt = time.Now()
	return nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrice updates the product price
func (p *Product) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.Price = price.Amount()
	p.UpdatedAt = time.Now()
	return nil
}

// SetAvailable toggles product availability
func (p *Product) SetAvailable(available bool) {
	p.Available = available
	p.UpdatedAt = time.Now()
}

// PriceMoney returns the unit price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(p.Price)
}

// MatchesQuery reports whether the product matches a free-text search
// over name, description, and tags (case-insensitive). A blank query
// matches everything.
func (p *Product) MatchesQuery(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Slugify derives a URL slug from a product name: lowercase, accents
// stripped, non-alphanumerics collapsed to single hyphens.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
