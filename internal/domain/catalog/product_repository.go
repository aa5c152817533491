package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalog persistence.
// Read methods that serve the storefront only return available products.
type ProductRepository interface {
	// FindByID finds a product by its ID regardless of availability
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySlug finds a product by its slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// FindAvailable finds all available products in display order
	FindAvailable(ctx context.Context) ([]Product, error)

	// FindByCategory finds available products in a category
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	// FindRelated finds available products sharing the given product's
	// category, excluding the product itself, up to limit
	FindRelated(ctx context.Context, productID uuid.UUID, limit int) ([]Product, error)

	// Categories lists the distinct categories of available products
	Categories(ctx context.Context) ([]string, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveBatch creates or updates multiple products
	SaveBatch(ctx context.Context, products []*Product) error

	// Count counts all products
	Count(ctx context.Context) (int64, error)
}
