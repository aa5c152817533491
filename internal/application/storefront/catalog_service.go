package storefront

import (
	"context"

	"github.com/saborfome/backend/internal/domain/catalog"
)

// DefaultRelatedLimit caps the related-products strip on product pages
const DefaultRelatedLimit = 4

// CatalogService handles catalog browse and search operations
type CatalogService struct {
	products catalog.ProductRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(products catalog.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns available products, optionally narrowed to a
// category and filtered by a free-text query over name, description,
// and tags.
func (s *CatalogService) ListProducts(ctx context.Context, category, query string) ([]catalog.Product, error) {
	var (
		products []catalog.Product
		err      error
	)
	if category != "" {
		products, err = s.products.FindByCategory(ctx, category)
	} else {
		products, err = s.products.FindAvailable(ctx)
	}
	if err != nil {
		return nil, err
	}

	if query == "" {
		return products, nil
	}

	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.MatchesQuery(query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetProduct returns one product by slug
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*catalog.Product, error) {
	return s.products.FindBySlug(ctx, slug)
}

// GetRelated returns up to limit available products from the same
// category as the product with the given slug
func (s *CatalogService) GetRelated(ctx context.Context, slug string, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.products.FindRelated(ctx, product.ID, limit)
}

// Categories lists the distinct categories of available products
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}
