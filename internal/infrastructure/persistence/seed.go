package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/shared"
)

// SeedProduct is one entry of the catalog seed file
type SeedProduct struct {
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Available   *bool           `json:"available"`
}

// SeedCatalogFromFile loads the seed file and upserts its products,
// keyed by slug. Products already in the database keep their id so
// carts referencing them stay valid across reseeds.
func SeedCatalogFromFile(ctx context.Context, repo catalog.ProductRepository, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []SeedProduct
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return SeedCatalog(ctx, repo, entries)
}

// SeedCatalog upserts the given seed entries
func SeedCatalog(ctx context.Context, repo catalog.ProductRepository, entries []SeedProduct) (int, error) {
	products := make([]*catalog.Product, 0, len(entries))
	for i, entry := range entries {
		product, err := seedToProduct(ctx, repo, entry)
		if err != nil {
			return 0, fmt.Errorf("seed entry %d (%s): %w", i, entry.Name, err)
		}
		products = append(products, product)
	}

	if err := repo.SaveBatch(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}

func seedToProduct(ctx context.Context, repo catalog.ProductRepository, entry SeedProduct) (*catalog.Product, error) {
	slug := entry.Slug
	if slug == "" {
		slug = catalog.Slugify(entry.Name)
	}

	existing, err := repo.FindBySlug(ctx, slug)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	var product *catalog.Product
	if existing != nil {
		product = existing
		if err := product.Update(entry.Name, entry.Description); err != nil {
			return nil, err
		}
		product.Category = entry.Category
		product.Unit = entry.Unit
		product.Price = entry.Price
	} else {
		product, err = catalog.NewProduct(entry.Name, entry.Category, entry.Unit, entry.Price)
		if err != nil {
			return nil, err
		}
		if err := product.SetSlug(slug); err != nil {
			return nil, err
		}
		product.Description = entry.Description
	}

	product.Image = entry.Image
	product.Tags = catalog.TagList(entry.Tags)
	if product.Tags == nil {
		product.Tags = catalog.TagList{}
	}
	if entry.Available != nil {
		product.SetAvailable(*entry.Available)
	} else {
		product.SetAvailable(true)
	}

	return product, nil
}
