package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/shared"
)

func TestCatalogServiceListProducts(t *testing.T) {
	ctx := context.Background()

	bolo := testProduct(t, "Bolo de Chocolate", "bolos", 25.00)
	bolo.Tags = catalog.TagList{"chocolate"}
	cenoura := testProduct(t, "Bolo de Cenoura", "bolos", 22.00)
	torta := testProduct(t, "Torta de Limão", "tortas", 8.50)
	all := []catalog.Product{*bolo, *cenoura, *torta}

	t.Run("lists all available products", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindAvailable", ctx).Return(all, nil)

		products, err := NewCatalogService(repo).ListProducts(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, products, 3)
		repo.AssertExpectations(t)
	})

	t.Run("category narrows the listing", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByCategory", ctx, "bolos").Return([]catalog.Product{*bolo, *cenoura}, nil)

		products, err := NewCatalogService(repo).ListProducts(ctx, "bolos", "")
		require.NoError(t, err)
		assert.Len(t, products, 2)
		repo.AssertExpectations(t)
	})

	t.Run("query filters by name, description, and tags", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindAvailable", ctx).Return(all, nil)

		products, err := NewCatalogService(repo).ListProducts(ctx, "", "chocolate")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Bolo de Chocolate", products[0].Name)
	})

	t.Run("query combines with category", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByCategory", ctx, "bolos").Return([]catalog.Product{*bolo, *cenoura}, nil)

		products, err := NewCatalogService(repo).ListProducts(ctx, "bolos", "cenoura")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Bolo de Cenoura", products[0].Name)
	})

	t.Run("no matches yields an empty list, not nil", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindAvailable", ctx).Return(all, nil)

		products, err := NewCatalogService(repo).ListProducts(ctx, "", "picolé")
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestCatalogServiceGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the product for a known slug", func(t *testing.T) {
		bolo := testProduct(t, "Bolo de Chocolate", "bolos", 25.00)
		repo := new(MockProductRepository)
		repo.On("FindBySlug", ctx, "bolo-de-chocolate").Return(bolo, nil)

		product, err := NewCatalogService(repo).GetProduct(ctx, "bolo-de-chocolate")
		require.NoError(t, err)
		assert.Equal(t, bolo.ID, product.ID)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindBySlug", ctx, "nope").Return(nil, shared.ErrNotFound)

		_, err := NewCatalogService(repo).GetProduct(ctx, "nope")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCatalogServiceGetRelated(t *testing.T) {
	ctx := context.Background()
	bolo := testProduct(t, "Bolo de Chocolate", "bolos", 25.00)

	t.Run("resolves the slug then fetches by category", func(t *testing.T) {
		cenoura := testProduct(t, "Bolo de Cenoura", "bolos", 22.00)
		repo := new(MockProductRepository)
		repo.On("FindBySlug", ctx, "bolo-de-chocolate").Return(bolo, nil)
		repo.On("FindRelated", ctx, bolo.ID, 2).Return([]catalog.Product{*cenoura}, nil)

		related, err := NewCatalogService(repo).GetRelated(ctx, "bolo-de-chocolate", 2)
		require.NoError(t, err)
		require.Len(t, related, 1)
		assert.Equal(t, "Bolo de Cenoura", related[0].Name)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindBySlug", ctx, "bolo-de-chocolate").Return(bolo, nil)
		repo.On("FindRelated", ctx, bolo.ID, DefaultRelatedLimit).Return([]catalog.Product{}, nil)

		_, err := NewCatalogService(repo).GetRelated(ctx, "bolo-de-chocolate", 0)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestCatalogServiceCategories(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	repo.On("Categories", ctx).Return([]string{"bolos", "tortas"}, nil)

	categories, err := NewCatalogService(repo).Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bolos", "tortas"}, categories)
}
