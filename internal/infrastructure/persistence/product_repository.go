package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID regardless of availability
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySlug finds a product by its slug
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAvailable finds all available products in display order
func (r *GormProductRepository) FindAvailable(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("category, name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory finds available products in a category
func (r *GormProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("available = ? AND category = ?", true, category).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindRelated finds available products sharing the given product's
// category, excluding the product itself, up to limit
func (r *GormProductRepository) FindRelated(ctx context.Context, productID uuid.UUID, limit int) ([]catalog.Product, error) {
	product, err := r.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("available = ? AND category = ? AND id <> ?", true, product.Category, productID).
		Order("name").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Categories lists the distinct categories of available products
func (r *GormProductRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("available = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(product).Error
}

// SaveBatch creates or updates multiple products
func (r *GormProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(products).Error
}

// Count counts all products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
