package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saborfome/backend/internal/domain/catalog"
	"github.com/saborfome/backend/internal/domain/order"
	"github.com/saborfome/backend/internal/infrastructure/snapshot"
	"github.com/saborfome/backend/internal/infrastructure/whatsapp"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAvailable(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindRelated(ctx context.Context, productID uuid.UUID, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	return m.Called(ctx, products).Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// stubPostal returns canned lookup results. The optional hook runs
// while the lookup is in flight so tests can interleave session
// mutations with it.
type stubPostal struct {
	data     *order.AddressData
	err      error
	onLookup func()
}

func (s *stubPostal) Lookup(_ context.Context, _ string) (*order.AddressData, error) {
	if s.onLookup != nil {
		s.onLookup()
	}
	return s.data, s.err
}

// stubLinks is a LinkBuilder with a fixed destination
type stubLinks struct {
	configured bool
	lastMsg    string
}

func (s *stubLinks) Configured() bool {
	return s.configured
}

func (s *stubLinks) OrderLink(message string) (string, error) {
	if !s.configured {
		return "", whatsapp.ErrNotConfigured
	}
	s.lastMsg = message
	return "https://wa.me/5513999990000?text=" + message, nil
}

func newTestSessions(t *testing.T) *Sessions {
	t.Helper()
	return NewSessions(snapshot.NewMemoryStore(time.Minute), nil)
}

func testProduct(t *testing.T, name, category string, price float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, category, "unidade", decimal.NewFromFloat(price))
	require.NoError(t, err)
	return p
}
