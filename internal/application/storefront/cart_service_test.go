package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborfome/backend/internal/domain/shared"
)

func TestCartService(t *testing.T) {
	ctx := context.Background()
	bolo := testProduct(t, "Bolo de Chocolate", "bolos", 25.00)
	torta := testProduct(t, "Torta de Limão", "tortas", 8.50)

	newService := func(t *testing.T) (*CartService, *MockProductRepository) {
		repo := new(MockProductRepository)
		return NewCartService(newTestSessions(t), repo), repo
	}

	t.Run("empty session yields an empty cart", func(t *testing.T) {
		svc, _ := newService(t)
		cart, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("missing session id is rejected", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("added items persist across requests", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("FindByID", ctx, bolo.ID).Return(bolo, nil)

		_, err := svc.AddItem(ctx, "s1", bolo.ID, 2)
		require.NoError(t, err)

		cart, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("sessions are isolated from each other", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("FindByID", ctx, bolo.ID).Return(bolo, nil)

		_, err := svc.AddItem(ctx, "s1", bolo.ID, 1)
		require.NoError(t, err)

		other, err := svc.Get(ctx, "s2")
		require.NoError(t, err)
		assert.True(t, other.IsEmpty())
	})

	t.Run("unknown product cannot be added", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("FindByID", ctx, torta.ID).Return(nil, shared.ErrNotFound)

		_, err := svc.AddItem(ctx, "s1", torta.ID, 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unavailable product cannot be added", func(t *testing.T) {
		hidden := testProduct(t, "Brownie", "tortas", 6.00)
		hidden.SetAvailable(false)

		svc, repo := newService(t)
		repo.On("FindByID", ctx, hidden.ID).Return(hidden, nil)

		_, err := svc.AddItem(ctx, "s1", hidden.ID, 1)
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("update and remove flow", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("FindByID", ctx, bolo.ID).Return(bolo, nil)
		repo.On("FindByID", ctx, torta.ID).Return(torta, nil)

		_, err := svc.AddItem(ctx, "s1", bolo.ID, 3)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "s1", torta.ID, 1)
		require.NoError(t, err)

		cart, err := svc.UpdateQuantity(ctx, "s1", bolo.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, cart.TotalItems())

		cart, err = svc.RemoveItem(ctx, "s1", torta.ID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)

		cart, err = svc.UpdateQuantity(ctx, "s1", bolo.ID, 0)
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("FindByID", ctx, bolo.ID).Return(bolo, nil)

		_, err := svc.AddItem(ctx, "s1", bolo.ID, 2)
		require.NoError(t, err)

		cart, err := svc.Clear(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())

		cart, err = svc.Get(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})
}
