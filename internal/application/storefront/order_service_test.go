package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborfome/backend/internal/domain/order"
)

func strPtr(s string) *string { return &s }

func TestOrderServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial updates leave other fields alone", func(t *testing.T) {
		svc := NewOrderService(newTestSessions(t), &stubPostal{}, nil)

		_, err := svc.Update(ctx, "s1", UpdateDetailsInput{CustomerName: strPtr("Ana Paula")})
		require.NoError(t, err)

		method := order.PaymentCash
		details, err := svc.Update(ctx, "s1", UpdateDetailsInput{PaymentMethod: &method})
		require.NoError(t, err)

		assert.Equal(t, "Ana Paula", details.CustomerName)
		assert.Equal(t, order.PaymentCash, details.PaymentMethod)
	})

	t.Run("invalid payment method is rejected and not saved", func(t *testing.T) {
		svc := NewOrderService(newTestSessions(t), &stubPostal{}, nil)

		bad := order.PaymentMethod("Cheque")
		_, err := svc.Update(ctx, "s1", UpdateDetailsInput{PaymentMethod: &bad})
		require.Error(t, err)

		details, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentPix, details.PaymentMethod)
	})

	t.Run("clear resets the form", func(t *testing.T) {
		svc := NewOrderService(newTestSessions(t), &stubPostal{}, nil)

		_, err := svc.Update(ctx, "s1", UpdateDetailsInput{
			CustomerName: strPtr("Ana"),
			Address:      strPtr("Rua X, 10"),
		})
		require.NoError(t, err)

		details, err := svc.Clear(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, details.CustomerName)
		assert.Empty(t, details.Address)
	})
}

func TestOrderServiceLookupAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the resolved address to the form", func(t *testing.T) {
		postal := &stubPostal{data: &order.AddressData{
			Logradouro: "Avenida Ana Costa",
			Bairro:     "Gonzaga",
			Cidade:     "Santos",
		}}
		svc := NewOrderService(newTestSessions(t), postal, nil)

		result, err := svc.LookupAddress(ctx, "s1", "11045-200")
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Equal(t, "Avenida Ana Costa, Gonzaga, Santos", result.Details.Address)

		details, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, details.AddressData)
		assert.Equal(t, "Gonzaga", details.AddressData.Bairro)
	})

	t.Run("lookup failures leave the form untouched", func(t *testing.T) {
		postal := &stubPostal{err: order.ErrMissingAddress}
		svc := NewOrderService(newTestSessions(t), postal, nil)

		_, err := svc.LookupAddress(ctx, "s1", "99999-999")
		require.Error(t, err)

		details, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, details.AddressData)
		assert.Empty(t, details.Address)
	})

	t.Run("clearing the form drops a lookup still in flight", func(t *testing.T) {
		sessions := newTestSessions(t)
		postal := &stubPostal{data: &order.AddressData{Logradouro: "Rua Nova"}}
		svc := NewOrderService(sessions, postal, nil)

		// The form is cleared while the lookup waits on the remote call
		postal.onLookup = func() {
			_, err := svc.Clear(ctx, "s1")
			require.NoError(t, err)
		}

		result, err := svc.LookupAddress(ctx, "s1", "11045-200")
		require.NoError(t, err)
		assert.False(t, result.Applied)
		assert.Nil(t, result.Details.AddressData)
		assert.Empty(t, result.Details.Address)

		details, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, details.Address)
	})

	t.Run("a result older than the applied one is ignored", func(t *testing.T) {
		sessions := newTestSessions(t)
		postal := &stubPostal{data: &order.AddressData{Logradouro: "Rua Nova"}}
		svc := NewOrderService(sessions, postal, nil)

		// A newer lookup has already been applied with a higher sequence
		state, err := sessions.Load(ctx, "s1")
		require.NoError(t, err)
		state.LookupSeq = 5
		state.Details.ApplyAddressData(order.AddressData{Logradouro: "Rua Atual"}, 5)
		require.NoError(t, sessions.Save(ctx, "s1", state))

		// Pretend this request was issued before seq 5 existed
		state, err = sessions.Load(ctx, "s1")
		require.NoError(t, err)
		state.LookupSeq = 2
		require.NoError(t, sessions.Save(ctx, "s1", state))

		result, err := svc.LookupAddress(ctx, "s1", "11045-200")
		require.NoError(t, err)
		assert.False(t, result.Applied)
		assert.Equal(t, "Rua Atual", result.Details.AddressData.Logradouro)
	})
}
