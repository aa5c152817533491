package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), BRL)
		require.NoError(t, err)
		assert.Equal(t, BRL, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", BRL)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", BRL)
		assert.Error(t, err)
	})
}

func TestNewMoneyBRL(t *testing.T) {
	m := NewMoneyBRL(decimal.NewFromFloat(50.00))
	assert.Equal(t, BRL, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestZeroBRL(t *testing.T) {
	m := ZeroBRL()
	assert.True(t, m.IsZero())
	assert.Equal(t, BRL, m.Currency())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		a := NewMoneyBRLFromFloat(10.50)
		b := NewMoneyBRLFromFloat(4.50)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(15.00)))
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		a := NewMoneyBRLFromFloat(10)
		b, _ := NewMoney(decimal.NewFromInt(10), USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("repeated cent additions do not drift", func(t *testing.T) {
		cent, err := NewMoneyBRLFromString("0.01")
		require.NoError(t, err)

		sum := ZeroBRL()
		for range 100 {
			sum = sum.MustAdd(cent)
		}
		assert.Equal(t, "1.00", sum.StringFixed(2))
	})
}

func TestMoneyMultiplyByInt(t *testing.T) {
	m := NewMoneyBRLFromFloat(25.00)
	result := m.MultiplyByInt(2)
	assert.True(t, result.Amount().Equal(decimal.NewFromFloat(50.00)))
	assert.Equal(t, BRL, result.Currency())
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"unit price", "25", "R$ 25,00"},
		{"cents", "3.5", "R$ 3,50"},
		{"thousands grouping", "1234.56", "R$ 1.234,56"},
		{"zero", "0", "R$ 0,00"},
		{"rounds to cents", "9.999", "R$ 10,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyBRLFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Format())
		})
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	original := NewMoneyBRLFromFloat(99.90)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Money
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, original.Equals(restored))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("12.34"))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(12.34)))
		assert.Equal(t, BRL, m.Currency())
	})

	t.Run("nil becomes zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(3.14))
	})
}
