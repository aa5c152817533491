package postal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCEP(t *testing.T) {
	assert.Equal(t, "11045200", NormalizeCEP("11045-200"))
	assert.Equal(t, "11045200", NormalizeCEP("11.045-200"))
	assert.Equal(t, "", NormalizeCEP("abc"))
}

func TestFormatCEP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"11045", "11045"},
		{"110452", "11045-2"},
		{"11045200", "11045-200"},
		{"11045-200", "11045-200"},
		{"110452009999", "11045-200"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCEP(tt.in))
		})
	}
}

func TestClientLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a known postal code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ws/11045200/json/", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"logradouro":"Avenida Ana Costa","bairro":"Gonzaga","localidade":"Santos"}`)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		data, err := client.Lookup(ctx, "11045-200")
		require.NoError(t, err)
		assert.Equal(t, "Avenida Ana Costa", data.Logradouro)
		assert.Equal(t, "Gonzaga", data.Bairro)
		assert.Equal(t, "Santos", data.Cidade)
	})

	t.Run("rejects malformed postal codes without calling upstream", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		for _, cep := range []string{"", "1104520", "110452001", "abcdefgh"} {
			_, err := client.Lookup(ctx, cep)
			assert.ErrorIs(t, err, ErrInvalidCEP, cep)
		}
		assert.False(t, called)
	})

	t.Run("unknown postal code maps to ErrCEPNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"erro": true}`)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Lookup(ctx, "99999999")
		assert.ErrorIs(t, err, ErrCEPNotFound)
	})

	t.Run("upstream failure maps to ErrCEPNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Lookup(ctx, "11045200")
		assert.ErrorIs(t, err, ErrCEPNotFound)
	})

	t.Run("unreachable upstream maps to ErrCEPNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(Config{BaseURL: server.URL, Timeout: time.Second})
		_, err := client.Lookup(ctx, "11045200")
		assert.ErrorIs(t, err, ErrCEPNotFound)
	})
}
