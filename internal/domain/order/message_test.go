package order

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, "PDV-20260829-1405", NewOrderID(now))
}

func messageFixture(t *testing.T) MessageInput {
	t.Helper()
	cart := NewCart()
	cart.AddItem(newTestProduct(t, "Bolo de Chocolate", 25.00), 2)
	cart.AddItem(newTestProduct(t, "Brigadeiro", 3.50), 10)

	return MessageInput{
		StoreName:     "SABOR FOME",
		Lines:         cart.Lines,
		Total:         cart.Total(),
		CustomerName:  "Ana Paula",
		PaymentMethod: PaymentPix,
		Address:       "Rua das Flores, nº 123, Centro, Santos",
	}
}

func TestComposeMessage(t *testing.T) {
	in := messageFixture(t)
	msg := ComposeMessage("PDV-20260829-1405", in)

	assert.True(t, strings.HasPrefix(msg, "🍫 *SABOR FOME*\n"))
	assert.Contains(t, msg, "📋 *Pedido:* PDV-20260829-1405")
	assert.Contains(t, msg, "• 2x Bolo de Chocolate\n  (R$ 25,00) = R$ 50,00")
	assert.Contains(t, msg, "• 10x Brigadeiro\n  (R$ 3,50) = R$ 35,00")
	assert.Contains(t, msg, "💰 *Total: R$ 85,00*")
	assert.Contains(t, msg, "👤 *Nome:* Ana Paula")
	assert.Contains(t, msg, "💳 *Pagamento:* Pix")
	assert.Contains(t, msg, "📍 *Endereço:* Rua das Flores, nº 123, Centro, Santos")
	assert.True(t, strings.HasSuffix(msg, "🙏 Obrigada pela preferência!"))

	t.Run("same input composes identically", func(t *testing.T) {
		assert.Equal(t, msg, ComposeMessage("PDV-20260829-1405", in))
	})
}

func TestComposeMessageBody(t *testing.T) {
	t.Run("card payments include the card type", func(t *testing.T) {
		in := messageFixture(t)
		in.PaymentMethod = PaymentCard
		in.CardType = CardCredit

		body := ComposeMessageBody(in)
		assert.Contains(t, body, "💳 *Pagamento:* Cartão (Crédito)")
	})

	t.Run("cash with change includes the change line", func(t *testing.T) {
		in := messageFixture(t)
		in.PaymentMethod = PaymentCash
		in.NeedsChange = true
		in.ChangeFor = "R$ 100,00"

		body := ComposeMessageBody(in)
		assert.Contains(t, body, "💳 *Pagamento:* Dinheiro")
		assert.Contains(t, body, "💵 *Troco para:* R$ 100,00")
	})

	t.Run("change line omitted unless cash and requested", func(t *testing.T) {
		in := messageFixture(t)
		in.NeedsChange = true
		in.ChangeFor = "R$ 100,00"

		body := ComposeMessageBody(in)
		require.Equal(t, PaymentPix, in.PaymentMethod)
		assert.NotContains(t, body, "Troco para")
	})

	t.Run("optional sections dropped when empty", func(t *testing.T) {
		in := messageFixture(t)
		in.CustomerName = ""
		in.Address = ""
		in.Observations = ""

		body := ComposeMessageBody(in)
		assert.NotContains(t, body, "Nome:")
		assert.NotContains(t, body, "Endereço:")
		assert.NotContains(t, body, "Obs:")
	})

	t.Run("observations included when present", func(t *testing.T) {
		in := messageFixture(t)
		in.Observations = "Sem açúcar no brigadeiro"

		body := ComposeMessageBody(in)
		assert.Contains(t, body, "📝 *Obs:* Sem açúcar no brigadeiro")
	})
}
