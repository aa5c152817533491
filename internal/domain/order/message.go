package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/saborfome/backend/internal/domain/shared/valueobject"
)

const messageDivider = "━━━━━━━━━━━━━━━━━"

// NewOrderID generates a human-readable order identifier from the
// given time, e.g. "PDV-20260829-1432". It is display-only: nothing
// dereferences it, it just lets the shop refer to the message.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("PDV-%s-%s", now.Format("20060102"), now.Format("1504"))
}

// MessageInput carries everything the composer needs. It is a plain
// snapshot of cart and form state; composing has no side effects.
type MessageInput struct {
	StoreName     string
	Lines         []Line
	Total         valueobject.Money
	CustomerName  string
	PaymentMethod PaymentMethod
	Observations  string
	Address       string
	NeedsChange   bool
	ChangeFor     string
	CardType      CardType
}

// ComposeMessage renders the full order message: the header with the
// generated order id followed by the stable body. Calling it twice
// with the same id and input yields byte-identical output.
func ComposeMessage(orderID string, in MessageInput) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🍫 *%s*\n", in.StoreName))
	b.WriteString(messageDivider + "\n")
	b.WriteString(fmt.Sprintf("📋 *Pedido:* %s\n\n", orderID))
	b.WriteString(ComposeMessageBody(in))
	return b.String()
}

// ComposeMessageBody renders the order-dependent part of the message:
// itemized lines, total, customer and delivery information. It is
// deterministic for a given input, independent of the order id.
func ComposeMessageBody(in MessageInput) string {
	var b strings.Builder

	b.WriteString("*Itens do Pedido:*\n")
	for _, line := range in.Lines {
		b.WriteString(fmt.Sprintf("• %dx %s\n", line.Quantity, line.Product.Name))
		b.WriteString(fmt.Sprintf("  (%s) = %s\n", line.Product.PriceMoney().Format(), line.Subtotal().Format()))
	}

	b.WriteString("\n" + messageDivider + "\n")
	b.WriteString(fmt.Sprintf("💰 *Total: %s*\n", in.Total.Format()))
	b.WriteString(messageDivider + "\n\n")

	if in.CustomerName != "" {
		b.WriteString(fmt.Sprintf("👤 *Nome:* %s\n", in.CustomerName))
	}

	b.WriteString(fmt.Sprintf("💳 *Pagamento:* %s", in.PaymentMethod))
	if in.PaymentMethod == PaymentCard && in.CardType != "" {
		b.WriteString(fmt.Sprintf(" (%s)", in.CardType))
	}
	b.WriteString("\n")

	if in.PaymentMethod == PaymentCash && in.NeedsChange && in.ChangeFor != "" {
		b.WriteString(fmt.Sprintf("💵 *Troco para:* %s\n", in.ChangeFor))
	}

	if in.Address != "" {
		b.WriteString(fmt.Sprintf("📍 *Endereço:* %s\n", in.Address))
	}

	if in.Observations != "" {
		b.WriteString(fmt.Sprintf("📝 *Obs:* %s\n", in.Observations))
	}

	b.WriteString("\n🙏 Obrigada pela preferência!")

	return b.String()
}
