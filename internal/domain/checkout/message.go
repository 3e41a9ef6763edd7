// internal/domain/checkout/message.go
package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/ikilo/storefront-backend/internal/domain/order"
	"github.com/ikilo/storefront-backend/internal/pkg/currency"
)

// Indonesian day and month names for the order timestamp line
var (
	weekdayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	monthNames   = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// FormatOrderDate renders a timestamp as an Indonesian long date,
// e.g. "Jumat, 29 Agustus 2026 10.15"
func FormatOrderDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d %02d.%02d",
		weekdayNames[t.Weekday()],
		t.Day(),
		monthNames[t.Month()-1],
		t.Year(),
		t.Hour(),
		t.Minute(),
	)
}

// RenderMessage renders the outbound order message. The section order and
// field set are the wire contract with the person reading the message on
// the receiving phone; do not reorder or rename sections.
func RenderMessage(o *order.Order, composedAt time.Time, storeName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PESANAN BARU - %s\n\n", storeName)
	fmt.Fprintf(&b, "Order ID: %s\n", o.OrderNumber)
	fmt.Fprintf(&b, "Tanggal: %s\n\n", FormatOrderDate(composedAt))

	b.WriteString("INFORMASI PELANGGAN\n")
	fmt.Fprintf(&b, "• Nama     : %s\n", o.CustomerName)
	fmt.Fprintf(&b, "• Telepon  : %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "• Alamat   : %s\n\n", o.CustomerAddress)

	b.WriteString("DETAIL PESANAN\n")
	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.ProductName)
		fmt.Fprintf(&b, "   • Varian    : %s\n", item.Variation)
		fmt.Fprintf(&b, "   • Harga     : %s\n", currency.FormatIDR(item.Price))
		fmt.Fprintf(&b, "   • Jumlah    : %d\n", item.Quantity)
		fmt.Fprintf(&b, "   • Subtotal  : %s\n\n", currency.FormatIDR(item.Subtotal))
	}

	fmt.Fprintf(&b, "TOTAL PEMBAYARAN: %s\n\n", currency.FormatIDR(o.TotalPrice))

	if notes := strings.TrimSpace(o.Notes); notes != "" {
		fmt.Fprintf(&b, "Catatan: %s\n\n", notes)
	}

	b.WriteString("Mohon konfirmasi pesanan ini. Terima kasih!")

	return b.String()
}
