// internal/pkg/currency/currency.go
package currency

import "strconv"

// FormatIDR formats an amount in whole rupiah as "Rp 15.000" with dot
// thousands separators and no fractional digits. Every surface that shows
// money (cart totals, line subtotals, the outbound order message) must go
// through this function so the rendered values stay byte-identical.
func FormatIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	// Insert a separator before every group of three digits from the right.
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	out := "Rp " + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
