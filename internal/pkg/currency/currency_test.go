package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "Rp 0"},
		{"under one thousand", 500, "Rp 500"},
		{"exactly one thousand", 1000, "Rp 1.000"},
		{"typical unit price", 15000, "Rp 15.000"},
		{"line subtotal", 30000, "Rp 30.000"},
		{"order total", 95000, "Rp 95.000"},
		{"six digits", 145000, "Rp 145.000"},
		{"millions", 1250000, "Rp 1.250.000"},
		{"negative adjustment", -5000, "-Rp 5.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(tt.amount))
		})
	}
}
