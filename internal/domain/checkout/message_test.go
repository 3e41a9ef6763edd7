package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/ikilo/storefront-backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
)

func TestFormatOrderDate(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			"monday morning",
			time.Date(2024, time.January, 1, 9, 5, 0, 0, time.UTC),
			"Senin, 1 Januari 2024 09.05",
		},
		{
			"saturday afternoon",
			time.Date(2024, time.August, 17, 14, 30, 0, 0, time.UTC),
			"Sabtu, 17 Agustus 2024 14.30",
		},
		{
			"sunday midnight",
			time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			"Minggu, 1 Desember 2024 00.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOrderDate(tt.at))
		})
	}
}

func TestRenderMessageExactFormat(t *testing.T) {
	o := &order.Order{
		OrderNumber:     "ORD-1704099900000",
		CustomerName:    "Budi",
		CustomerPhone:   "081234567890",
		CustomerAddress: "Jl. A",
		Notes:           "Antar sore",
		TotalPrice:      95000,
		Status:          order.StatusPending,
		Items: []order.Item{
			{ProductID: "1", ProductName: "Tomat Segar", Variation: "1 kg", Price: 15000, Quantity: 2, Subtotal: 30000},
			{ProductID: "2", ProductName: "Beras Premium", Variation: "5 kg", Price: 65000, Quantity: 1, Subtotal: 65000},
		},
	}

	composedAt := time.Date(2024, time.January, 1, 9, 5, 0, 0, time.UTC)

	want := strings.Join([]string{
		"PESANAN BARU - iKILO",
		"",
		"Order ID: ORD-1704099900000",
		"Tanggal: Senin, 1 Januari 2024 09.05",
		"",
		"INFORMASI PELANGGAN",
		"• Nama     : Budi",
		"• Telepon  : 081234567890",
		"• Alamat   : Jl. A",
		"",
		"DETAIL PESANAN",
		"1. Tomat Segar",
		"   • Varian    : 1 kg",
		"   • Harga     : Rp 15.000",
		"   • Jumlah    : 2",
		"   • Subtotal  : Rp 30.000",
		"",
		"2. Beras Premium",
		"   • Varian    : 5 kg",
		"   • Harga     : Rp 65.000",
		"   • Jumlah    : 1",
		"   • Subtotal  : Rp 65.000",
		"",
		"TOTAL PEMBAYARAN: Rp 95.000",
		"",
		"Catatan: Antar sore",
		"",
		"Mohon konfirmasi pesanan ini. Terima kasih!",
	}, "\n")

	assert.Equal(t, want, RenderMessage(o, composedAt, "iKILO"))
}

func TestRenderMessageOmitsEmptyNotes(t *testing.T) {
	o := &order.Order{
		OrderNumber:     "ORD-1",
		CustomerName:    "Sari",
		CustomerPhone:   "0812",
		CustomerAddress: "Jl. B",
		Notes:           "   ",
		TotalPrice:      3000,
		Items: []order.Item{
			{ProductID: "6", ProductName: "Kangkung", Variation: "1 ikat", Price: 3000, Quantity: 1, Subtotal: 3000},
		},
	}

	got := RenderMessage(o, time.Date(2024, time.January, 1, 9, 5, 0, 0, time.UTC), "iKILO")

	assert.NotContains(t, got, "Catatan:")
	assert.Contains(t, got, "TOTAL PEMBAYARAN: Rp 3.000\n\nMohon konfirmasi pesanan ini. Terima kasih!")
}
