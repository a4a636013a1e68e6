package folio_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/utils/folio"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.OrderItem
		want  string
	}{
		{
			name:  "no items",
			items: nil,
			want:  "0",
		},
		{
			name: "single line",
			items: []domain.OrderItem{
				{ItemName: "Cheeseburger", Quantity: 1, UnitPrice: d("320.00")},
			},
			want: "320.00",
		},
		{
			name: "quantity multiplies unit price",
			items: []domain.OrderItem{
				{ItemName: "Cola", Quantity: 3, UnitPrice: d("75.00")},
			},
			want: "225.00",
		},
		{
			name: "fractional prices stay exact",
			items: []domain.OrderItem{
				{ItemName: "Espresso", Quantity: 3, UnitPrice: d("33.33")},
				{ItemName: "Cheesecake", Quantity: 1, UnitPrice: d("160.01")},
			},
			want: "260.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := folio.OrderTotal(tt.items)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSumPayments_SignedLedger(t *testing.T) {
	payments := []domain.Payment{
		{Amount: d("200.00"), EntryType: domain.EntryPayment},
		{Amount: d("-200.00"), EntryType: domain.EntryReversal},
		{Amount: d("225.50"), EntryType: domain.EntryAdjustment},
	}

	got := folio.SumPayments(payments)
	assert.True(t, got.Equal(d("225.50")), "got %s", got)
}

func TestSumPayments_Empty(t *testing.T) {
	assert.True(t, folio.SumPayments(nil).IsZero())
}

func TestSumCharges(t *testing.T) {
	orders := []domain.OrderWithTotal{
		{Total: d("150.00")},
		{Total: d("75.50")},
	}

	got := folio.SumCharges(orders)
	assert.True(t, got.Equal(d("225.50")), "got %s", got)
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name    string
		charges string
		paid    string
		want    string
	}{
		{name: "outstanding balance", charges: "225.50", paid: "200.00", want: "25.50"},
		{name: "settled", charges: "225.50", paid: "225.50", want: "0"},
		{name: "overpaid goes negative", charges: "100.00", paid: "150.00", want: "-50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := folio.Remaining(d(tt.charges), d(tt.paid))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
