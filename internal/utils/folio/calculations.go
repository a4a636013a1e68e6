package folio

import (
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderTotal computes an order's total as the sum of quantity * unit_price over
// its line items. Decimal arithmetic keeps the sum exact across any number of
// lines; no rounding is applied mid-sum. An order with zero items totals zero.
func OrderTotal(items []domain.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		total = total.Add(line)
	}
	return total
}

// SumCharges sums the totals of all orders on a stay's folio.
func SumCharges(orders []domain.OrderWithTotal) decimal.Decimal {
	charges := decimal.Zero
	for _, order := range orders {
		charges = charges.Add(order.Total)
	}
	return charges
}

// SumPayments sums the signed amounts of all ledger entries for a stay.
// Reversal rows carry negative amounts, so they subtract without special casing.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

// Remaining is charges minus paid. It may be negative when the guest overpaid;
// callers render that case distinctly but the computation does not special-case it.
func Remaining(charges, paid decimal.Decimal) decimal.Decimal {
	return charges.Sub(paid)
}
