package domain

import "github.com/shopspring/decimal"

// Folio is the derived bill for one stay: its orders, its payment ledger and
// the reconciled balance. It is never stored; Charges, Paid and Remaining are
// recomputed from the ledgers on every request, so the view always reflects
// literal current ledger state.
type Folio struct {
	Stay      StayWithDetails   `json:"stay"`
	Orders    []OrderWithTotal  `json:"orders"`
	Payments  []Payment         `json:"payments"`
	AuditLogs []PaymentAuditLog `json:"auditLogs"`
	Charges   decimal.Decimal   `json:"charges"`
	Paid      decimal.Decimal   `json:"paid"`
	Remaining decimal.Decimal   `json:"remaining"` // negative when the guest overpaid
}
