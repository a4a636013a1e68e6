package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was collected.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodCard  PaymentMethod = "card"
	MethodWire  PaymentMethod = "wire"
	MethodOther PaymentMethod = "other"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCard, MethodWire, MethodOther:
		return true
	}
	return false
}

// PaymentEntryType distinguishes ledger entry kinds. A normal payment carries a
// positive amount; a reversal carries the exact negation of the payment it
// references; an adjustment is the fresh positive row written alongside a
// reversal when a payment is corrected.
type PaymentEntryType string

const (
	EntryPayment    PaymentEntryType = "payment"
	EntryReversal   PaymentEntryType = "reversal"
	EntryAdjustment PaymentEntryType = "adjustment"
)

// Payment is one signed ledger entry against a stay's balance. Rows are never
// mutated or deleted; corrections are appended as new rows.
type Payment struct {
	PaymentID          string           `json:"paymentID"`
	StayID             string           `json:"stayID"`
	Method             PaymentMethod    `json:"method"`
	Amount             decimal.Decimal  `json:"amount"` // signed: negative for reversals
	EntryType          PaymentEntryType `json:"entryType"`
	ReferencePaymentID *string          `json:"referencePaymentID,omitempty"`
	Note               string           `json:"note"`
	AuditFields
}

// AuditAction is the kind of correction recorded in the payment audit log.
type AuditAction string

const (
	AuditCancel AuditAction = "cancel"
	AuditEdit   AuditAction = "edit"
)

// AuditMetadata links an audit row to the ledger rows the correction produced.
type AuditMetadata struct {
	ReversalPaymentID    string `json:"reversal_payment_id"`
	ReplacementPaymentID string `json:"replacement_payment_id,omitempty"`
}

// PaymentAuditLog is the append-only record of a cancel or edit action,
// with before/after snapshots and the acting staff user.
type PaymentAuditLog struct {
	AuditLogID string           `json:"auditLogID"`
	StayID     string           `json:"stayID"`
	PaymentID  string           `json:"paymentID"`
	Action     AuditAction      `json:"action"`
	OldAmount  decimal.Decimal  `json:"oldAmount"`
	NewAmount  decimal.Decimal  `json:"newAmount"`
	OldMethod  PaymentMethod    `json:"oldMethod"`
	NewMethod  *PaymentMethod   `json:"newMethod,omitempty"` // nil for cancels
	Reason     string           `json:"reason"`
	ActorID    string           `json:"actorID"`
	Metadata   AuditMetadata    `json:"metadata"`
	CreatedAt  time.Time        `json:"createdAt"`
}
