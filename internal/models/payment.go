package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors the payments table.
type Payment struct {
	PaymentID          string          `db:"payment_id"`
	StayID             string          `db:"stay_id"`
	Method             string          `db:"method"`
	Amount             decimal.Decimal `db:"amount"`
	EntryType          string          `db:"entry_type"`
	ReferencePaymentID *string         `db:"reference_payment_id"`
	Note               string          `db:"note"`
	AuditFields
}

// PaymentAuditLog mirrors the payment_audit_logs table. Metadata is stored as
// JSONB and scanned as raw bytes.
type PaymentAuditLog struct {
	AuditLogID string          `db:"audit_log_id"`
	StayID     string          `db:"stay_id"`
	PaymentID  string          `db:"payment_id"`
	Action     string          `db:"action"`
	OldAmount  decimal.Decimal `db:"old_amount"`
	NewAmount  decimal.Decimal `db:"new_amount"`
	OldMethod  string          `db:"old_method"`
	NewMethod  *string         `db:"new_method"`
	Reason     string          `db:"reason"`
	ActorID    string          `db:"actor_user_id"`
	Metadata   []byte          `db:"metadata"`
	CreatedAt  time.Time       `db:"created_at"`
}
