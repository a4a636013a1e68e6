package repositories

import (
	"context"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// PaymentReader defines read operations for the payment ledger
type PaymentReader interface {
	// FindPaymentByID retrieves a ledger entry by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByStay retrieves all ledger entries for a stay, oldest first.
	ListPaymentsByStay(ctx context.Context, stayID string) ([]domain.Payment, error)

	// ListAuditLogsByStay retrieves the audit trail for a stay, newest first.
	ListAuditLogsByStay(ctx context.Context, stayID string) ([]domain.PaymentAuditLog, error)
}

// PaymentWriter defines write operations for the payment ledger. All writes
// are append-only inserts; ledger rows are never updated or deleted.
type PaymentWriter interface {
	// SavePayment appends a single payment entry.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// SaveCancellation appends a reversal entry and its audit-log row in one
	// database transaction, so the balance and the audit trail cannot diverge
	// if the process dies between the two writes.
	SaveCancellation(ctx context.Context, reversal domain.Payment, auditLog domain.PaymentAuditLog) error

	// SaveAdjustment appends a reversal entry, its replacement entry and the
	// audit-log row in one database transaction.
	SaveAdjustment(ctx context.Context, reversal domain.Payment, replacement domain.Payment, auditLog domain.PaymentAuditLog) error
}

// PaymentRepositoryFacade combines all payment ledger repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
