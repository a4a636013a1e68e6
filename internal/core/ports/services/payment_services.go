package services

import (
	"context"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/dto"
)

// PaymentSvcFacade exposes the append-only payment ledger. Every correction is
// a new row; nothing in the ledger is ever updated or deleted.
type PaymentSvcFacade interface {
	// RecordPayment appends a payment entry to an open stay's ledger.
	// Fails with apperrors.ErrInvalidAmount when amount <= 0 and with
	// apperrors.ErrNoActiveStay when the stay is closed.
	RecordPayment(ctx context.Context, stayID string, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error)

	// CancelPayment appends a reversal negating the target payment plus an
	// audit-log row, atomically. Fails with apperrors.ErrNotCancelable when the
	// target's amount is not positive (reversals cannot be reversed) and with
	// apperrors.ErrMissingReason when no reason is given.
	CancelPayment(ctx context.Context, paymentID string, req dto.CancelPaymentRequest, actorID string) (*domain.Payment, error)

	// AdjustPayment appends a reversal of the target, a replacement entry with
	// the new method/amount, and an audit-log row linking all three, atomically.
	// Guards mirror CancelPayment, with apperrors.ErrNotEditable for the
	// non-positive target case and apperrors.ErrInvalidAmount for the new amount.
	AdjustPayment(ctx context.Context, paymentID string, req dto.AdjustPaymentRequest, actorID string) (*domain.Payment, *domain.Payment, error)

	// ListPayments returns all ledger entries for a stay, oldest first.
	ListPayments(ctx context.Context, stayID string) ([]domain.Payment, error)

	// ListAuditLogs returns the audit trail for a stay, newest first.
	ListAuditLogs(ctx context.Context, stayID string) ([]domain.PaymentAuditLog, error)
}
