package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
)

// paymentService provides the append-only payment ledger. Rows are never
// updated or deleted; every correction appends new rows.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	stayRepo    portsrepo.StayRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, stayRepo portsrepo.StayRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		stayRepo:    stayRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment appends a payment entry to an open stay's ledger.
func (s *paymentService) RecordPayment(ctx context.Context, stayID string, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidPaymentMethod(req.Method) {
		return nil, apperrors.NewBadRequestError("unknown payment method: " + string(req.Method))
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	stay, err := s.stayRepo.FindStayByID(ctx, stayID)
	if err != nil {
		return nil, err
	}
	if stay.Status != domain.StayOpen {
		return nil, apperrors.ErrNoActiveStay
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		StayID:    stayID,
		Method:    req.Method,
		Amount:    req.Amount,
		EntryType: domain.EntryPayment,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Recorded payment",
		slog.String("payment_id", payment.PaymentID),
		slog.String("stay_id", stayID),
		slog.String("method", string(req.Method)),
		slog.String("amount", req.Amount.String()),
	)

	return &payment, nil
}

// cancelable reports whether a ledger entry can be targeted by a correction.
// Reversal rows and non-positive amounts are immutable correction artifacts.
func cancelable(p *domain.Payment) bool {
	return p.EntryType != domain.EntryReversal && p.Amount.IsPositive()
}

// reversalOf builds the negating ledger row for a correction.
func reversalOf(target *domain.Payment, reason string, actorID string, now time.Time) domain.Payment {
	ref := target.PaymentID
	return domain.Payment{
		PaymentID:          uuid.NewString(),
		StayID:             target.StayID,
		Method:             target.Method,
		Amount:             target.Amount.Neg(),
		EntryType:          domain.EntryReversal,
		ReferencePaymentID: &ref,
		Note:               reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
}

// CancelPayment voids a payment by appending its reversal and the audit row,
// in one transaction. The original row stays in the ledger untouched.
func (s *paymentService) CancelPayment(ctx context.Context, paymentID string, req dto.CancelPaymentRequest, actorID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperrors.ErrMissingReason
	}

	target, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !cancelable(target) {
		return nil, apperrors.ErrNotCancelable
	}

	now := time.Now()
	reversal := reversalOf(target, reason, actorID, now)

	auditLog := domain.PaymentAuditLog{
		AuditLogID: uuid.NewString(),
		StayID:     target.StayID,
		PaymentID:  target.PaymentID,
		Action:     domain.AuditCancel,
		OldAmount:  target.Amount,
		NewAmount:  decimal.Zero,
		OldMethod:  target.Method,
		Reason:     reason,
		ActorID:    actorID,
		Metadata: domain.AuditMetadata{
			ReversalPaymentID: reversal.PaymentID,
		},
		CreatedAt: now,
	}

	if err := s.paymentRepo.SaveCancellation(ctx, reversal, auditLog); err != nil {
		return nil, err
	}

	logger.Info("Cancelled payment",
		slog.String("payment_id", target.PaymentID),
		slog.String("reversal_payment_id", reversal.PaymentID),
		slog.String("stay_id", target.StayID),
	)

	return &reversal, nil
}

// AdjustPayment corrects a payment's amount and/or method by appending a
// reversal of the original, a replacement row, and the audit row linking all
// three, in one transaction.
func (s *paymentService) AdjustPayment(ctx context.Context, paymentID string, req dto.AdjustPaymentRequest, actorID string) (*domain.Payment, *domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, nil, apperrors.ErrMissingReason
	}
	if !domain.ValidPaymentMethod(req.NewMethod) {
		return nil, nil, apperrors.NewBadRequestError("unknown payment method: " + string(req.NewMethod))
	}
	if !req.NewAmount.IsPositive() {
		return nil, nil, apperrors.ErrInvalidAmount
	}

	target, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if !cancelable(target) {
		return nil, nil, apperrors.ErrNotEditable
	}

	now := time.Now()
	reversal := reversalOf(target, reason, actorID, now)

	ref := target.PaymentID
	replacement := domain.Payment{
		PaymentID:          uuid.NewString(),
		StayID:             target.StayID,
		Method:             req.NewMethod,
		Amount:             req.NewAmount,
		EntryType:          domain.EntryAdjustment,
		ReferencePaymentID: &ref,
		Note:               reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	newMethod := req.NewMethod
	auditLog := domain.PaymentAuditLog{
		AuditLogID: uuid.NewString(),
		StayID:     target.StayID,
		PaymentID:  target.PaymentID,
		Action:     domain.AuditEdit,
		OldAmount:  target.Amount,
		NewAmount:  req.NewAmount,
		OldMethod:  target.Method,
		NewMethod:  &newMethod,
		Reason:     reason,
		ActorID:    actorID,
		Metadata: domain.AuditMetadata{
			ReversalPaymentID:    reversal.PaymentID,
			ReplacementPaymentID: replacement.PaymentID,
		},
		CreatedAt: now,
	}

	if err := s.paymentRepo.SaveAdjustment(ctx, reversal, replacement, auditLog); err != nil {
		return nil, nil, err
	}

	logger.Info("Adjusted payment",
		slog.String("payment_id", target.PaymentID),
		slog.String("reversal_payment_id", reversal.PaymentID),
		slog.String("replacement_payment_id", replacement.PaymentID),
		slog.String("stay_id", target.StayID),
	)

	return &reversal, &replacement, nil
}

// ListPayments returns all ledger entries for a stay, oldest first.
func (s *paymentService) ListPayments(ctx context.Context, stayID string) ([]domain.Payment, error) {
	if _, err := s.stayRepo.FindStayByID(ctx, stayID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByStay(ctx, stayID)
}

// ListAuditLogs returns the audit trail for a stay, newest first.
func (s *paymentService) ListAuditLogs(ctx context.Context, stayID string) ([]domain.PaymentAuditLog, error) {
	if _, err := s.stayRepo.FindStayByID(ctx, stayID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListAuditLogsByStay(ctx, stayID)
}
