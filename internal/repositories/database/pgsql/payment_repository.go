package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	"github.com/kyigit/hotel_folio_app/internal/models"
	"github.com/kyigit/hotel_folio_app/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentSelectColumns = `
	payment_id, stay_id, method, amount, entry_type, reference_payment_id, note,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.StayID,
		&m.Method,
		&m.Amount,
		&m.EntryType,
		&m.ReferencePaymentID,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPaymentByID retrieves a ledger entry by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentSelectColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPaymentsByStay retrieves the full ledger for a stay, oldest first.
func (r *PgxPaymentRepository) ListPaymentsByStay(ctx context.Context, stayID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentSelectColumns + ` FROM payments WHERE stay_id = $1 ORDER BY created_at ASC, payment_id ASC;`
	rows, err := r.Pool.Query(ctx, query, stayID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for stay "+stayID, err)
	}
	defer rows.Close()

	paymentModels := []models.Payment{}
	for rows.Next() {
		m, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", scanErr)
		}
		paymentModels = append(paymentModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}

	return mapping.ToDomainPaymentSlice(paymentModels), nil
}

// ListAuditLogsByStay retrieves the audit trail for a stay, newest first.
func (r *PgxPaymentRepository) ListAuditLogsByStay(ctx context.Context, stayID string) ([]domain.PaymentAuditLog, error) {
	query := `
		SELECT audit_log_id, stay_id, payment_id, action, old_amount, new_amount,
		       old_method, new_method, reason, actor_user_id, metadata, created_at
		FROM payment_audit_logs
		WHERE stay_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, stayID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit logs for stay "+stayID, err)
	}
	defer rows.Close()

	logModels := []models.PaymentAuditLog{}
	for rows.Next() {
		var m models.PaymentAuditLog
		if scanErr := rows.Scan(
			&m.AuditLogID,
			&m.StayID,
			&m.PaymentID,
			&m.Action,
			&m.OldAmount,
			&m.NewAmount,
			&m.OldMethod,
			&m.NewMethod,
			&m.Reason,
			&m.ActorID,
			&m.Metadata,
			&m.CreatedAt,
		); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit log row", scanErr)
		}
		logModels = append(logModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit log rows", err)
	}

	return mapping.ToDomainPaymentAuditLogSlice(logModels), nil
}

const paymentInsertQuery = `
	INSERT INTO payments (payment_id, stay_id, method, amount, entry_type, reference_payment_id, note,
	                      created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

const auditLogInsertQuery = `
	INSERT INTO payment_audit_logs (audit_log_id, stay_id, payment_id, action, old_amount, new_amount,
	                                old_method, new_method, reason, actor_user_id, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

func insertPayment(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	_, err := tx.Exec(ctx, paymentInsertQuery,
		m.PaymentID,
		m.StayID,
		m.Method,
		m.Amount,
		m.EntryType,
		m.ReferencePaymentID,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

func insertAuditLog(ctx context.Context, tx pgx.Tx, auditLog domain.PaymentAuditLog) error {
	m, err := mapping.ToModelPaymentAuditLog(auditLog)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode audit metadata for "+auditLog.AuditLogID, err)
	}
	_, err = tx.Exec(ctx, auditLogInsertQuery,
		m.AuditLogID,
		m.StayID,
		m.PaymentID,
		m.Action,
		m.OldAmount,
		m.NewAmount,
		m.OldMethod,
		m.NewMethod,
		m.Reason,
		m.ActorID,
		m.Metadata,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.AuditLogID, err)
	}
	return nil
}

// SavePayment appends one ledger entry.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	_, err := r.Pool.Exec(ctx, paymentInsertQuery,
		m.PaymentID,
		m.StayID,
		m.Method,
		m.Amount,
		m.EntryType,
		m.ReferencePaymentID,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

// SaveCancellation appends the reversal entry and its audit row in one
// transaction. A crash between the two writes leaves neither behind.
func (r *PgxPaymentRepository) SaveCancellation(ctx context.Context, reversal domain.Payment, auditLog domain.PaymentAuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertPayment(ctx, tx, reversal); err != nil {
		return err
	}
	if err := insertAuditLog(ctx, tx, auditLog); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveAdjustment appends the reversal entry, the replacement entry and the
// audit row in one transaction.
func (r *PgxPaymentRepository) SaveAdjustment(ctx context.Context, reversal domain.Payment, replacement domain.Payment, auditLog domain.PaymentAuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertPayment(ctx, tx, reversal); err != nil {
		return err
	}
	if err := insertPayment(ctx, tx, replacement); err != nil {
		return err
	}
	if err := insertAuditLog(ctx, tx, auditLog); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
