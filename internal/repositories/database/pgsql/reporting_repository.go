package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	"github.com/kyigit/hotel_folio_app/internal/models"
	"github.com/kyigit/hotel_folio_app/internal/utils/mapping"
)

// PgxReportingRepository serves the read-side fetches behind the daily report.
// It returns raw rows; all aggregation happens in the reporting service.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// ListOrdersInWindow retrieves all orders created in [from, to), with totals,
// outlet names and room numbers. Line items are not loaded; the report only
// needs header-level figures.
func (r *PgxReportingRepository) ListOrdersInWindow(ctx context.Context, from, to time.Time) ([]portsrepo.ReportOrderRow, error) {
	query := `
		SELECT o.order_id, o.stay_id, o.outlet_id, o.source, o.note, o.printed_at,
		       o.created_at, o.created_by, o.last_updated_at, o.last_updated_by,
		       COALESCE(t.total, 0) AS total,
		       ou.name AS outlet_name,
		       COALESCE(rm.room_number, '') AS room_number
		FROM orders o
		JOIN outlets ou ON ou.outlet_id = o.outlet_id
		LEFT JOIN v_order_totals t ON t.order_id = o.order_id
		LEFT JOIN stays s ON s.stay_id = o.stay_id
		LEFT JOIN rooms rm ON rm.room_id = s.room_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		ORDER BY o.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orders in report window", err)
	}
	defer rows.Close()

	reportRows := []portsrepo.ReportOrderRow{}
	for rows.Next() {
		var m models.Order
		var outletName, roomNumber string
		if scanErr := rows.Scan(
			&m.OrderID,
			&m.StayID,
			&m.OutletID,
			&m.Source,
			&m.Note,
			&m.PrintedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.Total,
			&outletName,
			&roomNumber,
		); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan report order row", scanErr)
		}
		reportRows = append(reportRows, portsrepo.ReportOrderRow{
			Order: domain.OrderWithTotal{
				Order: mapping.ToDomainOrder(m),
				Items: []domain.OrderItem{},
				Total: m.Total,
			},
			OutletName: outletName,
			RoomNumber: roomNumber,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating report order rows", err)
	}

	return reportRows, nil
}

// ListPaymentsInWindow retrieves all ledger entries created in [from, to).
func (r *PgxReportingRepository) ListPaymentsInWindow(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	query := `SELECT ` + paymentSelectColumns + `
		FROM payments
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments in report window", err)
	}
	defer rows.Close()

	paymentModels := []models.Payment{}
	for rows.Next() {
		m, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan report payment row", scanErr)
		}
		paymentModels = append(paymentModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating report payment rows", err)
	}

	return mapping.ToDomainPaymentSlice(paymentModels), nil
}

// ListStaysClosedInWindow retrieves stays closed in [from, to), newest first.
func (r *PgxReportingRepository) ListStaysClosedInWindow(ctx context.Context, from, to time.Time, limit int) ([]domain.ClosedStayRow, error) {
	query := `
		SELECT s.stay_id, r.room_number, g.full_name, s.closed_at
		FROM stays s
		JOIN rooms r ON r.room_id = s.room_id
		JOIN guests g ON g.guest_id = s.guest_id
		WHERE s.status = 'closed' AND s.closed_at >= $1 AND s.closed_at < $2
		ORDER BY s.closed_at DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query closed stays in report window", err)
	}
	defer rows.Close()

	closures := []domain.ClosedStayRow{}
	for rows.Next() {
		var row domain.ClosedStayRow
		if scanErr := rows.Scan(&row.StayID, &row.RoomNumber, &row.GuestName, &row.ClosedAt); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan closed stay row", scanErr)
		}
		closures = append(closures, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating closed stay rows", err)
	}

	return closures, nil
}
