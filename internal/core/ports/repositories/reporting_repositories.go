package repositories

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// ReportOrderRow is one order inside a report window, with its computed total
// and the room number of its stay when room-linked.
type ReportOrderRow struct {
	Order      domain.OrderWithTotal
	OutletName string
	RoomNumber string // empty for walk-in orders
}

// ReportingRepository defines the read-side fetches for the daily report.
// All methods are side-effect free.
type ReportingRepository interface {
	// ListOrdersInWindow retrieves all orders created in [from, to) with totals,
	// outlet names and room numbers.
	ListOrdersInWindow(ctx context.Context, from, to time.Time) ([]ReportOrderRow, error)

	// ListPaymentsInWindow retrieves all ledger entries created in [from, to).
	ListPaymentsInWindow(ctx context.Context, from, to time.Time) ([]domain.Payment, error)

	// ListStaysClosedInWindow retrieves stays closed in [from, to), newest
	// first, capped at limit.
	ListStaysClosedInWindow(ctx context.Context, from, to time.Time, limit int) ([]domain.ClosedStayRow, error)
}
