package services

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// ReportingSvcFacade exposes read-side aggregations. Reports have no persisted
// entity; each call recomputes from the ledgers.
type ReportingSvcFacade interface {
	// BuildDailyReport aggregates orders, payments and stays for the day
	// containing date, over the window [day start, next day start).
	BuildDailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error)
}
