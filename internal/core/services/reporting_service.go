package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
)

const (
	topDebtorsLimit     = 10
	recentClosuresLimit = 10
	avgTicketPrecision  = 2
)

// reportingService builds the daily report. Nothing is persisted; every call
// recomputes from the order and payment ledgers.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	stayRepo      portsrepo.StayRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, stayRepo portsrepo.StayRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		stayRepo:      stayRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BuildDailyReport aggregates orders, payments and stays over the day
// containing date, using the window [day start, next day start).
func (s *reportingService) BuildDailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	orders, err := s.reportingRepo.ListOrdersInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	payments, err := s.reportingRepo.ListPaymentsInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	closures, err := s.reportingRepo.ListStaysClosedInWindow(ctx, dayStart, dayEnd, recentClosuresLimit)
	if err != nil {
		return nil, err
	}
	openStays, err := s.stayRepo.ListOpenStays(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.DailyReport{
		Date:           dayStart,
		Summary:        buildSummary(orders, payments, openStays),
		PerOutlet:      buildOutletBreakdown(orders),
		PerMethod:      buildMethodBreakdown(payments),
		PerRoom:        buildRoomBreakdown(orders),
		TopDebtors:     buildTopDebtors(openStays),
		HourlyLoad:     buildHourlyLoad(orders),
		RecentClosures: closures,
	}

	logger.Info("Built daily report",
		slog.String("date", dayStart.Format(time.DateOnly)),
		slog.Int("order_count", report.Summary.OrderCount),
		slog.String("gross_sales", report.Summary.GrossSales.String()),
	)

	return report, nil
}

func buildSummary(orders []portsrepo.ReportOrderRow, payments []domain.Payment, openStays []domain.StayWithDetails) domain.DailyReportSummary {
	summary := domain.DailyReportSummary{
		GrossSales:   decimal.Zero,
		PaymentTotal: decimal.Zero,
		Net:          decimal.Zero,
		AvgTicket:    decimal.Zero,
		OpenBalance:  decimal.Zero,
	}

	for _, row := range orders {
		summary.OrderCount++
		if row.Order.StayID != nil {
			summary.RoomOrderCount++
		} else {
			summary.WalkinOrderCount++
		}
		summary.GrossSales = summary.GrossSales.Add(row.Order.Total)
	}

	// Signed sum: reversal rows subtract from the day's takings.
	for _, p := range payments {
		summary.PaymentTotal = summary.PaymentTotal.Add(p.Amount)
	}

	// Net is a same-day cash-flow figure, not profit: payments collected
	// today against older charges pull it down with no matching sale.
	summary.Net = summary.GrossSales.Sub(summary.PaymentTotal)

	if summary.OrderCount > 0 {
		summary.AvgTicket = summary.GrossSales.Div(decimal.NewFromInt(int64(summary.OrderCount))).Round(avgTicketPrecision)
	}

	summary.OpenStayCount = len(openStays)
	for _, stay := range openStays {
		summary.OpenBalance = summary.OpenBalance.Add(stay.Balance)
	}

	return summary
}

func buildOutletBreakdown(orders []portsrepo.ReportOrderRow) []domain.OutletBreakdownRow {
	byOutlet := map[string]*domain.OutletBreakdownRow{}
	for _, row := range orders {
		entry, ok := byOutlet[row.Order.OutletID]
		if !ok {
			entry = &domain.OutletBreakdownRow{
				OutletID:   row.Order.OutletID,
				OutletName: row.OutletName,
				Revenue:    decimal.Zero,
			}
			byOutlet[row.Order.OutletID] = entry
		}
		entry.OrderCount++
		entry.Revenue = entry.Revenue.Add(row.Order.Total)
	}

	breakdown := make([]domain.OutletBreakdownRow, 0, len(byOutlet))
	for _, entry := range byOutlet {
		breakdown = append(breakdown, *entry)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Revenue.Equal(breakdown[j].Revenue) {
			return breakdown[i].Revenue.GreaterThan(breakdown[j].Revenue)
		}
		return breakdown[i].OutletName < breakdown[j].OutletName
	})
	return breakdown
}

// buildMethodBreakdown aggregates the ledger by method. Count counts only
// positive rows so a payment and its reversal read as one collected-then-voided
// payment, not two transactions; Total sums signed amounts.
func buildMethodBreakdown(payments []domain.Payment) []domain.MethodBreakdownRow {
	methodOrder := []domain.PaymentMethod{domain.MethodCash, domain.MethodCard, domain.MethodWire, domain.MethodOther}
	byMethod := map[domain.PaymentMethod]*domain.MethodBreakdownRow{}
	for _, p := range payments {
		entry, ok := byMethod[p.Method]
		if !ok {
			entry = &domain.MethodBreakdownRow{Method: p.Method, Total: decimal.Zero}
			byMethod[p.Method] = entry
		}
		if p.Amount.IsPositive() {
			entry.Count++
		}
		entry.Total = entry.Total.Add(p.Amount)
	}

	breakdown := []domain.MethodBreakdownRow{}
	for _, method := range methodOrder {
		if entry, ok := byMethod[method]; ok {
			breakdown = append(breakdown, *entry)
		}
	}
	return breakdown
}

func buildRoomBreakdown(orders []portsrepo.ReportOrderRow) []domain.RoomBreakdownRow {
	byRoom := map[string]*domain.RoomBreakdownRow{}
	for _, row := range orders {
		if row.RoomNumber == "" {
			continue
		}
		entry, ok := byRoom[row.RoomNumber]
		if !ok {
			entry = &domain.RoomBreakdownRow{RoomNumber: row.RoomNumber, Revenue: decimal.Zero}
			byRoom[row.RoomNumber] = entry
		}
		entry.OrderCount++
		entry.Revenue = entry.Revenue.Add(row.Order.Total)
	}

	breakdown := make([]domain.RoomBreakdownRow, 0, len(byRoom))
	for _, entry := range byRoom {
		breakdown = append(breakdown, *entry)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Revenue.Equal(breakdown[j].Revenue) {
			return breakdown[i].Revenue.GreaterThan(breakdown[j].Revenue)
		}
		return breakdown[i].RoomNumber < breakdown[j].RoomNumber
	})
	return breakdown
}

func buildTopDebtors(openStays []domain.StayWithDetails) []domain.DebtorRow {
	debtors := []domain.DebtorRow{}
	for _, stay := range openStays {
		if !stay.Balance.IsPositive() {
			continue
		}
		debtors = append(debtors, domain.DebtorRow{
			StayID:     stay.StayID,
			RoomNumber: stay.Room.RoomNumber,
			GuestName:  stay.Guest.FullName,
			Balance:    stay.Balance,
		})
	}
	sort.Slice(debtors, func(i, j int) bool {
		if !debtors[i].Balance.Equal(debtors[j].Balance) {
			return debtors[i].Balance.GreaterThan(debtors[j].Balance)
		}
		return debtors[i].RoomNumber < debtors[j].RoomNumber
	})
	if len(debtors) > topDebtorsLimit {
		debtors = debtors[:topDebtorsLimit]
	}
	return debtors
}

func buildHourlyLoad(orders []portsrepo.ReportOrderRow) []domain.HourlyLoadRow {
	byHour := map[int]*domain.HourlyLoadRow{}
	for _, row := range orders {
		hour := row.Order.CreatedAt.Hour()
		entry, ok := byHour[hour]
		if !ok {
			entry = &domain.HourlyLoadRow{Hour: hour, Revenue: decimal.Zero}
			byHour[hour] = entry
		}
		entry.OrderCount++
		entry.Revenue = entry.Revenue.Add(row.Order.Total)
	}

	load := make([]domain.HourlyLoadRow, 0, len(byHour))
	for _, entry := range byHour {
		load = append(load, *entry)
	}
	sort.Slice(load, func(i, j int) bool { return load[i].Hour < load[j].Hour })
	return load
}
