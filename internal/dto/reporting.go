package dto

import (
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyReportSummaryResponse carries the headline figures for one day.
// Net is grossSales minus paymentTotal over the same window: a same-day
// cash-flow figure, not outstanding balance (that is openBalance).
type DailyReportSummaryResponse struct {
	OrderCount       int             `json:"orderCount"`
	RoomOrderCount   int             `json:"roomOrderCount"`
	WalkinOrderCount int             `json:"walkinOrderCount"`
	GrossSales       decimal.Decimal `json:"grossSales"`
	PaymentTotal     decimal.Decimal `json:"paymentTotal"`
	Net              decimal.Decimal `json:"net"`
	AvgTicket        decimal.Decimal `json:"avgTicket"`
	OpenStayCount    int             `json:"openStayCount"`
	OpenBalance      decimal.Decimal `json:"openBalance"`
}

// DailyReportResponse is the full daily report payload.
type DailyReportResponse struct {
	Date           string                      `json:"date"`
	Summary        DailyReportSummaryResponse  `json:"summary"`
	PerOutlet      []domain.OutletBreakdownRow `json:"perOutlet"`
	PerMethod      []domain.MethodBreakdownRow `json:"perMethod"`
	PerRoom        []domain.RoomBreakdownRow   `json:"perRoom"`
	TopDebtors     []domain.DebtorRow          `json:"topDebtors"`
	HourlyLoad     []domain.HourlyLoadRow      `json:"hourlyLoad"`
	RecentClosures []domain.ClosedStayRow      `json:"recentClosures"`
}

// ToDailyReportResponse converts a domain DailyReport to its DTO.
func ToDailyReportResponse(r domain.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		Date: r.Date.Format(time.DateOnly),
		Summary: DailyReportSummaryResponse{
			OrderCount:       r.Summary.OrderCount,
			RoomOrderCount:   r.Summary.RoomOrderCount,
			WalkinOrderCount: r.Summary.WalkinOrderCount,
			GrossSales:       r.Summary.GrossSales,
			PaymentTotal:     r.Summary.PaymentTotal,
			Net:              r.Summary.Net,
			AvgTicket:        r.Summary.AvgTicket,
			OpenStayCount:    r.Summary.OpenStayCount,
			OpenBalance:      r.Summary.OpenBalance,
		},
		PerOutlet:      r.PerOutlet,
		PerMethod:      r.PerMethod,
		PerRoom:        r.PerRoom,
		TopDebtors:     r.TopDebtors,
		HourlyLoad:     r.HourlyLoad,
		RecentClosures: r.RecentClosures,
	}
}
