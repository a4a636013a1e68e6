package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportSummary carries the headline figures for one business day.
// Net is gross sales minus payments received in the same window, i.e. a
// cash-flow figure, not profit: a payment collected today against yesterday's
// charges lowers Net without a matching sales entry.
type DailyReportSummary struct {
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

// OutletBreakdownRow aggregates one outlet's orders for the day.
type OutletBreakdownRow struct {
	OutletID   string          `json:"outletID"`
	OutletName string          `json:"outletName"`
	OrderCount int             `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// MethodBreakdownRow aggregates payments by method. Count only counts positive
// rows; Total sums signed amounts, so reversals subtract.
type MethodBreakdownRow struct {
	Method PaymentMethod   `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// RoomBreakdownRow aggregates room-linked orders by room for the day.
type RoomBreakdownRow struct {
	RoomNumber string          `json:"roomNumber"`
	OrderCount int             `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// DebtorRow is an open stay with outstanding balance.
type DebtorRow struct {
	StayID     string          `json:"stayID"`
	RoomNumber string          `json:"roomNumber"`
	GuestName  string          `json:"guestName"`
	Balance    decimal.Decimal `json:"balance"`
}

// HourlyLoadRow is the order volume for one hour of the day.
type HourlyLoadRow struct {
	Hour       int             `json:"hour"`
	OrderCount int             `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ClosedStayRow is a stay checked out during the report window.
type ClosedStayRow struct {
	StayID     string    `json:"stayID"`
	RoomNumber string    `json:"roomNumber"`
	GuestName  string    `json:"guestName"`
	ClosedAt   time.Time `json:"closedAt"`
}

// DailyReport is the full read-side aggregation for one day. It has no
// persisted counterpart and is recomputed on every request.
type DailyReport struct {
	Date           time.Time            `json:"date"`
	Summary        DailyReportSummary   `json:"summary"`
	PerOutlet      []OutletBreakdownRow `json:"perOutlet"`
	PerMethod      []MethodBreakdownRow `json:"perMethod"`
	PerRoom        []RoomBreakdownRow   `json:"perRoom"`
	TopDebtors     []DebtorRow          `json:"topDebtors"`
	HourlyLoad     []HourlyLoadRow      `json:"hourlyLoad"`
	RecentClosures []ClosedStayRow      `json:"recentClosures"`
}
