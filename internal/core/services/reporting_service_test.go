package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) ListOrdersInWindow(ctx context.Context, from, to time.Time) ([]portsrepo.ReportOrderRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.ReportOrderRow), args.Error(1)
}

func (m *MockReportingRepository) ListPaymentsInWindow(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockReportingRepository) ListStaysClosedInWindow(ctx context.Context, from, to time.Time, limit int) ([]domain.ClosedStayRow, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosedStayRow), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockStayRepo      *MockStayRepository
	service           portssvc.ReportingSvcFacade
	day               time.Time
	dayStart          time.Time
	dayEnd            time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockStayRepo = new(MockStayRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockStayRepo)

	suite.day = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	suite.dayStart = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	suite.dayEnd = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) orderRow(outletName, roomNumber, total string, hour int) portsrepo.ReportOrderRow {
	var stayID *string
	if roomNumber != "" {
		id := uuid.NewString()
		stayID = &id
	}
	return portsrepo.ReportOrderRow{
		Order: domain.OrderWithTotal{
			Order: domain.Order{
				OrderID:  uuid.NewString(),
				StayID:   stayID,
				OutletID: outletName, // stable key per outlet name in tests
				AuditFields: domain.AuditFields{
					CreatedAt: time.Date(2025, 6, 15, hour, 30, 0, 0, time.UTC),
				},
			},
			Total: decimal.RequireFromString(total),
		},
		OutletName: outletName,
		RoomNumber: roomNumber,
	}
}

func (suite *ReportingServiceTestSuite) expectWindowFetches(orders []portsrepo.ReportOrderRow, payments []domain.Payment, closures []domain.ClosedStayRow, openStays []domain.StayWithDetails) {
	ctx := context.Background()
	suite.mockReportingRepo.On("ListOrdersInWindow", ctx, suite.dayStart, suite.dayEnd).Return(orders, nil).Once()
	suite.mockReportingRepo.On("ListPaymentsInWindow", ctx, suite.dayStart, suite.dayEnd).Return(payments, nil).Once()
	suite.mockReportingRepo.On("ListStaysClosedInWindow", ctx, suite.dayStart, suite.dayEnd, 10).Return(closures, nil).Once()
	suite.mockStayRepo.On("ListOpenStays", ctx).Return(openStays, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestBuildDailyReport_Summary() {
	orders := []portsrepo.ReportOrderRow{
		suite.orderRow("Restoran", "101", "320.00", 12),
		suite.orderRow("Restoran", "102", "95.00", 13),
		suite.orderRow("Bar", "", "260.00", 21),
	}
	payments := []domain.Payment{
		{Method: domain.MethodCash, Amount: decimal.RequireFromString("100.00"), EntryType: domain.EntryPayment},
		{Method: domain.MethodCard, Amount: decimal.RequireFromString("50.00"), EntryType: domain.EntryPayment},
	}
	openStays := []domain.StayWithDetails{
		{Stay: domain.Stay{StayID: uuid.NewString()}, Balance: decimal.RequireFromString("420.00")},
		{Stay: domain.Stay{StayID: uuid.NewString()}, Balance: decimal.RequireFromString("95.00")},
	}
	suite.expectWindowFetches(orders, payments, []domain.ClosedStayRow{}, openStays)

	report, err := suite.service.BuildDailyReport(context.Background(), suite.day)

	suite.Require().NoError(err)
	suite.Equal(suite.dayStart, report.Date)
	suite.Equal(3, report.Summary.OrderCount)
	suite.Equal(2, report.Summary.RoomOrderCount)
	suite.Equal(1, report.Summary.WalkinOrderCount)
	suite.True(report.Summary.GrossSales.Equal(decimal.RequireFromString("675.00")))
	suite.True(report.Summary.PaymentTotal.Equal(decimal.RequireFromString("150.00")))
	suite.True(report.Summary.Net.Equal(decimal.RequireFromString("525.00")))
	suite.True(report.Summary.AvgTicket.Equal(decimal.RequireFromString("225.00")))
	suite.Equal(2, report.Summary.OpenStayCount)
	suite.True(report.Summary.OpenBalance.Equal(decimal.RequireFromString("515.00")))
}

func (suite *ReportingServiceTestSuite) TestBuildDailyReport_OutletBreakdownSortedByRevenue() {
	orders := []portsrepo.ReportOrderRow{
		suite.orderRow("Restoran", "101", "100.00", 12),
		suite.orderRow("Bar", "", "260.00", 21),
		suite.orderRow("Restoran", "102", "95.00", 13),
	}
	suite.expectWindowFetches(orders, []domain.Payment{}, []domain.ClosedStayRow{}, []domain.StayWithDetails{})

	report, err := suite.service.BuildDailyReport(context.Background(), suite.day)

	suite.Require().NoError(err)
	suite.Require().Len(report.PerOutlet, 2)
	suite.Equal("Bar", report.PerOutlet[0].OutletName)
	suite.True(report.PerOutlet[0].Revenue.Equal(decimal.RequireFromString("260.00")))
	suite.Equal("Restoran", report.PerOutlet[1].OutletName)
	suite.Equal(2, report.PerOutlet[1].OrderCount)
	suite.True(report.PerOutlet[1].Revenue.Equal(decimal.RequireFromString("195.00")))
}

func (suite *ReportingServiceTestSuite) TestBuildDailyReport_MethodBreakdownWithReversal() {
	payments := []domain.Payment{
		{Method: domain.MethodCash, Amount: decimal.RequireFromString("100.00"), EntryType: domain.EntryPayment},
		{Method: domain.MethodCash, Amount: decimal.RequireFromString("-100.00"), EntryType: domain.EntryReversal},
		{Method: domain.MethodCard, Amount: decimal.RequireFromString("50.00"), EntryType: domain.EntryPayment},
	}
	suite.expectWindowFetches([]portsrepo.ReportOrderRow{}, payments, []domain.ClosedStayRow{}, []domain.StayWithDetails{})

	report, err := suite.service.BuildDailyReport(context.Background(), suite.day)

	suite.Require().NoError(err)
	suite.Require().Len(report.PerMethod, 2)

	// Fixed method ordering: cash before card.
	cash := report.PerMethod[0]
	suite.Equal(domain.MethodCash, cash.Method)
	suite.Equal(1, cash.Count)
	suite.True(cash.Total.IsZero())

	card := report.PerMethod[1]
	suite.Equal(domain.MethodCard, card.Method)
	suite.Equal(1, card.Count)
	suite.True(card.Total.Equal(decimal.RequireFromString("50.00")))
}

func (suite *ReportingServiceTestSuite) TestBuildDailyReport_TopDebtorsSkipsSettled() {
	openStays := []domain.StayWithDetails{
		{Stay: domain.Stay{StayID: "a"}, Room: domain.Room{RoomNumber: "101"}, Guest: domain.Guest{FullName: "Can Koc"}, Balance: decimal.RequireFromString("120.00")},
		{Stay: domain.Stay{StayID: "b"}, Room: domain.Room{RoomNumber: "102"}, Guest: domain.Guest{FullName: "Seda Dincer"}, Balance: decimal.Zero},
		{Stay: domain.Stay{StayID: "c"}, Room: domain.Room{RoomNumber: "103"}, Guest: domain.Guest{FullName: "Bora Kaplan"}, Balance: decimal.RequireFromString("480.00")},
		{Stay: domain.Stay{StayID: "d"}, Room: domain.Room{RoomNumber: "104"}, Guest: domain.Guest{FullName: "Ece Kurt"}, Balance: decimal.RequireFromString("-30.00")},
	}
	suite.expectWindowFetches([]portsrepo.ReportOrderRow{}, []domain.Payment{}, []domain.ClosedStayRow{}, openStays)

	report, err := suite.service.BuildDailyReport(context.Background(), suite.day)

	suite.Require().NoError(err)
	suite.Require().Len(report.TopDebtors, 2)
	suite.Equal("103", report.TopDebtors[0].RoomNumber)
	suite.Equal("101", report.TopDebtors[1].RoomNumber)
}

func (suite *ReportingServiceTestSuite) TestBuildDailyReport_HourlyLoadSortedByHour() {
	orders := []portsrepo.ReportOrderRow{
		suite.orderRow("Bar", "", "260.00", 21),
		suite.orderRow("Restoran", "101", "100.00", 12),
		suite.orderRow("Restoran", "102", "95.00", 12),
	}
	suite.expectWindowFetches(orders, []domain.Payment{}, []domain.ClosedStayRow{}, []domain.StayWithDetails{})

	report, err := suite.service.BuildDailyReport(context.Background(), suite.day)

	suite.Require().NoError(err)
	suite.Require().Len(report.HourlyLoad, 2)
	suite.Equal(12, report.HourlyLoad[0].Hour)
	suite.Equal(2, report.HourlyLoad[0].OrderCount)
	suite.True(report.HourlyLoad[0].Revenue.Equal(decimal.RequireFromString("195.00")))
	suite.Equal(21, report.HourlyLoad[1].Hour)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
