package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/handlers"
	"github.com/kyigit/hotel_folio_app/internal/platform/config"
	"github.com/kyigit/hotel_folio_app/internal/utils"
)

// --- Mock StayService ---
type MockStayService struct {
	mock.Mock
}

var _ portssvc.StaySvcFacade = (*MockStayService)(nil)

func (m *MockStayService) CheckIn(ctx context.Context, req dto.CheckInRequest, actorID string) (*domain.StayWithDetails, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StayWithDetails), args.Error(1)
}

func (m *MockStayService) ListOpenStays(ctx context.Context) ([]domain.StayWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StayWithDetails), args.Error(1)
}

func (m *MockStayService) GetFolio(ctx context.Context, stayID string) (*domain.Folio, error) {
	args := m.Called(ctx, stayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockStayService) CloseStay(ctx context.Context, stayID string, actorID string) error {
	args := m.Called(ctx, stayID, actorID)
	return args.Error(0)
}

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

func (m *MockOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actorID string) (*domain.OrderWithTotal, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithTotal), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*domain.OrderWithTotal, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithTotal), args.Error(1)
}

func (m *MockOrderService) ListRecentOrders(ctx context.Context, limit int) ([]domain.OrderWithTotal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithTotal), args.Error(1)
}

func (m *MockOrderService) MarkPrinted(ctx context.Context, orderID string, actorID string) error {
	args := m.Called(ctx, orderID, actorID)
	return args.Error(0)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) RecordPayment(ctx context.Context, stayID string, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error) {
	args := m.Called(ctx, stayID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CancelPayment(ctx context.Context, paymentID string, req dto.CancelPaymentRequest, actorID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) AdjustPayment(ctx context.Context, paymentID string, req dto.AdjustPaymentRequest, actorID string) (*domain.Payment, *domain.Payment, error) {
	args := m.Called(ctx, paymentID, req, actorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(*domain.Payment), args.Error(2)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, stayID string) ([]domain.Payment, error) {
	args := m.Called(ctx, stayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListAuditLogs(ctx context.Context, stayID string) ([]domain.PaymentAuditLog, error) {
	args := m.Called(ctx, stayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentAuditLog), args.Error(1)
}

// --- Mock MenuService ---
type MockMenuService struct {
	mock.Mock
}

var _ portssvc.MenuSvcFacade = (*MockMenuService)(nil)

func (m *MockMenuService) ListOutlets(ctx context.Context) ([]domain.Outlet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Outlet), args.Error(1)
}

func (m *MockMenuService) ListMenuItems(ctx context.Context, outletID string, status portsrepo.MenuItemStatusFilter) ([]domain.MenuItem, error) {
	args := m.Called(ctx, outletID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuService) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest, actorID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuService) UpdateMenuItem(ctx context.Context, menuItemID string, req dto.UpdateMenuItemRequest, actorID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, menuItemID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuService) ToggleMenuItem(ctx context.Context, menuItemID string, actorID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, menuItemID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) BuildDailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

// --- Mock StaffService ---
type MockStaffService struct {
	mock.Mock
}

var _ portssvc.StaffSvcFacade = (*MockStaffService)(nil)

func (m *MockStaffService) Authenticate(ctx context.Context, username, pin string) (*domain.StaffUser, error) {
	args := m.Called(ctx, username, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffService) GetStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error) {
	args := m.Called(ctx, staffUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffService) ListStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffUser), args.Error(1)
}

func (m *MockStaffService) EnsureBootstrapAdmin(ctx context.Context, username, pin string) error {
	args := m.Called(ctx, username, pin)
	return args.Error(0)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) IssueToken(ctx context.Context, user *domain.StaffUser) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	jwtSecret          string
}

func (suite *PaymentHandlerTestSuite) generateTestToken(userID string, role domain.StaffRole) string {
	token, _, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "folio-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPaymentService = new(MockPaymentService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger route registration
	}
	services := &portssvc.ServiceContainer{
		Stay:      new(MockStayService),
		Order:     new(MockOrderService),
		Payment:   suite.mockPaymentService,
		Menu:      new(MockMenuService),
		Reporting: new(MockReportingService),
		Staff:     new(MockStaffService),
		Token:     new(MockTokenService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *PaymentHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_Success() {
	stayID := uuid.NewString()
	actorID := uuid.NewString()
	payment := &domain.Payment{
		PaymentID: uuid.NewString(),
		StayID:    stayID,
		Method:    domain.MethodCash,
		Amount:    decimal.RequireFromString("200.00"),
		EntryType: domain.EntryPayment,
	}

	suite.mockPaymentService.On("RecordPayment",
		mock.Anything,
		stayID,
		mock.MatchedBy(func(r dto.RecordPaymentRequest) bool {
			return r.Method == domain.MethodCash && r.Amount.Equal(decimal.RequireFromString("200.00"))
		}),
		actorID,
	).Return(payment, nil).Once()

	token := suite.generateTestToken(actorID, domain.RoleReception)
	body := map[string]any{"method": "cash", "amount": "200.00"}
	w := suite.doJSON(http.MethodPost, "/api/v1/stays/"+stayID+"/payments", token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.PaymentID)
	suite.Equal("payment", resp.EntryType)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_NoToken() {
	w := suite.doJSON(http.MethodPost, "/api/v1/stays/"+uuid.NewString()+"/payments", "", map[string]any{"method": "cash", "amount": "10"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_ServiceRoleForbidden() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleService)
	w := suite.doJSON(http.MethodPost, "/api/v1/stays/"+uuid.NewString()+"/payments", token, map[string]any{"method": "cash", "amount": "10"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCancelPayment_AdminPassesReceptionGate() {
	paymentID := uuid.NewString()
	actorID := uuid.NewString()
	ref := paymentID
	reversal := &domain.Payment{
		PaymentID:          uuid.NewString(),
		StayID:             uuid.NewString(),
		Method:             domain.MethodCash,
		Amount:             decimal.RequireFromString("-200.00"),
		EntryType:          domain.EntryReversal,
		ReferencePaymentID: &ref,
	}

	suite.mockPaymentService.On("CancelPayment",
		mock.Anything,
		paymentID,
		dto.CancelPaymentRequest{Reason: "wrong guest"},
		actorID,
	).Return(reversal, nil).Once()

	token := suite.generateTestToken(actorID, domain.RoleAdmin)
	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+paymentID+"/cancel", token, map[string]any{"reason": "wrong guest"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("reversal", resp.EntryType)
	suite.Require().NotNil(resp.ReferencePaymentID)
	suite.Equal(paymentID, *resp.ReferencePaymentID)
}

func (suite *PaymentHandlerTestSuite) TestCancelPayment_NotCancelable() {
	paymentID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockPaymentService.On("CancelPayment",
		mock.Anything, paymentID, mock.AnythingOfType("dto.CancelPaymentRequest"), actorID,
	).Return(nil, apperrors.ErrNotCancelable).Once()

	token := suite.generateTestToken(actorID, domain.RoleReception)
	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+paymentID+"/cancel", token, map[string]any{"reason": "duplicate"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestAdjustPayment_Success() {
	paymentID := uuid.NewString()
	actorID := uuid.NewString()
	ref := paymentID
	reversal := &domain.Payment{
		PaymentID:          uuid.NewString(),
		Method:             domain.MethodCash,
		Amount:             decimal.RequireFromString("-200.00"),
		EntryType:          domain.EntryReversal,
		ReferencePaymentID: &ref,
	}
	replacement := &domain.Payment{
		PaymentID:          uuid.NewString(),
		Method:             domain.MethodCard,
		Amount:             decimal.RequireFromString("225.50"),
		EntryType:          domain.EntryAdjustment,
		ReferencePaymentID: &ref,
	}

	suite.mockPaymentService.On("AdjustPayment",
		mock.Anything, paymentID, mock.AnythingOfType("dto.AdjustPaymentRequest"), actorID,
	).Return(reversal, replacement, nil).Once()

	token := suite.generateTestToken(actorID, domain.RoleReception)
	body := map[string]any{"newMethod": "card", "newAmount": "225.50", "reason": "typo in amount"}
	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+paymentID+"/adjust", token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AdjustPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("reversal", resp.Reversal.EntryType)
	suite.Equal("adjustment", resp.Replacement.EntryType)
	suite.Equal("card", resp.Replacement.Method)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_StayNotFound() {
	stayID := uuid.NewString()

	suite.mockPaymentService.On("ListPayments", mock.Anything, stayID).Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleReception)
	w := suite.doJSON(http.MethodGet, "/api/v1/stays/"+stayID+"/payments", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
