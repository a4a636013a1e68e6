package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/core/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
)

// --- Mock RoomRepository ---
type MockRoomRepository struct {
	mock.Mock
}

var _ portsrepo.RoomRepositoryFacade = (*MockRoomRepository)(nil)

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindRoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	args := m.Called(ctx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListActiveRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) SetRoomActive(ctx context.Context, roomID string, active bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, roomID, active, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.OrderWithTotal, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithTotal), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByStay(ctx context.Context, stayID string) ([]domain.OrderWithTotal, error) {
	args := m.Called(ctx, stayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithTotal), args.Error(1)
}

func (m *MockOrderRepository) ListRecentOrders(ctx context.Context, limit int) ([]domain.OrderWithTotal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithTotal), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkOrderPrinted(ctx context.Context, orderID string, printedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, orderID, printedAt, updatedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---
type StayServiceTestSuite struct {
	suite.Suite
	mockRoomRepo    *MockRoomRepository
	mockStayRepo    *MockStayRepository
	mockOrderRepo   *MockOrderRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.StaySvcFacade
	actorID         string
	room            domain.Room
}

func (suite *StayServiceTestSuite) SetupTest() {
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockStayRepo = new(MockStayRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewStayService(suite.mockRoomRepo, suite.mockStayRepo, suite.mockOrderRepo, suite.mockPaymentRepo)

	suite.actorID = uuid.NewString()
	suite.room = domain.Room{
		RoomID:     uuid.NewString(),
		RoomNumber: "101",
		IsActive:   true,
	}
}

// --- CheckIn ---

func (suite *StayServiceTestSuite) TestCheckIn_ExistingRoom() {
	ctx := context.Background()
	req := dto.CheckInRequest{GuestName: "Ayse Demir", GuestPhone: "+90 555 000 0000", RoomNumber: "101"}

	suite.mockRoomRepo.On("FindRoomByNumber", ctx, "101").Return(&suite.room, nil).Once()
	suite.mockStayRepo.On("FindOpenStayByRoomID", ctx, suite.room.RoomID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStayRepo.On("SaveGuest", ctx, mock.AnythingOfType("domain.Guest")).Return(nil).Once()
	suite.mockStayRepo.On("SaveStay", ctx, mock.AnythingOfType("domain.Stay")).Return(nil).Once()
	suite.mockStayRepo.On("FindStayWithDetails", ctx, mock.AnythingOfType("string")).
		Return(&domain.StayWithDetails{Room: suite.room, Balance: decimal.Zero}, nil).Once()

	details, err := suite.service.CheckIn(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(details)

	savedStay := suite.mockStayRepo.Calls[2].Arguments.Get(1).(domain.Stay)
	suite.Equal(suite.room.RoomID, savedStay.RoomID)
	suite.Equal(domain.StayOpen, savedStay.Status)
	suite.Equal(suite.actorID, savedStay.CreatedBy)

	savedGuest := suite.mockStayRepo.Calls[1].Arguments.Get(1).(domain.Guest)
	suite.Equal("Ayse Demir", savedGuest.FullName)
	suite.Require().NotNil(savedGuest.Phone)
	suite.Equal("+90 555 000 0000", *savedGuest.Phone)
	suite.Equal(savedGuest.GuestID, savedStay.GuestID)
	suite.mockStayRepo.AssertExpectations(suite.T())
}

func (suite *StayServiceTestSuite) TestCheckIn_CreatesUnknownRoom() {
	ctx := context.Background()
	req := dto.CheckInRequest{GuestName: "Mert Aydin", RoomNumber: "305"}

	suite.mockRoomRepo.On("FindRoomByNumber", ctx, "305").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRoomRepo.On("SaveRoom", ctx, mock.AnythingOfType("domain.Room")).Return(nil).Once()
	suite.mockStayRepo.On("FindOpenStayByRoomID", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStayRepo.On("SaveGuest", ctx, mock.AnythingOfType("domain.Guest")).Return(nil).Once()
	suite.mockStayRepo.On("SaveStay", ctx, mock.AnythingOfType("domain.Stay")).Return(nil).Once()
	suite.mockStayRepo.On("FindStayWithDetails", ctx, mock.AnythingOfType("string")).
		Return(&domain.StayWithDetails{Balance: decimal.Zero}, nil).Once()

	_, err := suite.service.CheckIn(ctx, req, suite.actorID)

	suite.Require().NoError(err)

	savedRoom := suite.mockRoomRepo.Calls[1].Arguments.Get(1).(domain.Room)
	suite.Equal("305", savedRoom.RoomNumber)
	suite.True(savedRoom.IsActive)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *StayServiceTestSuite) TestCheckIn_ReactivatesPassiveRoom() {
	ctx := context.Background()
	passive := suite.room
	passive.IsActive = false
	req := dto.CheckInRequest{GuestName: "Deniz Sen", RoomNumber: "101"}

	suite.mockRoomRepo.On("FindRoomByNumber", ctx, "101").Return(&passive, nil).Once()
	suite.mockRoomRepo.On("SetRoomActive", ctx, passive.RoomID, true, suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStayRepo.On("FindOpenStayByRoomID", ctx, passive.RoomID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStayRepo.On("SaveGuest", ctx, mock.AnythingOfType("domain.Guest")).Return(nil).Once()
	suite.mockStayRepo.On("SaveStay", ctx, mock.AnythingOfType("domain.Stay")).Return(nil).Once()
	suite.mockStayRepo.On("FindStayWithDetails", ctx, mock.AnythingOfType("string")).
		Return(&domain.StayWithDetails{Balance: decimal.Zero}, nil).Once()

	_, err := suite.service.CheckIn(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *StayServiceTestSuite) TestCheckIn_RoomOccupied() {
	ctx := context.Background()
	req := dto.CheckInRequest{GuestName: "Ece Kurt", RoomNumber: "101"}
	existing := domain.Stay{StayID: uuid.NewString(), RoomID: suite.room.RoomID, Status: domain.StayOpen}

	suite.mockRoomRepo.On("FindRoomByNumber", ctx, "101").Return(&suite.room, nil).Once()
	suite.mockStayRepo.On("FindOpenStayByRoomID", ctx, suite.room.RoomID).Return(&existing, nil).Once()

	_, err := suite.service.CheckIn(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrRoomOccupied)
	suite.mockStayRepo.AssertNotCalled(suite.T(), "SaveStay", mock.Anything, mock.Anything)
}

func (suite *StayServiceTestSuite) TestCheckIn_BlankGuestName() {
	ctx := context.Background()
	req := dto.CheckInRequest{GuestName: "   ", RoomNumber: "101"}

	_, err := suite.service.CheckIn(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "FindRoomByNumber", mock.Anything, mock.Anything)
}

// --- GetFolio ---

func (suite *StayServiceTestSuite) TestGetFolio_BalanceMath() {
	ctx := context.Background()
	stayID := uuid.NewString()
	details := domain.StayWithDetails{
		Stay:    domain.Stay{StayID: stayID, Status: domain.StayOpen},
		Room:    suite.room,
		Balance: decimal.RequireFromString("25.50"),
	}
	orders := []domain.OrderWithTotal{
		{Total: decimal.RequireFromString("150.00")},
		{Total: decimal.RequireFromString("75.50")},
	}
	payments := []domain.Payment{
		{Amount: decimal.RequireFromString("200.00"), EntryType: domain.EntryPayment},
	}

	suite.mockStayRepo.On("FindStayWithDetails", ctx, stayID).Return(&details, nil).Once()
	suite.mockOrderRepo.On("ListOrdersByStay", ctx, stayID).Return(orders, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByStay", ctx, stayID).Return(payments, nil).Once()
	suite.mockPaymentRepo.On("ListAuditLogsByStay", ctx, stayID).Return([]domain.PaymentAuditLog{}, nil).Once()

	folio, err := suite.service.GetFolio(ctx, stayID)

	suite.Require().NoError(err)
	suite.True(folio.Charges.Equal(decimal.RequireFromString("225.50")))
	suite.True(folio.Paid.Equal(decimal.RequireFromString("200.00")))
	suite.True(folio.Remaining.Equal(decimal.RequireFromString("25.50")))
}

func (suite *StayServiceTestSuite) TestGetFolio_ReversalRestoresRemaining() {
	ctx := context.Background()
	stayID := uuid.NewString()
	details := domain.StayWithDetails{Stay: domain.Stay{StayID: stayID, Status: domain.StayOpen}}
	orders := []domain.OrderWithTotal{{Total: decimal.RequireFromString("225.50")}}
	ref := uuid.NewString()
	payments := []domain.Payment{
		{PaymentID: ref, Amount: decimal.RequireFromString("200.00"), EntryType: domain.EntryPayment},
		{Amount: decimal.RequireFromString("-200.00"), EntryType: domain.EntryReversal, ReferencePaymentID: &ref},
	}

	suite.mockStayRepo.On("FindStayWithDetails", ctx, stayID).Return(&details, nil).Once()
	suite.mockOrderRepo.On("ListOrdersByStay", ctx, stayID).Return(orders, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByStay", ctx, stayID).Return(payments, nil).Once()
	suite.mockPaymentRepo.On("ListAuditLogsByStay", ctx, stayID).Return([]domain.PaymentAuditLog{}, nil).Once()

	folio, err := suite.service.GetFolio(ctx, stayID)

	suite.Require().NoError(err)
	suite.True(folio.Paid.IsZero())
	suite.True(folio.Remaining.Equal(decimal.RequireFromString("225.50")))
}

func (suite *StayServiceTestSuite) TestGetFolio_NotFound() {
	ctx := context.Background()
	stayID := uuid.NewString()

	suite.mockStayRepo.On("FindStayWithDetails", ctx, stayID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetFolio(ctx, stayID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- CloseStay ---

func (suite *StayServiceTestSuite) TestCloseStay_Success() {
	ctx := context.Background()
	stay := domain.Stay{StayID: uuid.NewString(), Status: domain.StayOpen}

	suite.mockStayRepo.On("FindStayByID", ctx, stay.StayID).Return(&stay, nil).Once()
	suite.mockStayRepo.On("CloseStay", ctx, stay.StayID, mock.AnythingOfType("time.Time"), suite.actorID).Return(nil).Once()

	err := suite.service.CloseStay(ctx, stay.StayID, suite.actorID)

	suite.Require().NoError(err)
	suite.mockStayRepo.AssertExpectations(suite.T())
}

func (suite *StayServiceTestSuite) TestCloseStay_AlreadyClosed() {
	ctx := context.Background()
	stay := domain.Stay{StayID: uuid.NewString(), Status: domain.StayClosed}

	suite.mockStayRepo.On("FindStayByID", ctx, stay.StayID).Return(&stay, nil).Once()

	err := suite.service.CloseStay(ctx, stay.StayID, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrStayClosed)
	suite.mockStayRepo.AssertNotCalled(suite.T(), "CloseStay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StayServiceTestSuite))
}
