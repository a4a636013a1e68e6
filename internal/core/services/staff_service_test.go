package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/core/services"
	"github.com/kyigit/hotel_folio_app/internal/utils"
)

// --- Mock StaffUserRepository ---
type MockStaffUserRepository struct {
	mock.Mock
}

var _ portsrepo.StaffUserRepositoryFacade = (*MockStaffUserRepository)(nil)

func (m *MockStaffUserRepository) FindStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error) {
	args := m.Called(ctx, staffUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffUserRepository) FindStaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffUserRepository) ListStaffUsersByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffUser), args.Error(1)
}

func (m *MockStaffUserRepository) SaveStaffUser(ctx context.Context, user domain.StaffUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite Setup ---
type StaffServiceTestSuite struct {
	suite.Suite
	mockStaffRepo *MockStaffUserRepository
	service       portssvc.StaffSvcFacade
}

func (suite *StaffServiceTestSuite) SetupTest() {
	suite.mockStaffRepo = new(MockStaffUserRepository)
	suite.service = services.NewStaffService(suite.mockStaffRepo)
}

func (suite *StaffServiceTestSuite) activeUser(pin string) *domain.StaffUser {
	hash, err := utils.HashPIN(pin)
	suite.Require().NoError(err)
	return &domain.StaffUser{
		StaffUserID: uuid.NewString(),
		Username:    "aylin",
		DisplayName: "Aylin Yilmaz",
		Role:        domain.RoleReception,
		PINHash:     hash,
		IsActive:    true,
	}
}

func (suite *StaffServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.activeUser("2580")

	suite.mockStaffRepo.On("FindStaffUserByUsername", ctx, "aylin").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, " aylin ", "2580")

	suite.Require().NoError(err)
	suite.Equal(user.StaffUserID, got.StaffUserID)
}

func (suite *StaffServiceTestSuite) TestAuthenticate_WrongPIN() {
	ctx := context.Background()
	user := suite.activeUser("2580")

	suite.mockStaffRepo.On("FindStaffUserByUsername", ctx, "aylin").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "aylin", "0000")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *StaffServiceTestSuite) TestAuthenticate_UnknownUserSameError() {
	ctx := context.Background()

	suite.mockStaffRepo.On("FindStaffUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "ghost", "2580")

	// Unknown user and wrong PIN must be indistinguishable to the caller.
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *StaffServiceTestSuite) TestListStaffByRole_UnknownRole() {
	_, err := suite.service.ListStaffByRole(context.Background(), "manager")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "ListStaffUsersByRole", mock.Anything, mock.Anything)
}

func (suite *StaffServiceTestSuite) TestEnsureBootstrapAdmin_CreatesWhenMissing() {
	ctx := context.Background()

	suite.mockStaffRepo.On("FindStaffUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStaffRepo.On("SaveStaffUser", ctx, mock.AnythingOfType("domain.StaffUser")).Return(nil).Once()

	err := suite.service.EnsureBootstrapAdmin(ctx, "admin", "1234")

	suite.Require().NoError(err)

	saved := suite.mockStaffRepo.Calls[1].Arguments.Get(1).(domain.StaffUser)
	suite.Equal("admin", saved.Username)
	suite.Equal(domain.RoleAdmin, saved.Role)
	suite.True(saved.IsActive)
	suite.True(utils.CheckPINHash("1234", saved.PINHash))
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestEnsureBootstrapAdmin_NoopWhenPresent() {
	ctx := context.Background()
	existing := suite.activeUser("1234")
	existing.Username = "admin"
	existing.Role = domain.RoleAdmin

	suite.mockStaffRepo.On("FindStaffUserByUsername", ctx, "admin").Return(existing, nil).Once()

	err := suite.service.EnsureBootstrapAdmin(ctx, "admin", "1234")

	suite.Require().NoError(err)
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "SaveStaffUser", mock.Anything, mock.Anything)
}

func (suite *StaffServiceTestSuite) TestEnsureBootstrapAdmin_DuplicateRace() {
	ctx := context.Background()

	suite.mockStaffRepo.On("FindStaffUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStaffRepo.On("SaveStaffUser", ctx, mock.AnythingOfType("domain.StaffUser")).Return(apperrors.ErrDuplicate).Once()

	err := suite.service.EnsureBootstrapAdmin(ctx, "admin", "1234")

	suite.Require().NoError(err)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
