package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/kyigit/hotel_folio_app/internal/utils"
)

// staffService provides staff lookup and PIN verification.
type staffService struct {
	staffRepo portsrepo.StaffUserRepositoryFacade
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo portsrepo.StaffUserRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

// Authenticate verifies a username + PIN pair. Unknown user and wrong PIN
// produce the same error so login responses leak nothing about which failed.
func (s *staffService) Authenticate(ctx context.Context, username, pin string) (*domain.StaffUser, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.staffRepo.FindStaffUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPINHash(pin, user.PINHash) {
		logger.Warn("PIN mismatch on login", slog.String("staff_user_id", user.StaffUserID))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetStaffUserByID returns one staff user.
func (s *staffService) GetStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error) {
	return s.staffRepo.FindStaffUserByID(ctx, staffUserID)
}

// ListStaffByRole returns active staff for the login role picker.
func (s *staffService) ListStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error) {
	if !domain.ValidStaffRole(role) {
		return nil, apperrors.NewBadRequestError("unknown role: " + string(role))
	}
	return s.staffRepo.ListStaffUsersByRole(ctx, role)
}

// EnsureBootstrapAdmin creates the initial admin account when no user with
// that username exists yet. No-op when one does.
func (s *staffService) EnsureBootstrapAdmin(ctx context.Context, username, pin string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(pin) == "" {
		return apperrors.NewBadRequestError("bootstrap admin username and PIN are required")
	}

	_, err := s.staffRepo.FindStaffUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	pinHash, err := utils.HashPIN(pin)
	if err != nil {
		return err
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.StaffUser{
		StaffUserID: userID,
		Username:    username,
		DisplayName: "Administrator",
		Role:        domain.RoleAdmin,
		PINHash:     pinHash,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.staffRepo.SaveStaffUser(ctx, user); err != nil {
		// A concurrent replica may have created it between the lookup and
		// the insert.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return err
	}

	logger.Info("bootstrap admin account created", slog.String("username", username))
	return nil
}
