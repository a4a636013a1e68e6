package services

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// StaffSvcFacade exposes staff lookup and credential verification.
type StaffSvcFacade interface {
	// Authenticate verifies a username + PIN pair against active staff users.
	// Fails with apperrors.ErrUnauthorized on any mismatch; callers must not
	// distinguish unknown user from wrong PIN.
	Authenticate(ctx context.Context, username, pin string) (*domain.StaffUser, error)

	// GetStaffUserByID returns one staff user.
	GetStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error)

	// ListStaffByRole returns active staff for the login role picker.
	ListStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error)

	// EnsureBootstrapAdmin creates the initial admin account when no user
	// with that username exists yet. Safe to call on every startup.
	EnsureBootstrapAdmin(ctx context.Context, username, pin string) error
}

// TokenSvcFacade issues and validates the JWTs that authenticate staff sessions.
type TokenSvcFacade interface {
	// IssueToken creates a signed access token for a staff user. The token
	// subject is the staff user id and a role claim carries their role.
	IssueToken(ctx context.Context, user *domain.StaffUser) (string, time.Time, error)
}
