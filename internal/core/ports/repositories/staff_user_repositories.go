package repositories

import (
	"context"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// StaffUserReader defines read operations for staff users
type StaffUserReader interface {
	// FindStaffUserByID retrieves a staff user by their unique identifier.
	FindStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error)

	// FindStaffUserByUsername retrieves an active staff user by username.
	FindStaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error)

	// ListStaffUsersByRole retrieves active staff users for one role, ordered
	// by display name.
	ListStaffUsersByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error)
}

// StaffUserWriter defines write operations for staff users
type StaffUserWriter interface {
	// SaveStaffUser persists a new staff user.
	SaveStaffUser(ctx context.Context, user domain.StaffUser) error
}

// StaffUserRepositoryFacade combines all staff user repository interfaces.
type StaffUserRepositoryFacade interface {
	StaffUserReader
	StaffUserWriter
}
