package repositories

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a room by its unique identifier.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// FindRoomByNumber retrieves a room by its (case-insensitive) room number.
	FindRoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)

	// ListActiveRooms retrieves all active rooms ordered by room number.
	ListActiveRooms(ctx context.Context) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// SetRoomActive flips the is_active flag on a room.
	SetRoomActive(ctx context.Context, roomID string, active bool, updatedBy string, updatedAt time.Time) error
}

// RoomRepositoryFacade combines all room-related repository interfaces.
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}

// GuestWriter defines write operations for guest data
type GuestWriter interface {
	// SaveGuest persists a new guest.
	SaveGuest(ctx context.Context, guest domain.Guest) error
}

// StayReader defines read operations for stay data
type StayReader interface {
	// FindStayByID retrieves a stay by its unique identifier.
	FindStayByID(ctx context.Context, stayID string) (*domain.Stay, error)

	// FindOpenStayByRoomID retrieves the open stay for a room, if any.
	FindOpenStayByRoomID(ctx context.Context, roomID string) (*domain.Stay, error)

	// ListOpenStays retrieves all open stays with room, guest and balance details,
	// ordered by check-in descending.
	ListOpenStays(ctx context.Context) ([]domain.StayWithDetails, error)

	// FindStayWithDetails retrieves one stay with room, guest and balance details.
	FindStayWithDetails(ctx context.Context, stayID string) (*domain.StayWithDetails, error)
}

// StayWriter defines write operations for stay data
type StayWriter interface {
	// SaveStay persists a new stay. Returns apperrors.ErrRoomOccupied when the
	// room already has an open stay (unique constraint on open stays per room).
	SaveStay(ctx context.Context, stay domain.Stay) error

	// CloseStay transitions an open stay to closed. The update is guarded with
	// status = 'open' so a second close reports apperrors.ErrStayClosed rather
	// than silently succeeding.
	CloseStay(ctx context.Context, stayID string, closedAt time.Time, closedBy string) error
}

// StayRepositoryFacade combines stay and guest repository interfaces.
type StayRepositoryFacade interface {
	StayReader
	StayWriter
	GuestWriter
}
