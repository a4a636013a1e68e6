package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	"github.com/kyigit/hotel_folio_app/internal/models"
	"github.com/kyigit/hotel_folio_app/internal/utils/mapping"
)

type PgxRoomRepository struct {
	BaseRepository
}

func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

const roomSelectColumns = `
	room_id, room_number, is_active, created_at, created_by, last_updated_at, last_updated_by
`

func scanRoom(row pgx.Row) (models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.RoomNumber,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRoom persists a new room row.
func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	modelRoom := mapping.ToModelRoom(room)
	query := `
		INSERT INTO rooms (room_id, room_number, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRoom.RoomID,
		modelRoom.RoomNumber,
		modelRoom.IsActive,
		modelRoom.CreatedAt,
		modelRoom.CreatedBy,
		modelRoom.LastUpdatedAt,
		modelRoom.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert room "+modelRoom.RoomID, err)
	}
	return nil
}

// FindRoomByID retrieves a room by its ID.
func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE room_id = $1;`
	m, err := scanRoom(r.Pool.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room by ID "+roomID, err)
	}

	domainRoom := mapping.ToDomainRoom(m)
	return &domainRoom, nil
}

// FindRoomByNumber retrieves a room by its display number. Matching is
// case-insensitive so "12a" and "12A" resolve to the same room.
func (r *PgxRoomRepository) FindRoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE LOWER(room_number) = LOWER($1);`
	m, err := scanRoom(r.Pool.QueryRow(ctx, query, roomNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room by number "+roomNumber, err)
	}

	domainRoom := mapping.ToDomainRoom(m)
	return &domainRoom, nil
}

// ListActiveRooms retrieves all active rooms ordered by room number.
func (r *PgxRoomRepository) ListActiveRooms(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE is_active ORDER BY room_number ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active rooms", err)
	}
	defer rows.Close()

	roomModels := []models.Room{}
	for rows.Next() {
		m, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room row", scanErr)
		}
		roomModels = append(roomModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating room rows", err)
	}

	return mapping.ToDomainRoomSlice(roomModels), nil
}

// SetRoomActive flips a room's active flag.
func (r *PgxRoomRepository) SetRoomActive(ctx context.Context, roomID string, active bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE rooms
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE room_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, roomID, active, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update room "+roomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
