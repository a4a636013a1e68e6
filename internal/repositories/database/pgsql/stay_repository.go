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

const pgUniqueViolation = "23505"

type PgxStayRepository struct {
	BaseRepository
}

// newPgxStayRepository creates a new repository for stay and guest data.
func newPgxStayRepository(pool *pgxpool.Pool) portsrepo.StayRepositoryFacade {
	return &PgxStayRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StayRepositoryFacade = (*PgxStayRepository)(nil)

// SaveGuest persists a new guest row.
func (r *PgxStayRepository) SaveGuest(ctx context.Context, guest domain.Guest) error {
	modelGuest := mapping.ToModelGuest(guest)
	query := `
		INSERT INTO guests (guest_id, full_name, phone, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelGuest.GuestID,
		modelGuest.FullName,
		modelGuest.Phone,
		modelGuest.CreatedAt,
		modelGuest.CreatedBy,
		modelGuest.LastUpdatedAt,
		modelGuest.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert guest "+modelGuest.GuestID, err)
	}
	return nil
}

// SaveStay persists a new stay row. The partial unique index on open stays per
// room turns a lost check-then-act race into a constraint violation here, which
// is mapped to ErrRoomOccupied.
func (r *PgxStayRepository) SaveStay(ctx context.Context, stay domain.Stay) error {
	modelStay := mapping.ToModelStay(stay)
	query := `
		INSERT INTO stays (stay_id, guest_id, room_id, check_in, check_out_plan, closed_at, status, note,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelStay.StayID,
		modelStay.GuestID,
		modelStay.RoomID,
		modelStay.CheckIn,
		modelStay.CheckOutPlan,
		modelStay.ClosedAt,
		modelStay.Status,
		modelStay.Note,
		modelStay.CreatedAt,
		modelStay.CreatedBy,
		modelStay.LastUpdatedAt,
		modelStay.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrRoomOccupied
		}
		return apperrors.NewAppError(500, "failed to insert stay "+modelStay.StayID, err)
	}
	return nil
}

// FindStayByID retrieves a stay by its ID.
func (r *PgxStayRepository) FindStayByID(ctx context.Context, stayID string) (*domain.Stay, error) {
	query := `
		SELECT stay_id, guest_id, room_id, check_in, check_out_plan, closed_at, status, note,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM stays
		WHERE stay_id = $1;
	`
	var m models.Stay
	err := r.Pool.QueryRow(ctx, query, stayID).Scan(
		&m.StayID,
		&m.GuestID,
		&m.RoomID,
		&m.CheckIn,
		&m.CheckOutPlan,
		&m.ClosedAt,
		&m.Status,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stay by ID "+stayID, err)
	}

	domainStay := mapping.ToDomainStay(m)
	return &domainStay, nil
}

// FindOpenStayByRoomID retrieves the open stay for a room, if any.
func (r *PgxStayRepository) FindOpenStayByRoomID(ctx context.Context, roomID string) (*domain.Stay, error) {
	query := `
		SELECT stay_id, guest_id, room_id, check_in, check_out_plan, closed_at, status, note,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM stays
		WHERE room_id = $1 AND status = 'open';
	`
	var m models.Stay
	err := r.Pool.QueryRow(ctx, query, roomID).Scan(
		&m.StayID,
		&m.GuestID,
		&m.RoomID,
		&m.CheckIn,
		&m.CheckOutPlan,
		&m.ClosedAt,
		&m.Status,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open stay for room "+roomID, err)
	}

	domainStay := mapping.ToDomainStay(m)
	return &domainStay, nil
}

// stayDetailsQuery joins room, guest and the balance view into a single
// consistent row shape. The join always yields exactly one room and one guest;
// a stay without ledger activity gets a zero balance via COALESCE.
const stayDetailsQuery = `
	SELECT s.stay_id, s.guest_id, s.room_id, s.check_in, s.check_out_plan, s.closed_at, s.status, s.note,
	       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
	       r.room_number, r.is_active,
	       g.full_name, g.phone,
	       COALESCE(b.balance, 0) AS balance
	FROM stays s
	JOIN rooms r ON r.room_id = s.room_id
	JOIN guests g ON g.guest_id = s.guest_id
	LEFT JOIN v_stay_balances b ON b.stay_id = s.stay_id
`

func scanStayDetails(row pgx.Row) (models.Stay, error) {
	var m models.Stay
	err := row.Scan(
		&m.StayID,
		&m.GuestID,
		&m.RoomID,
		&m.CheckIn,
		&m.CheckOutPlan,
		&m.ClosedAt,
		&m.Status,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.RoomNumber,
		&m.RoomIsActive,
		&m.GuestFullName,
		&m.GuestPhone,
		&m.CurrentBalance,
	)
	return m, err
}

// ListOpenStays retrieves all open stays with details, newest check-in first.
func (r *PgxStayRepository) ListOpenStays(ctx context.Context) ([]domain.StayWithDetails, error) {
	query := stayDetailsQuery + `
		WHERE s.status = 'open'
		ORDER BY s.check_in DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query open stays", err)
	}
	defer rows.Close()

	stays := []domain.StayWithDetails{}
	for rows.Next() {
		m, scanErr := scanStayDetails(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan open stay row", scanErr)
		}
		stays = append(stays, mapping.ToDomainStayWithDetails(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating open stay rows", err)
	}

	return stays, nil
}

// FindStayWithDetails retrieves one stay with room, guest and balance.
func (r *PgxStayRepository) FindStayWithDetails(ctx context.Context, stayID string) (*domain.StayWithDetails, error) {
	query := stayDetailsQuery + `
		WHERE s.stay_id = $1;
	`
	m, err := scanStayDetails(r.Pool.QueryRow(ctx, query, stayID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stay details for "+stayID, err)
	}

	details := mapping.ToDomainStayWithDetails(m)
	return &details, nil
}

// CloseStay transitions an open stay to closed. The status guard in the WHERE
// clause makes a second close lose cleanly instead of rewriting closed_at.
func (r *PgxStayRepository) CloseStay(ctx context.Context, stayID string, closedAt time.Time, closedBy string) error {
	query := `
		UPDATE stays
		SET status = 'closed',
		    closed_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE stay_id = $1 AND status = 'open';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, stayID, closedAt, closedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close stay "+stayID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the stay does not exist or it is already closed; the service
		// distinguishes the two with a follow-up read.
		return apperrors.ErrStayClosed
	}
	return nil
}
