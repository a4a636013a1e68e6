package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	"github.com/kyigit/hotel_folio_app/internal/models"
	"github.com/kyigit/hotel_folio_app/internal/utils/mapping"
)

type PgxStaffUserRepository struct {
	BaseRepository
}

func newPgxStaffUserRepository(pool *pgxpool.Pool) portsrepo.StaffUserRepositoryFacade {
	return &PgxStaffUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StaffUserRepositoryFacade = (*PgxStaffUserRepository)(nil)

const staffUserSelectColumns = `
	staff_user_id, username, display_name, role, pin_hash, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanStaffUser(row pgx.Row) (models.StaffUser, error) {
	var m models.StaffUser
	err := row.Scan(
		&m.StaffUserID,
		&m.Username,
		&m.DisplayName,
		&m.Role,
		&m.PINHash,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindStaffUserByID retrieves a staff user by their ID.
func (r *PgxStaffUserRepository) FindStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffUserSelectColumns + ` FROM staff_users WHERE staff_user_id = $1;`
	m, err := scanStaffUser(r.Pool.QueryRow(ctx, query, staffUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find staff user by ID "+staffUserID, err)
	}

	user := mapping.ToDomainStaffUser(m)
	return &user, nil
}

// FindStaffUserByUsername retrieves an active staff user by username.
// Deactivated accounts are invisible to login.
func (r *PgxStaffUserRepository) FindStaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffUserSelectColumns + ` FROM staff_users WHERE LOWER(username) = LOWER($1) AND is_active;`
	m, err := scanStaffUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find staff user by username", err)
	}

	user := mapping.ToDomainStaffUser(m)
	return &user, nil
}

// ListStaffUsersByRole retrieves active staff users with the given role.
func (r *PgxStaffUserRepository) ListStaffUsersByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error) {
	query := `SELECT ` + staffUserSelectColumns + ` FROM staff_users WHERE role = $1 AND is_active ORDER BY display_name ASC;`
	rows, err := r.Pool.Query(ctx, query, string(role))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query staff users", err)
	}
	defer rows.Close()

	users := []domain.StaffUser{}
	for rows.Next() {
		m, scanErr := scanStaffUser(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan staff user row", scanErr)
		}
		users = append(users, mapping.ToDomainStaffUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating staff user rows", err)
	}

	return users, nil
}

// SaveStaffUser persists a new staff user.
func (r *PgxStaffUserRepository) SaveStaffUser(ctx context.Context, user domain.StaffUser) error {
	m := mapping.ToModelStaffUser(user)
	query := `
		INSERT INTO staff_users (staff_user_id, username, display_name, role, pin_hash, is_active,
		                         created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StaffUserID,
		m.Username,
		m.DisplayName,
		m.Role,
		m.PINHash,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert staff user "+m.StaffUserID, err)
	}
	return nil
}
