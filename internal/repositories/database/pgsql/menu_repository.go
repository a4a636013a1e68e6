package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	"github.com/kyigit/hotel_folio_app/internal/models"
	"github.com/kyigit/hotel_folio_app/internal/utils/mapping"
)

type PgxMenuRepository struct {
	BaseRepository
}

func newPgxMenuRepository(pool *pgxpool.Pool) portsrepo.MenuRepositoryFacade {
	return &PgxMenuRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MenuRepositoryFacade = (*PgxMenuRepository)(nil)

// ListOutlets retrieves all outlets ordered by name.
func (r *PgxMenuRepository) ListOutlets(ctx context.Context) ([]domain.Outlet, error) {
	query := `
		SELECT outlet_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM outlets
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query outlets", err)
	}
	defer rows.Close()

	outlets := []domain.Outlet{}
	for rows.Next() {
		var m models.Outlet
		if scanErr := rows.Scan(
			&m.OutletID,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan outlet row", scanErr)
		}
		outlets = append(outlets, mapping.ToDomainOutlet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating outlet rows", err)
	}

	return outlets, nil
}

// FindOutletByID retrieves an outlet by its ID.
func (r *PgxMenuRepository) FindOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error) {
	query := `
		SELECT outlet_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM outlets
		WHERE outlet_id = $1;
	`
	var m models.Outlet
	err := r.Pool.QueryRow(ctx, query, outletID).Scan(
		&m.OutletID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find outlet by ID "+outletID, err)
	}

	outlet := mapping.ToDomainOutlet(m)
	return &outlet, nil
}

const menuItemSelectColumns = `
	menu_item_id, outlet_id, name, category, price, image_url, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanMenuItem(row pgx.Row) (models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(
		&m.MenuItemID,
		&m.OutletID,
		&m.Name,
		&m.Category,
		&m.Price,
		&m.ImageURL,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindMenuItemByID retrieves a menu item by its ID.
func (r *PgxMenuRepository) FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemSelectColumns + ` FROM menu_items WHERE menu_item_id = $1;`
	m, err := scanMenuItem(r.Pool.QueryRow(ctx, query, menuItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find menu item by ID "+menuItemID, err)
	}

	item := mapping.ToDomainMenuItem(m)
	return &item, nil
}

// ListMenuItems retrieves menu items filtered by outlet and active status.
// An empty outletID means all outlets.
func (r *PgxMenuRepository) ListMenuItems(ctx context.Context, outletID string, status portsrepo.MenuItemStatusFilter) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemSelectColumns + `
		FROM menu_items
		WHERE ($1 = '' OR outlet_id = $1)
		  AND ($2 = 'all' OR is_active = ($2 = 'active'))
		ORDER BY category ASC, name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, string(status))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query menu items", err)
	}
	defer rows.Close()

	itemModels := []models.MenuItem{}
	for rows.Next() {
		m, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan menu item row", scanErr)
		}
		itemModels = append(itemModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating menu item rows", err)
	}

	return mapping.ToDomainMenuItemSlice(itemModels), nil
}

// SaveMenuItem persists a new menu item.
func (r *PgxMenuRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	m := mapping.ToModelMenuItem(item)
	query := `
		INSERT INTO menu_items (menu_item_id, outlet_id, name, category, price, image_url, is_active,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MenuItemID,
		m.OutletID,
		m.Name,
		m.Category,
		m.Price,
		m.ImageURL,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert menu item "+m.MenuItemID, err)
	}
	return nil
}

// UpdateMenuItem updates the editable fields of a menu item.
func (r *PgxMenuRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	m := mapping.ToModelMenuItem(item)
	query := `
		UPDATE menu_items
		SET name = $2, category = $3, price = $4, image_url = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE menu_item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MenuItemID,
		m.Name,
		m.Category,
		m.Price,
		m.ImageURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update menu item "+m.MenuItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetMenuItemActive flips a menu item's active flag.
func (r *PgxMenuRepository) SetMenuItemActive(ctx context.Context, menuItemID string, active bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE menu_items
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE menu_item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, menuItemID, active, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update menu item "+menuItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
