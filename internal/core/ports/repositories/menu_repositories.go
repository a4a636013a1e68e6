package repositories

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// MenuItemStatusFilter narrows menu item listings by their active flag.
type MenuItemStatusFilter string

const (
	MenuItemsAll      MenuItemStatusFilter = "all"
	MenuItemsActive   MenuItemStatusFilter = "active"
	MenuItemsInactive MenuItemStatusFilter = "inactive"
)

// MenuReader defines read operations for catalog data
type MenuReader interface {
	// ListOutlets retrieves all outlets ordered by name.
	ListOutlets(ctx context.Context) ([]domain.Outlet, error)

	// FindOutletByID retrieves an outlet by its unique identifier.
	FindOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error)

	// FindMenuItemByID retrieves a menu item by its unique identifier.
	FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error)

	// ListMenuItems retrieves menu items, optionally filtered by outlet and
	// active status, ordered by category then name.
	ListMenuItems(ctx context.Context, outletID string, status MenuItemStatusFilter) ([]domain.MenuItem, error)
}

// MenuWriter defines write operations for catalog data
type MenuWriter interface {
	// SaveMenuItem persists a new menu item.
	SaveMenuItem(ctx context.Context, item domain.MenuItem) error

	// UpdateMenuItem updates name, category, price and image of a menu item.
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error

	// SetMenuItemActive flips the is_active flag on a menu item.
	SetMenuItemActive(ctx context.Context, menuItemID string, active bool, updatedBy string, updatedAt time.Time) error
}

// MenuRepositoryFacade combines all catalog repository interfaces.
type MenuRepositoryFacade interface {
	MenuReader
	MenuWriter
}
