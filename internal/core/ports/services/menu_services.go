package services

import (
	"context"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	"github.com/kyigit/hotel_folio_app/internal/dto"
)

// MenuSvcFacade exposes catalog management for outlets and menu items.
type MenuSvcFacade interface {
	// ListOutlets returns all outlets.
	ListOutlets(ctx context.Context) ([]domain.Outlet, error)

	// ListMenuItems returns menu items filtered by outlet and status.
	ListMenuItems(ctx context.Context, outletID string, status portsrepo.MenuItemStatusFilter) ([]domain.MenuItem, error)

	// CreateMenuItem adds a new active catalog item.
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest, actorID string) (*domain.MenuItem, error)

	// UpdateMenuItem edits an item's name, category, price and image.
	// Historical order lines keep their sale-time snapshots.
	UpdateMenuItem(ctx context.Context, menuItemID string, req dto.UpdateMenuItemRequest, actorID string) (*domain.MenuItem, error)

	// ToggleMenuItem flips an item's active flag and returns the new state.
	ToggleMenuItem(ctx context.Context, menuItemID string, actorID string) (*domain.MenuItem, error)
}
