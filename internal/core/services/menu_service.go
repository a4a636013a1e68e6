package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
)

// menuService provides catalog management for outlets and menu items.
type menuService struct {
	menuRepo portsrepo.MenuRepositoryFacade
}

// NewMenuService creates a new MenuService.
func NewMenuService(menuRepo portsrepo.MenuRepositoryFacade) portssvc.MenuSvcFacade {
	return &menuService{menuRepo: menuRepo}
}

var _ portssvc.MenuSvcFacade = (*menuService)(nil)

// ListOutlets returns all outlets.
func (s *menuService) ListOutlets(ctx context.Context) ([]domain.Outlet, error) {
	return s.menuRepo.ListOutlets(ctx)
}

// ListMenuItems returns menu items filtered by outlet and status.
func (s *menuService) ListMenuItems(ctx context.Context, outletID string, status portsrepo.MenuItemStatusFilter) ([]domain.MenuItem, error) {
	switch status {
	case portsrepo.MenuItemsAll, portsrepo.MenuItemsActive, portsrepo.MenuItemsInactive:
	case "":
		status = portsrepo.MenuItemsActive
	default:
		return nil, apperrors.NewBadRequestError("unknown status filter: " + string(status))
	}
	return s.menuRepo.ListMenuItems(ctx, outletID, status)
}

// CreateMenuItem adds a new active catalog item.
func (s *menuService) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest, actorID string) (*domain.MenuItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, apperrors.NewBadRequestError("price cannot be negative")
	}
	if _, err := s.menuRepo.FindOutletByID(ctx, req.OutletID); err != nil {
		return nil, err
	}

	now := time.Now()
	var imageURL *string
	if u := strings.TrimSpace(req.ImageURL); u != "" {
		imageURL = &u
	}
	item := domain.MenuItem{
		MenuItemID: uuid.NewString(),
		OutletID:   req.OutletID,
		Name:       strings.TrimSpace(req.Name),
		Category:   strings.TrimSpace(req.Category),
		Price:      req.Price,
		ImageURL:   imageURL,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.menuRepo.SaveMenuItem(ctx, item); err != nil {
		return nil, err
	}

	logger.Info("Created menu item", slog.String("menu_item_id", item.MenuItemID), slog.String("outlet_id", item.OutletID))
	return &item, nil
}

// UpdateMenuItem edits a catalog item. Past order lines keep the name and
// price they were sold at.
func (s *menuService) UpdateMenuItem(ctx context.Context, menuItemID string, req dto.UpdateMenuItemRequest, actorID string) (*domain.MenuItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, apperrors.NewBadRequestError("price cannot be negative")
	}

	item, err := s.menuRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(req.Name)
	item.Category = strings.TrimSpace(req.Category)
	item.Price = req.Price
	if u := strings.TrimSpace(req.ImageURL); u != "" {
		item.ImageURL = &u
	} else {
		item.ImageURL = nil
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = actorID

	if err := s.menuRepo.UpdateMenuItem(ctx, *item); err != nil {
		return nil, err
	}

	logger.Info("Updated menu item", slog.String("menu_item_id", menuItemID))
	return item, nil
}

// ToggleMenuItem flips an item's active flag and returns the new state.
func (s *menuService) ToggleMenuItem(ctx context.Context, menuItemID string, actorID string) (*domain.MenuItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.menuRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.IsActive = !item.IsActive
	item.LastUpdatedAt = now
	item.LastUpdatedBy = actorID

	if err := s.menuRepo.SetMenuItemActive(ctx, menuItemID, item.IsActive, actorID, now); err != nil {
		return nil, err
	}

	logger.Info("Toggled menu item", slog.String("menu_item_id", menuItemID), slog.Bool("is_active", item.IsActive))
	return item, nil
}
