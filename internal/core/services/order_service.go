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
	foliocalc "github.com/kyigit/hotel_folio_app/internal/utils/folio"
)

const defaultRecentOrdersLimit = 50

// orderService provides POS order operations.
type orderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
	stayRepo  portsrepo.StayRepositoryFacade
	menuRepo  portsrepo.MenuRepositoryFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, stayRepo portsrepo.StayRepositoryFacade, menuRepo portsrepo.MenuRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo: orderRepo,
		stayRepo:  stayRepo,
		menuRepo:  menuRepo,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder validates and persists an order with its line items. Item names
// and unit prices are snapshotted from the request, so later catalog edits
// never change a past receipt.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actorID string) (*domain.OrderWithTotal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.menuRepo.FindOutletByID(ctx, req.OutletID); err != nil {
		return nil, err
	}

	// Room-charge orders need an open stay behind them.
	var stayID *string
	if req.StayID != "" {
		stay, err := s.stayRepo.FindStayByID(ctx, req.StayID)
		if err != nil {
			return nil, err
		}
		if stay.Status != domain.StayOpen {
			return nil, apperrors.ErrNoActiveStay
		}
		stayID = &stay.StayID
	}

	now := time.Now()
	order := domain.Order{
		OrderID:  uuid.NewString(),
		StayID:   stayID,
		OutletID: req.OutletID,
		Source:   domain.OrderSourcePOS,
		Note:     req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.UnitPrice.IsNegative() {
			return nil, apperrors.NewBadRequestError("unit price cannot be negative")
		}
		itemName := strings.TrimSpace(line.ItemName)
		if itemName == "" {
			return nil, apperrors.NewBadRequestError("item name is required")
		}
		var menuItemID *string
		if line.MenuItemID != "" {
			id := line.MenuItemID
			menuItemID = &id
		}
		items = append(items, domain.OrderItem{
			OrderItemID: uuid.NewString(),
			OrderID:     order.OrderID,
			MenuItemID:  menuItemID,
			ItemName:    itemName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}

	if err := s.orderRepo.SaveOrder(ctx, order, items); err != nil {
		return nil, err
	}

	total := foliocalc.OrderTotal(items)
	logger.Info("Created order",
		slog.String("order_id", order.OrderID),
		slog.String("outlet_id", order.OutletID),
		slog.Int("item_count", len(items)),
		slog.String("total", total.String()),
	)

	return &domain.OrderWithTotal{
		Order: order,
		Items: items,
		Total: total,
	}, nil
}

// GetOrder returns one order with items and total.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.OrderWithTotal, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

// ListRecentOrders returns the latest orders, newest first.
func (s *orderService) ListRecentOrders(ctx context.Context, limit int) ([]domain.OrderWithTotal, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultRecentOrdersLimit
	}
	return s.orderRepo.ListRecentOrders(ctx, limit)
}

// MarkPrinted records that a receipt was produced for the order. The first
// print wins; re-prints keep the original timestamp.
func (s *orderService) MarkPrinted(ctx context.Context, orderID string, actorID string) error {
	return s.orderRepo.MarkOrderPrinted(ctx, orderID, time.Now(), actorID)
}
