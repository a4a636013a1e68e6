package services

import (
	"context"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/dto"
)

// OrderSvcFacade exposes POS order operations.
type OrderSvcFacade interface {
	// CreateOrder validates and persists an order with its line items.
	// Room-charge orders require an open stay; walk-in orders pass no stay.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actorID string) (*domain.OrderWithTotal, error)

	// GetOrder returns one order with items and total.
	GetOrder(ctx context.Context, orderID string) (*domain.OrderWithTotal, error)

	// ListRecentOrders returns the latest orders, newest first.
	ListRecentOrders(ctx context.Context, limit int) ([]domain.OrderWithTotal, error)

	// MarkPrinted records that a receipt was produced for the order.
	MarkPrinted(ctx context.Context, orderID string, actorID string) error
}
