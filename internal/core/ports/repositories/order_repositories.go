package repositories

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves an order with its items and computed total.
	FindOrderByID(ctx context.Context, orderID string) (*domain.OrderWithTotal, error)

	// ListOrdersByStay retrieves all orders for one stay with items and totals,
	// ordered by creation time.
	ListOrdersByStay(ctx context.Context, stayID string) ([]domain.OrderWithTotal, error)

	// ListRecentOrders retrieves the latest orders across all stays with totals,
	// newest first.
	ListRecentOrders(ctx context.Context, limit int) ([]domain.OrderWithTotal, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists an order header and its line items in one database
	// transaction. The header insert and the batched item inserts either all
	// commit or all roll back.
	SaveOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) error

	// MarkOrderPrinted sets printed_at on an order if not already set.
	MarkOrderPrinted(ctx context.Context, orderID string, printedAt time.Time, updatedBy string) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
