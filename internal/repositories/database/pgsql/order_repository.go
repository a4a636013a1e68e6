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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// orderSelectQuery joins v_order_totals so every read carries the computed
// total without a second round trip.
const orderSelectQuery = `
	SELECT o.order_id, o.stay_id, o.outlet_id, o.source, o.note, o.printed_at,
	       o.created_at, o.created_by, o.last_updated_at, o.last_updated_by,
	       COALESCE(t.total, 0) AS total
	FROM orders o
	LEFT JOIN v_order_totals t ON t.order_id = o.order_id
`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.StayID,
		&m.OutletID,
		&m.Source,
		&m.Note,
		&m.PrintedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Total,
	)
	return m, err
}

// SaveOrder persists an order header and its line items atomically. Items are
// inserted through a single batch inside the transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	modelOrder := mapping.ToModelOrder(order)
	headerQuery := `
		INSERT INTO orders (order_id, stay_id, outlet_id, source, note, printed_at,
		                    created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelOrder.OrderID,
		modelOrder.StayID,
		modelOrder.OutletID,
		modelOrder.Source,
		modelOrder.Note,
		modelOrder.PrintedAt,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert order "+modelOrder.OrderID, err)
	}

	itemQuery := `
		INSERT INTO order_items (order_item_id, order_id, menu_item_id, item_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelOrderItem(item)
		batch.Queue(itemQuery, m.OrderItemID, m.OrderID, m.MenuItemID, m.ItemName, m.Quantity, m.UnitPrice)
	}
	results := tx.SendBatch(ctx, batch)
	for range items {
		if _, execErr := results.Exec(); execErr != nil {
			_ = results.Close()
			return apperrors.NewAppError(500, "failed to insert order item batch for "+modelOrder.OrderID, execErr)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close order item batch for "+modelOrder.OrderID, err)
	}

	return r.Commit(ctx, tx)
}

// FindOrderByID retrieves one order with its items and total.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.OrderWithTotal, error) {
	query := orderSelectQuery + ` WHERE o.order_id = $1;`
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find order by ID "+orderID, err)
	}

	itemsByOrder, err := r.loadItems(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}

	result := toOrderWithTotal(m, itemsByOrder[orderID])
	return &result, nil
}

// ListOrdersByStay retrieves all orders for a stay with items, oldest first.
func (r *PgxOrderRepository) ListOrdersByStay(ctx context.Context, stayID string) ([]domain.OrderWithTotal, error) {
	query := orderSelectQuery + ` WHERE o.stay_id = $1 ORDER BY o.created_at ASC;`
	return r.queryOrdersWithItems(ctx, query, stayID)
}

// ListRecentOrders retrieves the latest orders across all stays, newest first.
func (r *PgxOrderRepository) ListRecentOrders(ctx context.Context, limit int) ([]domain.OrderWithTotal, error) {
	query := orderSelectQuery + ` ORDER BY o.created_at DESC LIMIT $1;`
	return r.queryOrdersWithItems(ctx, query, limit)
}

func (r *PgxOrderRepository) queryOrdersWithItems(ctx context.Context, query string, args ...any) ([]domain.OrderWithTotal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orders", err)
	}
	defer rows.Close()

	orderModels := []models.Order{}
	orderIDs := []string{}
	for rows.Next() {
		m, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order row", scanErr)
		}
		orderModels = append(orderModels, m)
		orderIDs = append(orderIDs, m.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order rows", err)
	}

	itemsByOrder, err := r.loadItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.OrderWithTotal, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderWithTotal(m, itemsByOrder[m.OrderID]))
	}
	return orders, nil
}

// loadItems fetches the line items for a set of orders in one query, keyed by
// order ID. Items keep their insertion order within each order.
func (r *PgxOrderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	itemsByOrder := map[string][]domain.OrderItem{}
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	query := `
		SELECT order_item_id, order_id, menu_item_id, item_name, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.OrderItem
		if scanErr := rows.Scan(
			&m.OrderItemID,
			&m.OrderID,
			&m.MenuItemID,
			&m.ItemName,
			&m.Quantity,
			&m.UnitPrice,
		); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order item row", scanErr)
		}
		itemsByOrder[m.OrderID] = append(itemsByOrder[m.OrderID], mapping.ToDomainOrderItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order item rows", err)
	}

	return itemsByOrder, nil
}

func toOrderWithTotal(m models.Order, items []domain.OrderItem) domain.OrderWithTotal {
	if items == nil {
		items = []domain.OrderItem{}
	}
	return domain.OrderWithTotal{
		Order: mapping.ToDomainOrder(m),
		Items: items,
		Total: m.Total,
	}
}

// MarkOrderPrinted stamps printed_at once. Re-printing an already stamped
// order keeps the original timestamp.
func (r *PgxOrderRepository) MarkOrderPrinted(ctx context.Context, orderID string, printedAt time.Time, updatedBy string) error {
	query := `
		UPDATE orders
		SET printed_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE order_id = $1 AND printed_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, orderID, printedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark order printed "+orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Already printed is not an error; only a missing order is.
		if _, findErr := r.FindOrderByID(ctx, orderID); findErr != nil {
			return findErr
		}
	}
	return nil
}
