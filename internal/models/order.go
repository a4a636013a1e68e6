package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order mirrors the orders table.
type Order struct {
	OrderID   string     `db:"order_id"`
	StayID    *string    `db:"stay_id"`
	OutletID  string     `db:"outlet_id"`
	Source    string     `db:"source"`
	Note      string     `db:"note"`
	PrintedAt *time.Time `db:"printed_at"`
	AuditFields

	// Joined read field from v_order_totals.
	Total decimal.Decimal `db:"total"`
}

// OrderItem mirrors the order_items table.
type OrderItem struct {
	OrderItemID string          `db:"order_item_id"`
	OrderID     string          `db:"order_id"`
	MenuItemID  *string         `db:"menu_item_id"`
	ItemName    string          `db:"item_name"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}
