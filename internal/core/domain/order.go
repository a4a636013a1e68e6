package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSource records which surface created the order.
type OrderSource string

const (
	OrderSourcePOS OrderSource = "pos"
)

// Order is one POS transaction. It is tied to a stay for room charges, or left
// untied for walk-in sales. Immutable once created, except for the printed_at
// side effect when a receipt is produced.
type Order struct {
	OrderID   string      `json:"orderID"`
	StayID    *string     `json:"stayID,omitempty"` // nil for walk-in orders
	OutletID  string      `json:"outletID"`
	Source    OrderSource `json:"source"`
	Note      string      `json:"note"`
	PrintedAt *time.Time  `json:"printedAt,omitempty"`
	AuditFields
}

// OrderItem is one line within an order. Name and unit price are captured at
// sale time so receipts stay stable when the catalog changes later.
type OrderItem struct {
	OrderItemID string          `json:"orderItemID"`
	OrderID     string          `json:"orderID"`
	MenuItemID  *string         `json:"menuItemID,omitempty"`
	ItemName    string          `json:"itemName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderWithTotal is the read shape used by folio and report screens.
type OrderWithTotal struct {
	Order
	Items []OrderItem     `json:"items"`
	Total decimal.Decimal `json:"total"`
}
