package models

import "github.com/shopspring/decimal"

// Outlet mirrors the outlets table.
type Outlet struct {
	OutletID string `db:"outlet_id"`
	Name     string `db:"name"`
	AuditFields
}

// MenuItem mirrors the menu_items table.
type MenuItem struct {
	MenuItemID string          `db:"menu_item_id"`
	OutletID   string          `db:"outlet_id"`
	Name       string          `db:"name"`
	Category   string          `db:"category"`
	Price      decimal.Decimal `db:"price"`
	ImageURL   *string         `db:"image_url"`
	IsActive   bool            `db:"is_active"`
	AuditFields
}
