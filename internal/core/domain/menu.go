package domain

import "github.com/shopspring/decimal"

// Outlet is a point of sale within the property (restaurant, bar, room service).
type Outlet struct {
	OutletID string `json:"outletID"`
	Name     string `json:"name"`
	AuditFields
}

// MenuItem is a priceable catalog item belonging to an outlet. Deactivating an
// item hides it from the POS without touching historical order lines, which
// snapshot name and price at sale time.
type MenuItem struct {
	MenuItemID string          `json:"menuItemID"`
	OutletID   string          `json:"outletID"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   *string         `json:"imageURL,omitempty"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}
