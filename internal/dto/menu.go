package dto

import (
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest defines the payload for adding a catalog item.
type CreateMenuItemRequest struct {
	OutletID string          `json:"outletID" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	ImageURL string          `json:"imageURL"`
}

// UpdateMenuItemRequest defines the payload for editing a catalog item.
// Historical order lines are unaffected: they snapshot name and price at sale.
type UpdateMenuItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	ImageURL string          `json:"imageURL"`
}

// OutletResponse defines the data returned for an outlet.
type OutletResponse struct {
	OutletID string `json:"outletID"`
	Name     string `json:"name"`
}

// MenuItemResponse defines the data returned for a menu item.
type MenuItemResponse struct {
	MenuItemID string          `json:"menuItemID"`
	OutletID   string          `json:"outletID"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   *string         `json:"imageURL,omitempty"`
	IsActive   bool            `json:"isActive"`
}

// ToOutletResponse converts a domain Outlet to an OutletResponse DTO.
func ToOutletResponse(o domain.Outlet) OutletResponse {
	return OutletResponse{
		OutletID: o.OutletID,
		Name:     o.Name,
	}
}

// ToOutletResponses converts a slice of domain Outlets.
func ToOutletResponses(outlets []domain.Outlet) []OutletResponse {
	responses := make([]OutletResponse, len(outlets))
	for i, o := range outlets {
		responses[i] = ToOutletResponse(o)
	}
	return responses
}

// ToMenuItemResponse converts a domain MenuItem to a MenuItemResponse DTO.
func ToMenuItemResponse(m domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		MenuItemID: m.MenuItemID,
		OutletID:   m.OutletID,
		Name:       m.Name,
		Category:   m.Category,
		Price:      m.Price,
		ImageURL:   m.ImageURL,
		IsActive:   m.IsActive,
	}
}

// ToMenuItemResponses converts a slice of domain MenuItems.
func ToMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	responses := make([]MenuItemResponse, len(items))
	for i, m := range items {
		responses[i] = ToMenuItemResponse(m)
	}
	return responses
}
