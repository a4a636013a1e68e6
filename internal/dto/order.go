package dto

import (
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one cart line. Name and unit price are snapshotted from
// the request so the receipt is immune to later catalog edits.
type OrderItemRequest struct {
	MenuItemID string          `json:"menuItemID"`
	ItemName   string          `json:"itemName" binding:"required"`
	Quantity   int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateOrderRequest defines the payload for saving a POS order. StayID is
// empty for walk-in sales.
type CreateOrderRequest struct {
	OutletID string             `json:"outletID" binding:"required"`
	StayID   string             `json:"stayID"`
	Note     string             `json:"note"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse defines the data returned for one order line.
type OrderItemResponse struct {
	ItemName  string          `json:"itemName"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderResponse defines the data returned for an order with its total.
type OrderResponse struct {
	OrderID   string              `json:"orderID"`
	StayID    *string             `json:"stayID,omitempty"`
	OutletID  string              `json:"outletID"`
	Note      string              `json:"note"`
	PrintedAt *time.Time          `json:"printedAt,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
}

// ToOrderResponse converts a domain OrderWithTotal to an OrderResponse DTO.
func ToOrderResponse(o domain.OrderWithTotal) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)),
		}
	}
	return OrderResponse{
		OrderID:   o.OrderID,
		StayID:    o.StayID,
		OutletID:  o.OutletID,
		Note:      o.Note,
		PrintedAt: o.PrintedAt,
		CreatedAt: o.CreatedAt,
		Items:     items,
		Total:     o.Total,
	}
}

// ToOrderResponses converts a slice of domain OrderWithTotal.
func ToOrderResponses(orders []domain.OrderWithTotal) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}
	return responses
}
