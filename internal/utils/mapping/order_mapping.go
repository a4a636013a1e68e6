package mapping

import (
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:     d.OrderID,
		StayID:      d.StayID,
		OutletID:    d.OutletID,
		Source:      string(d.Source),
		Note:        d.Note,
		PrintedAt:   d.PrintedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:     m.OrderID,
		StayID:      m.StayID,
		OutletID:    m.OutletID,
		Source:      domain.OrderSource(m.Source),
		Note:        m.Note,
		PrintedAt:   m.PrintedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOrderItem converts a domain OrderItem to a model OrderItem
func ToModelOrderItem(d domain.OrderItem) models.OrderItem {
	return models.OrderItem{
		OrderItemID: d.OrderItemID,
		OrderID:     d.OrderID,
		MenuItemID:  d.MenuItemID,
		ItemName:    d.ItemName,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
	}
}

// ToDomainOrderItem converts a model OrderItem to a domain OrderItem
func ToDomainOrderItem(m models.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		OrderItemID: m.OrderItemID,
		OrderID:     m.OrderID,
		MenuItemID:  m.MenuItemID,
		ItemName:    m.ItemName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
}

// ToDomainOrderItemSlice converts a slice of model OrderItems to domain OrderItems
func ToDomainOrderItemSlice(ms []models.OrderItem) []domain.OrderItem {
	items := make([]domain.OrderItem, len(ms))
	for i, m := range ms {
		items[i] = ToDomainOrderItem(m)
	}
	return items
}
