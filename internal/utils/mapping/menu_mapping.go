package mapping

import (
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/models"
)

// ToDomainOutlet converts a model Outlet to a domain Outlet
func ToDomainOutlet(m models.Outlet) domain.Outlet {
	return domain.Outlet{
		OutletID:    m.OutletID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMenuItem converts a domain MenuItem to a model MenuItem
func ToModelMenuItem(d domain.MenuItem) models.MenuItem {
	return models.MenuItem{
		MenuItemID:  d.MenuItemID,
		OutletID:    d.OutletID,
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMenuItem converts a model MenuItem to a domain MenuItem
func ToDomainMenuItem(m models.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		MenuItemID:  m.MenuItemID,
		OutletID:    m.OutletID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMenuItemSlice converts a slice of model MenuItems to domain MenuItems
func ToDomainMenuItemSlice(ms []models.MenuItem) []domain.MenuItem {
	items := make([]domain.MenuItem, len(ms))
	for i, m := range ms {
		items[i] = ToDomainMenuItem(m)
	}
	return items
}
