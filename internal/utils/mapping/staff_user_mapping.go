package mapping

import (
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/models"
)

// ToModelStaffUser converts a domain StaffUser to a model StaffUser
func ToModelStaffUser(d domain.StaffUser) models.StaffUser {
	return models.StaffUser{
		StaffUserID: d.StaffUserID,
		Username:    d.Username,
		DisplayName: d.DisplayName,
		Role:        string(d.Role),
		PINHash:     d.PINHash,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStaffUser converts a model StaffUser to a domain StaffUser
func ToDomainStaffUser(m models.StaffUser) domain.StaffUser {
	return domain.StaffUser{
		StaffUserID: m.StaffUserID,
		Username:    m.Username,
		DisplayName: m.DisplayName,
		Role:        domain.StaffRole(m.Role),
		PINHash:     m.PINHash,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
