package mapping

import (
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/models"
)

// ToModelRoom converts a domain Room to a model Room
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:      d.RoomID,
		RoomNumber:  d.RoomNumber,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoom converts a model Room to a domain Room
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:      m.RoomID,
		RoomNumber:  m.RoomNumber,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomSlice converts a slice of model Rooms to domain Rooms
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	rooms := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		rooms = append(rooms, ToDomainRoom(m))
	}
	return rooms
}

// ToModelGuest converts a domain Guest to a model Guest
func ToModelGuest(d domain.Guest) models.Guest {
	return models.Guest{
		GuestID:     d.GuestID,
		FullName:    d.FullName,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGuest converts a model Guest to a domain Guest
func ToDomainGuest(m models.Guest) domain.Guest {
	return domain.Guest{
		GuestID:     m.GuestID,
		FullName:    m.FullName,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStay converts a domain Stay to a model Stay
func ToModelStay(d domain.Stay) models.Stay {
	return models.Stay{
		StayID:       d.StayID,
		GuestID:      d.GuestID,
		RoomID:       d.RoomID,
		CheckIn:      d.CheckIn,
		CheckOutPlan: d.CheckOutPlan,
		ClosedAt:     d.ClosedAt,
		Status:       string(d.Status),
		Note:         d.Note,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStay converts a model Stay to a domain Stay
func ToDomainStay(m models.Stay) domain.Stay {
	return domain.Stay{
		StayID:       m.StayID,
		GuestID:      m.GuestID,
		RoomID:       m.RoomID,
		CheckIn:      m.CheckIn,
		CheckOutPlan: m.CheckOutPlan,
		ClosedAt:     m.ClosedAt,
		Status:       domain.StayStatus(m.Status),
		Note:         m.Note,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStayWithDetails builds the read shape from a joined stay row.
// The joined room and guest columns are normalized here into exactly one
// related record each, so core logic never sees the raw join shape.
func ToDomainStayWithDetails(m models.Stay) domain.StayWithDetails {
	return domain.StayWithDetails{
		Stay: ToDomainStay(m),
		Room: domain.Room{
			RoomID:     m.RoomID,
			RoomNumber: m.RoomNumber,
			IsActive:   m.RoomIsActive,
		},
		Guest: domain.Guest{
			GuestID:  m.GuestID,
			FullName: m.GuestFullName,
			Phone:    m.GuestPhone,
		},
		Balance: m.CurrentBalance,
	}
}
