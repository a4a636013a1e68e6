package dto

import (
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckInRequest defines the payload for creating a new stay.
// RoomNumber is free text: an unknown number creates the room on the fly,
// a passive room is reactivated, an occupied one is rejected.
type CheckInRequest struct {
	GuestName    string     `json:"guestName" binding:"required"`
	GuestPhone   string     `json:"guestPhone"`
	RoomNumber   string     `json:"roomNumber" binding:"required"`
	CheckOutPlan *time.Time `json:"checkOutPlan"`
	Note         string     `json:"note"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID     string `json:"roomID"`
	RoomNumber string `json:"roomNumber"`
	IsActive   bool   `json:"isActive"`
}

// GuestResponse defines the data returned for a guest.
type GuestResponse struct {
	GuestID  string  `json:"guestID"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
}

// StayResponse defines the data returned for a stay with its details.
type StayResponse struct {
	StayID       string          `json:"stayID"`
	Room         RoomResponse    `json:"room"`
	Guest        GuestResponse   `json:"guest"`
	CheckIn      time.Time       `json:"checkIn"`
	CheckOutPlan *time.Time      `json:"checkOutPlan,omitempty"`
	ClosedAt     *time.Time      `json:"closedAt,omitempty"`
	Status       string          `json:"status"`
	Note         string          `json:"note"`
	Balance      decimal.Decimal `json:"balance"`
}

// FolioResponse is the full bill for one stay. Remaining is charges minus paid
// and goes negative when the guest overpaid; Overpaid flags that case so UI
// layers render it distinctly.
type FolioResponse struct {
	Stay      StayResponse       `json:"stay"`
	Orders    []OrderResponse    `json:"orders"`
	Payments  []PaymentResponse  `json:"payments"`
	AuditLogs []AuditLogResponse `json:"auditLogs"`
	Charges   decimal.Decimal    `json:"charges"`
	Paid      decimal.Decimal    `json:"paid"`
	Remaining decimal.Decimal    `json:"remaining"`
	Overpaid  bool               `json:"overpaid"`
}

// ToStayResponse converts a domain StayWithDetails to a StayResponse DTO.
func ToStayResponse(s domain.StayWithDetails) StayResponse {
	return StayResponse{
		StayID: s.StayID,
		Room: RoomResponse{
			RoomID:     s.Room.RoomID,
			RoomNumber: s.Room.RoomNumber,
			IsActive:   s.Room.IsActive,
		},
		Guest: GuestResponse{
			GuestID:  s.Guest.GuestID,
			FullName: s.Guest.FullName,
			Phone:    s.Guest.Phone,
		},
		CheckIn:      s.CheckIn,
		CheckOutPlan: s.CheckOutPlan,
		ClosedAt:     s.ClosedAt,
		Status:       string(s.Status),
		Note:         s.Note,
		Balance:      s.Balance,
	}
}

// ToStayResponses converts a slice of domain StayWithDetails.
func ToStayResponses(stays []domain.StayWithDetails) []StayResponse {
	responses := make([]StayResponse, len(stays))
	for i, s := range stays {
		responses[i] = ToStayResponse(s)
	}
	return responses
}

// ToFolioResponse converts a domain Folio to a FolioResponse DTO.
func ToFolioResponse(f domain.Folio) FolioResponse {
	return FolioResponse{
		Stay:      ToStayResponse(f.Stay),
		Orders:    ToOrderResponses(f.Orders),
		Payments:  ToPaymentResponses(f.Payments),
		AuditLogs: ToAuditLogResponses(f.AuditLogs),
		Charges:   f.Charges,
		Paid:      f.Paid,
		Remaining: f.Remaining,
		Overpaid:  f.Remaining.IsNegative(),
	}
}
