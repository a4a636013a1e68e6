package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StayStatus indicates the lifecycle state of a stay.
type StayStatus string

const (
	StayOpen   StayStatus = "open"
	StayClosed StayStatus = "closed"
)

// Room is a bookable hotel room. Rooms are created on the fly at check-in when
// an unknown room number is entered, and can be deactivated without being deleted.
type Room struct {
	RoomID     string `json:"roomID"`
	RoomNumber string `json:"roomNumber"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// Guest is the person occupying a room during a stay.
type Guest struct {
	GuestID  string  `json:"guestID"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	AuditFields
}

// Stay represents one guest's continuous occupancy of one room, open until checkout.
// At most one open stay exists per room at any time; this is enforced by a partial
// unique index on the stays table, not just by the pre-check at check-in.
type Stay struct {
	StayID       string     `json:"stayID"`
	GuestID      string     `json:"guestID"`
	RoomID       string     `json:"roomID"`
	CheckIn      time.Time  `json:"checkIn"`
	CheckOutPlan *time.Time `json:"checkOutPlan,omitempty"` // planned checkout date, optional
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	Status       StayStatus `json:"status"`
	Note         string     `json:"note"`
	AuditFields
}

// StayWithDetails is the read shape used by list screens: the stay plus its
// room, guest and current balance. The repository always resolves the joined
// room and guest to exactly one record each, so callers never deal with the
// zero-or-many shapes a raw join could produce.
type StayWithDetails struct {
	Stay
	Room    Room            `json:"room"`
	Guest   Guest           `json:"guest"`
	Balance decimal.Decimal `json:"balance"`
}
