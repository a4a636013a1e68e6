package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room mirrors the rooms table.
type Room struct {
	RoomID     string `db:"room_id"`
	RoomNumber string `db:"room_number"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}

// Guest mirrors the guests table.
type Guest struct {
	GuestID  string  `db:"guest_id"`
	FullName string  `db:"full_name"`
	Phone    *string `db:"phone"`
	AuditFields
}

// Stay mirrors the stays table.
type Stay struct {
	StayID       string     `db:"stay_id"`
	GuestID      string     `db:"guest_id"`
	RoomID       string     `db:"room_id"`
	CheckIn      time.Time  `db:"check_in"`
	CheckOutPlan *time.Time `db:"check_out_plan"`
	ClosedAt     *time.Time `db:"closed_at"`
	Status       string     `db:"status"`
	Note         string     `db:"note"`
	AuditFields

	// Joined read fields, populated by list/folio queries only.
	RoomNumber     string          `db:"room_number"`
	RoomIsActive   bool            `db:"room_is_active"`
	GuestFullName  string          `db:"guest_full_name"`
	GuestPhone     *string         `db:"guest_phone"`
	CurrentBalance decimal.Decimal `db:"balance"`
}
