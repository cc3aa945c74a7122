package models

import (
	"frontrow/src/types"

	"github.com/google/uuid"
)

// BookedSeat is the concurrency-control ledger. One row per claimed seat
// per showtime; the composite unique index is the backstop that turns a
// missed read-check race into an insert failure instead of a double
// booking.
type BookedSeat struct {
	ID         uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_booked_seats_showtime_seat" json:"showtime_id"`
	SeatID     string    `gorm:"uniqueIndex:idx_booked_seats_showtime_seat" json:"seat_id"`
	TicketID   uuid.UUID `gorm:"type:uuid;index" json:"ticket_id"`

	Ticket *Ticket `gorm:"foreignKey:ticket_id" json:"-"`

	types.Timestamps
}
