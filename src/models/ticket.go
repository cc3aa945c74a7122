package models

import (
	"frontrow/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID         uuid.UUID       `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     uint            `gorm:"index" json:"user_id,omitempty"`
	ShowtimeID uuid.UUID       `gorm:"type:uuid;index" json:"showtime_id,omitempty"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"totalPrice"`

	User     *User        `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Showtime *Showtime    `gorm:"foreignKey:showtime_id" json:"showtime,omitempty"`
	Seats    []TicketSeat `gorm:"foreignKey:ticket_id" json:"seats,omitempty"`

	types.Timestamps
}

// TicketSeat is an immutable line-item snapshot. Row, seat, type and
// price are copied at booking time and stay valid after SeatPrice edits.
type TicketSeat struct {
	ID       uuid.UUID       `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	TicketID uuid.UUID       `gorm:"type:uuid;index" json:"ticket_id,omitempty"`
	SeatID   string          `json:"seat_id"`
	Row      string          `json:"row"`
	Seat     string          `json:"seat"`
	Type     string          `json:"type"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`

	types.Timestamps
}
