package models

import (
	"frontrow/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID      uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	MovieID uuid.UUID `gorm:"type:uuid;index" json:"movie_id,omitempty"`
	Time    string    `json:"time"`
	Theater string    `json:"theater"`
	Filling string    `gorm:"default:'low'" json:"filling,omitempty"`
	Seats   uint      `gorm:"default:100" json:"seats,omitempty"`

	Movie      *Movie      `gorm:"foreignKey:movie_id" json:"movie,omitempty"`
	SeatPrices []SeatPrice `gorm:"foreignKey:showtime_id" json:"seatPrices,omitempty"`

	types.Timestamps
}

type SeatPrice struct {
	ID         uuid.UUID       `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	ShowtimeID uuid.UUID       `gorm:"type:uuid;index" json:"showtime_id,omitempty"`
	SeatType   string          `json:"seatType"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`

	types.Timestamps
}
