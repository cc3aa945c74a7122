package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// StringArray persists a list of strings as a jsonb column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Role string

const (
	ROLE_USER  Role = "USER"
	ROLE_ADMIN Role = "ADMIN"
)

// SelectedSeat is one entry of a booking request: the stable seat
// identifier plus the seat's position, tier and unit price as rendered
// on the seat map the user picked from.
type SelectedSeat struct {
	ID    string          `json:"id"`
	Row   int             `json:"row"`
	Seat  string          `json:"seat"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}

// BookingFailReason tags the failure classes of the booking engine.
type BookingFailReason string

const (
	BOOKING_UNAUTHORIZED    BookingFailReason = "Unauthorized"
	BOOKING_INVALID_REQUEST BookingFailReason = "InvalidRequest"
	BOOKING_SEAT_CONFLICT   BookingFailReason = "SeatConflict"
	BOOKING_PERSISTENCE     BookingFailReason = "PersistenceError"
)

// BookingResult is the structured outcome of a booking attempt. Failures
// never surface as errors across the engine boundary.
type BookingResult struct {
	Success          bool              `json:"success"`
	TicketID         string            `json:"ticketId,omitempty"`
	Message          string            `json:"message"`
	Reason           BookingFailReason `json:"reason,omitempty"`
	ConflictingSeats []string          `json:"conflictingSeats,omitempty"`
}

type CreateBookingRequestBody struct {
	ShowtimeID string         `json:"showtimeId"`
	Seats      []SelectedSeat `json:"selectedSeatsData"`
}

type CreateSeatPriceRequestBody struct {
	SeatType string          `json:"seatType" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

type CreateShowtimeRequestBody struct {
	Time       string                       `json:"time" binding:"required"`
	Theater    string                       `json:"theater" binding:"required"`
	Filling    string                       `json:"filling,omitempty"`
	Seats      uint                         `json:"seats,omitempty"`
	SeatPrices []CreateSeatPriceRequestBody `json:"seatPrices" binding:"required,min=1,dive"`
}

type CreateMovieRequestBody struct {
	Title       string                      `json:"title" binding:"required"`
	Language    string                      `json:"language" binding:"required"`
	Genre       []string                    `json:"genre" binding:"required,min=1"`
	Cast        []string                    `json:"cast,omitempty"`
	Director    string                      `json:"director,omitempty"`
	Synopsis    string                      `json:"synopsis,omitempty"`
	Duration    uint                        `json:"duration" binding:"required"`
	Rating      float32                     `json:"rating,omitempty"`
	Votes       uint                        `json:"votes,omitempty"`
	ReleaseDate string                      `json:"releaseDate" binding:"required,showdate"`
	Poster      string                      `json:"poster" binding:"required"`
	Backdrop    string                      `json:"backdrop,omitempty"`
	Showtimes   []CreateShowtimeRequestBody `json:"showtimes" binding:"required,min=1,dive"`
}

// UpdateMovieRequestBody covers scalar movie edits. Showtimes have their
// own endpoints so an edit never carries a showtime set.
type UpdateMovieRequestBody struct {
	Title       string   `json:"title" binding:"required"`
	Language    string   `json:"language" binding:"required"`
	Genre       []string `json:"genre" binding:"required,min=1"`
	Cast        []string `json:"cast,omitempty"`
	Director    string   `json:"director,omitempty"`
	Synopsis    string   `json:"synopsis,omitempty"`
	Duration    uint     `json:"duration" binding:"required"`
	Rating      float32  `json:"rating,omitempty"`
	Votes       uint     `json:"votes,omitempty"`
	ReleaseDate string   `json:"releaseDate" binding:"required,showdate"`
	Poster      string   `json:"poster" binding:"required"`
	Backdrop    string   `json:"backdrop,omitempty"`
}

type MovieQueryFilters struct {
	Search   string `form:"search"`
	Language string `form:"language"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

type RegisterUserRequestBody struct {
	Email string `json:"email" binding:"required"`
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}
