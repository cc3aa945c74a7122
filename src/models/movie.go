package models

import (
	"frontrow/src/types"
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID          uuid.UUID         `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string            `json:"title"`
	Language    string            `json:"language"`
	Genre       types.StringArray `gorm:"type:jsonb" json:"genre"`
	Cast        types.StringArray `gorm:"type:jsonb" json:"cast,omitempty"`
	Director    string            `json:"director,omitempty"`
	Synopsis    string            `json:"synopsis,omitempty"`
	Duration    uint              `json:"duration,omitempty"`
	Rating      float32           `json:"rating,omitempty"`
	Votes       uint              `json:"votes,omitempty"`
	ReleaseDate time.Time         `json:"release_date"`
	Poster      string            `json:"poster,omitempty"`
	Backdrop    string            `json:"backdrop,omitempty"`

	Showtimes []Showtime `gorm:"foreignKey:movie_id" json:"showtimes,omitempty"`

	types.Timestamps
}
