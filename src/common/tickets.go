package common

import (
	"fmt"
	"frontrow/src/db"
	"frontrow/src/models"
	"frontrow/src/models/scopes"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TicketDetail is the flattened booking row shown on the admin tickets
// page and in the user's booking history.
type TicketDetail struct {
	ID          string    `json:"id"`
	BookedBy    string    `json:"bookedBy,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
	MovieTitle  string    `json:"movieTitle"`
	Showtime    string    `json:"showtime"`
	TotalPrice  string    `json:"totalPrice"`
	BookingDate time.Time `json:"bookingDate"`
	SeatDetails string    `json:"seatDetails"`
	SeatCount   int       `json:"seatCount"`
}

func ticketDetail(t *models.Ticket) TicketDetail {
	d := TicketDetail{
		ID:          t.ID.String(),
		TotalPrice:  t.TotalPrice.StringFixed(2),
		BookingDate: t.CreatedAt,
		SeatCount:   len(t.Seats),
	}
	if t.User != nil {
		d.BookedBy = t.User.Name
		d.UserEmail = t.User.Email
	}
	if t.Showtime != nil {
		d.Showtime = fmt.Sprintf("%s (%s)", t.Showtime.Time, t.Showtime.Theater)
		if t.Showtime.Movie != nil {
			d.MovieTitle = t.Showtime.Movie.Title
		}
	}
	labels := make([]string, 0, len(t.Seats))
	for _, s := range t.Seats {
		labels = append(labels, fmt.Sprintf("%s%s (%s)", s.Row, s.Seat, s.Type))
	}
	d.SeatDetails = strings.Join(labels, ", ")
	return d
}

// GetTicketDetail loads one booking with its user, showtime and seats.
func GetTicketDetail(id string) (*TicketDetail, error) {
	var ticket models.Ticket
	db := db.GetDb()
	err := db.
		Model(&models.Ticket{}).
		Preload("User").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Seats").
		Where("id = ?", id).
		First(&ticket).
		Error
	if err != nil {
		return nil, err
	}
	detail := ticketDetail(&ticket)
	return &detail, nil
}

// ListAllBookedTickets returns every booking, newest first, for the
// admin tickets page.
func ListAllBookedTickets() ([]TicketDetail, error) {
	var tickets []models.Ticket
	db := db.GetDb()
	err := db.
		Model(&models.Ticket{}).
		Preload("User").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Seats").
		Order("created_at desc").
		Find(&tickets).
		Error
	if err != nil {
		return nil, err
	}
	details := make([]TicketDetail, 0, len(tickets))
	for i := range tickets {
		details = append(details, ticketDetail(&tickets[i]))
	}
	return details, nil
}

// ListUserBookings returns the caller's booking history, newest first.
func ListUserBookings(userID uint) ([]TicketDetail, error) {
	var tickets []models.Ticket
	db := db.GetDb()
	err := db.
		Model(&models.Ticket{}).
		Scopes(scopes.WithUser(userID)).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_seats.row asc, ticket_seats.seat asc")
		}).
		Order("created_at desc").
		Find(&tickets).
		Error
	if err != nil {
		return nil, err
	}
	details := make([]TicketDetail, 0, len(tickets))
	for i := range tickets {
		details = append(details, ticketDetail(&tickets[i]))
	}
	return details, nil
}
