package mailer

import (
	"fmt"
	"frontrow/src/lib"
	"log"
	"os"
	"strings"
)

type BookingConfirmation struct {
	Email      string
	Name       string
	MovieTitle string
	Showtime   string
	Seats      []string
	TotalPrice string
}

// SendBookingConfirmation emails the booked seats to the user. Delivery
// is best effort and never affects the booking outcome.
func SendBookingConfirmation(input *BookingConfirmation) error {
	from := os.Getenv("SMTP_FROM")
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s (%s) is confirmed.\nSeats: %s\nTotal: %s\n\nEnjoy the show!",
		input.Name,
		input.MovieTitle,
		input.Showtime,
		strings.Join(input.Seats, ", "),
		input.TotalPrice,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: "FrontRow",
		To:       []string{input.Email},
		Subject:  fmt.Sprintf("Booking confirmed: %s", input.MovieTitle),
		Body:     body,
	})
	if err != nil {
		log.Printf("Failed to send booking confirmation to %s: %s\n", input.Email, err.Error())
	}
	return err
}
