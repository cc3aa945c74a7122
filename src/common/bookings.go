package common

import (
	"context"
	"errors"
	"fmt"
	"frontrow/src/db"
	"frontrow/src/lib"
	"frontrow/src/models"
	"frontrow/src/models/scopes"
	"frontrow/src/types"
	"frontrow/src/utils"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errSeatConflict = errors.New("seat conflict")

// TotalPrice sums the unit prices of the selected seats with exact
// decimal arithmetic.
func TotalPrice(seats []types.SelectedSeat) decimal.Decimal {
	total := decimal.Zero
	for _, seat := range seats {
		total = total.Add(seat.Price)
	}
	return total
}

// BookSeats claims every requested seat for the showtime or none of
// them. The conflict check and all writes run in one transaction; the
// unique index on (showtime_id, seat_id) catches the race the check can
// miss, so at most one concurrent caller wins any given seat.
func BookSeats(userID uint, showtimeID string, seats []types.SelectedSeat) *types.BookingResult {
	if userID == 0 {
		return &types.BookingResult{
			Success: false,
			Reason:  types.BOOKING_UNAUTHORIZED,
			Message: "Unauthorized! Please log in to book tickets.",
		}
	}
	if showtimeID == "" {
		return &types.BookingResult{
			Success: false,
			Reason:  types.BOOKING_INVALID_REQUEST,
			Message: "Showtime ID missing. Cannot proceed with booking.",
		}
	}
	if len(seats) == 0 {
		return &types.BookingResult{
			Success: false,
			Reason:  types.BOOKING_INVALID_REQUEST,
			Message: "No seats were selected for booking.",
		}
	}
	stID, err := uuid.Parse(showtimeID)
	if err != nil {
		return &types.BookingResult{
			Success: false,
			Reason:  types.BOOKING_INVALID_REQUEST,
			Message: "Showtime ID is not valid.",
		}
	}

	seatIDs := make([]string, 0, len(seats))
	for _, seat := range seats {
		seatIDs = append(seatIDs, seat.ID)
	}
	totalPrice := TotalPrice(seats)

	var ticketID uuid.UUID
	var conflicting []string
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.
			Model(&models.BookedSeat{}).
			Scopes(scopes.WithShowtime(stID), scopes.WithSeatIDs(seatIDs...)).
			Pluck("seat_id", &existing).
			Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			conflicting = existing
			return errSeatConflict
		}

		ticket := models.Ticket{
			UserID:     userID,
			ShowtimeID: stID,
			TotalPrice: totalPrice,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		ticketSeats := make([]models.TicketSeat, 0, len(seats))
		bookedSeats := make([]models.BookedSeat, 0, len(seats))
		for _, seat := range seats {
			ticketSeats = append(ticketSeats, models.TicketSeat{
				TicketID: ticket.ID,
				SeatID:   seat.ID,
				Row:      utils.RowLabel(seat.Row),
				Seat:     seat.Seat,
				Type:     seat.Type,
				Price:    seat.Price,
			})
			bookedSeats = append(bookedSeats, models.BookedSeat{
				ShowtimeID: stID,
				SeatID:     seat.ID,
				TicketID:   ticket.ID,
			})
		}
		if err := tx.Create(&ticketSeats).Error; err != nil {
			return err
		}
		if err := tx.Create(&bookedSeats).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent transaction won the race after our check.
				conflicting = seatIDs
				return errSeatConflict
			}
			return err
		}
		ticketID = ticket.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, errSeatConflict) {
			return &types.BookingResult{
				Success:          false,
				Reason:           types.BOOKING_SEAT_CONFLICT,
				ConflictingSeats: conflicting,
				Message: fmt.Sprintf(
					"The following seats were just booked by someone else: %s. Please select new seats.",
					strings.Join(conflicting, ", "),
				),
			}
		}
		log.Printf("Booking failed for showtime [%s]: %s\n", showtimeID, err.Error())
		return &types.BookingResult{
			Success: false,
			Reason:  types.BOOKING_PERSISTENCE,
			Message: "Booking failed, please try again.",
		}
	}

	if rd := lib.GetRedisClient(); rd != nil {
		go rd.Del(context.Background(), seatStateCacheKey(stID))
	}

	return &types.BookingResult{
		Success:  true,
		TicketID: ticketID.String(),
		Message:  fmt.Sprintf("Successfully booked %d ticket(s)!", len(seats)),
	}
}

func seatStateCacheKey(showtimeID uuid.UUID) string {
	return fmt.Sprintf("showtime::%s:booked_seats", showtimeID)
}

// ListBookedSeats returns the claimed seat identifiers for a showtime.
// A showtime with no bookings yields an empty set, not an error. The
// redis set is consulted first; a miss falls through to the database
// and repopulates the cache.
func ListBookedSeats(showtimeID string) ([]string, error) {
	stID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime id [%s]", showtimeID)
	}
	if rd := lib.GetRedisClient(); rd != nil {
		cached, err := rd.SMembers(context.Background(), seatStateCacheKey(stID)).Result()
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
	}
	seatIDs := []string{}
	db := db.GetDb()
	if err := db.
		Model(&models.BookedSeat{}).
		Scopes(scopes.WithShowtime(stID)).
		Pluck("seat_id", &seatIDs).
		Error; err != nil {
		return nil, err
	}
	if rd := lib.GetRedisClient(); rd != nil && len(seatIDs) > 0 {
		go func() {
			members := make([]any, 0, len(seatIDs))
			for _, id := range seatIDs {
				members = append(members, id)
			}
			rd.SAdd(context.Background(), seatStateCacheKey(stID), members...)
			rd.Expire(context.Background(), seatStateCacheKey(stID), 30*time.Second)
		}()
	}
	return seatIDs, nil
}
