package main

import (
	"frontrow/src/common"
	"frontrow/src/lib/mailer"
	"frontrow/src/types"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func bookingStatus(result *types.BookingResult) int {
	if result.Success {
		return http.StatusCreated
	}
	switch result.Reason {
	case types.BOOKING_UNAUTHORIZED:
		return http.StatusUnauthorized
	case types.BOOKING_INVALID_REQUEST:
		return http.StatusBadRequest
	case types.BOOKING_SEAT_CONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")
			result := common.BookSeats(userID, body.ShowtimeID, body.Seats)
			if result.Success {
				email := ctx.GetString("email")
				go sendConfirmation(result.TicketID, email)
			}
			ctx.JSON(bookingStatus(result), result)
		}).
		GET("/bookings", func(ctx *gin.Context) {
			userID := ctx.GetUint("id")
			bookings, err := common.ListUserBookings(userID)
			if err != nil {
				log.Printf("Error listing bookings for user [%d]: %s\n", userID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		})
	return g
}

func sendConfirmation(ticketID, email string) {
	detail, err := common.GetTicketDetail(ticketID)
	if err != nil {
		log.Printf("Could not load ticket [%s] for confirmation email: %s\n", ticketID, err.Error())
		return
	}
	mailer.SendBookingConfirmation(&mailer.BookingConfirmation{
		Email:      email,
		Name:       detail.BookedBy,
		MovieTitle: detail.MovieTitle,
		Showtime:   detail.Showtime,
		Seats:      strings.Split(detail.SeatDetails, ", "),
		TotalPrice: detail.TotalPrice,
	})
}
