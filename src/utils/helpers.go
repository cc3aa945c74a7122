package utils

import (
	"fmt"
	"frontrow/src/config"
	"frontrow/src/db"
	"frontrow/src/models"
	"frontrow/src/types"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// GenerateJWT mints the first-party session token carried by the UI
// after the identity provider has vouched for the user.
func GenerateJWT(email string, userID uint, role types.Role) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Username: email,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// RowLabel converts a zero-based row index to the letter printed on the
// physical seat map.
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	return string(rune('A' + row))
}

// CreateMovie persists a movie together with its nested showtimes and
// seat prices in one transaction.
func CreateMovie(params *types.CreateMovieRequestBody) (uuid.UUID, error) {
	releaseDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.ReleaseDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid release date: %s", params.ReleaseDate)
	}
	movie := models.Movie{
		Title:       params.Title,
		Language:    params.Language,
		Genre:       types.StringArray(params.Genre),
		Cast:        types.StringArray(params.Cast),
		Director:    params.Director,
		Synopsis:    params.Synopsis,
		Duration:    params.Duration,
		Rating:      params.Rating,
		Votes:       params.Votes,
		ReleaseDate: releaseDate,
		Poster:      params.Poster,
		Backdrop:    params.Backdrop,
	}
	for _, st := range params.Showtimes {
		showtime := models.Showtime{
			Time:    st.Time,
			Theater: st.Theater,
			Filling: st.Filling,
			Seats:   st.Seats,
		}
		for _, sp := range st.SeatPrices {
			showtime.SeatPrices = append(showtime.SeatPrices, models.SeatPrice{
				SeatType: sp.SeatType,
				Price:    sp.Price,
			})
		}
		movie.Showtimes = append(movie.Showtimes, showtime)
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movie).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating movie [%s]: %s\n", params.Title, err.Error())
		return uuid.Nil, err
	}
	return movie.ID, nil
}

// UpdateMovie updates the scalar fields of a movie. Showtimes are
// managed through their own endpoints so ticket history is never
// clobbered by an edit.
func UpdateMovie(id string, params *types.UpdateMovieRequestBody) error {
	mid, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	releaseDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.ReleaseDate)
	if err != nil {
		return fmt.Errorf("invalid release date: %s", params.ReleaseDate)
	}
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.Select("id").Where("id = ?", mid).First(&movie).Error; err != nil {
			return err
		}
		return tx.
			Model(&models.Movie{}).
			Where("id = ?", mid).
			Updates(map[string]any{
				"title":        params.Title,
				"language":     params.Language,
				"genre":        types.StringArray(params.Genre),
				"cast":         types.StringArray(params.Cast),
				"director":     params.Director,
				"synopsis":     params.Synopsis,
				"duration":     params.Duration,
				"rating":       params.Rating,
				"votes":        params.Votes,
				"release_date": releaseDate,
				"poster":       params.Poster,
				"backdrop":     params.Backdrop,
			}).
			Error
	})
}

// AddShowtime attaches a new showtime with its seat prices to a movie.
func AddShowtime(movieID string, params *types.CreateShowtimeRequestBody) (uuid.UUID, error) {
	mid, err := uuid.Parse(movieID)
	if err != nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	showtime := models.Showtime{
		MovieID: mid,
		Time:    params.Time,
		Theater: params.Theater,
		Filling: params.Filling,
		Seats:   params.Seats,
	}
	for _, sp := range params.SeatPrices {
		showtime.SeatPrices = append(showtime.SeatPrices, models.SeatPrice{
			SeatType: sp.SeatType,
			Price:    sp.Price,
		})
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.Select("id").Where("id = ?", mid).First(&movie).Error; err != nil {
			return err
		}
		if err := tx.Create(&showtime).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return showtime.ID, nil
}

// DeleteShowtime removes a showtime and its dependent rows in the same
// explicit order the movie cascade uses.
func DeleteShowtime(id string) error {
	stID, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var showtime models.Showtime
		if err := tx.Select("id").Where("id = ?", stID).First(&showtime).Error; err != nil {
			return err
		}
		var ticketIDs []uuid.UUID
		if err := tx.
			Model(&models.Ticket{}).
			Where("showtime_id = ?", stID).
			Pluck("id", &ticketIDs).
			Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("showtime_id = ?", stID).Delete(&models.BookedSeat{}).Error; err != nil {
			return err
		}
		if len(ticketIDs) > 0 {
			if err := tx.Unscoped().Where("ticket_id IN (?)", ticketIDs).Delete(&models.TicketSeat{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN (?)", ticketIDs).Delete(&models.Ticket{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("showtime_id = ?", stID).Delete(&models.SeatPrice{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("id = ?", stID).Delete(&models.Showtime{}).Error; err != nil {
			return err
		}
		return nil
	})
}
