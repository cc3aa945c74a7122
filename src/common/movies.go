package common

import (
	"frontrow/src/db"
	"frontrow/src/models"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovieListResult struct {
	Movies      []models.Movie `json:"movies"`
	TotalCount  int64          `json:"totalCount"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"limit"`
}

// TotalPages computes the page count for a listing.
func TotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(totalCount) / limit
	if int(totalCount)%limit != 0 {
		pages++
	}
	return pages
}

// ListMovies searches by case-insensitive title substring, optionally
// narrowed to one language, newest release first.
func ListMovies(search, language string, page, limit int) (*MovieListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	filters := func(db *gorm.DB) *gorm.DB {
		if search != "" {
			db = db.Where("title ILIKE ?", "%"+search+"%")
		}
		if language != "" {
			db = db.Where("language = ?", language)
		}
		return db
	}
	var movies []models.Movie
	var totalCount int64
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Movie{}).Scopes(filters).Count(&totalCount).Error; err != nil {
			return err
		}
		err := tx.
			Model(&models.Movie{}).
			Scopes(filters).
			Preload("Showtimes", func(db *gorm.DB) *gorm.DB {
				return db.Order("showtimes.time asc")
			}).
			Preload("Showtimes.SeatPrices").
			Order("release_date desc").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&movies).
			Error
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &MovieListResult{
		Movies:      movies,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, limit),
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

// ListLanguages returns the distinct movie languages for the filter bar.
func ListLanguages() ([]string, error) {
	languages := []string{}
	db := db.GetDb()
	err := db.
		Model(&models.Movie{}).
		Distinct("language").
		Order("language asc").
		Pluck("language", &languages).
		Error
	if err != nil {
		return nil, err
	}
	return languages, nil
}

func GetMovie(id string) (*models.Movie, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var movie models.Movie
	db := db.GetDb()
	err = db.
		Model(&models.Movie{}).
		Where("id = ?", mid).
		Preload("Showtimes", func(db *gorm.DB) *gorm.DB {
			return db.Order("showtimes.time asc")
		}).
		Preload("Showtimes.SeatPrices").
		First(&movie).
		Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// DeleteMovieCascade removes a movie and everything hanging off it in a
// defined order inside one transaction: booked seats, ticket seats,
// tickets, seat prices, showtimes, then the movie itself. No orphaned
// ticket may reference a vanished showtime afterwards.
func DeleteMovieCascade(id string) error {
	mid, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.Select("id").Where("id = ?", mid).First(&movie).Error; err != nil {
			return err
		}
		var showtimeIDs []uuid.UUID
		if err := tx.
			Model(&models.Showtime{}).
			Where("movie_id = ?", mid).
			Pluck("id", &showtimeIDs).
			Error; err != nil {
			return err
		}
		if len(showtimeIDs) > 0 {
			var ticketIDs []uuid.UUID
			if err := tx.
				Model(&models.Ticket{}).
				Where("showtime_id IN (?)", showtimeIDs).
				Pluck("id", &ticketIDs).
				Error; err != nil {
				return err
			}
			if err := tx.Unscoped().
				Where("showtime_id IN (?)", showtimeIDs).
				Delete(&models.BookedSeat{}).
				Error; err != nil {
				return err
			}
			if len(ticketIDs) > 0 {
				if err := tx.Unscoped().
					Where("ticket_id IN (?)", ticketIDs).
					Delete(&models.TicketSeat{}).
					Error; err != nil {
					return err
				}
				if err := tx.Unscoped().
					Where("id IN (?)", ticketIDs).
					Delete(&models.Ticket{}).
					Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().
				Where("showtime_id IN (?)", showtimeIDs).
				Delete(&models.SeatPrice{}).
				Error; err != nil {
				return err
			}
			if err := tx.Unscoped().
				Where("id IN (?)", showtimeIDs).
				Delete(&models.Showtime{}).
				Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("id = ?", mid).Delete(&models.Movie{}).Error; err != nil {
			return err
		}
		log.Printf("Deleted movie [%s] with %d showtime(s)\n", mid, len(showtimeIDs))
		return nil
	})
}
