package common

import (
	"frontrow/src/config"
	"frontrow/src/db"
	"frontrow/src/models"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FillLabel maps an occupancy ratio to the qualitative label shown on
// showtime cards. Cosmetic only; booking never consults it.
func FillLabel(booked, capacity uint) string {
	if capacity == 0 {
		return config.FILLING_LOW
	}
	ratio := float64(booked) / float64(capacity)
	switch {
	case ratio >= 0.75:
		return config.FILLING_ALMOST
	case ratio >= 0.40:
		return config.FILLING_FAST
	default:
		return config.FILLING_LOW
	}
}

// RefreshFillLevels recomputes every showtime's fill label from the
// booked-seat ledger. Runs on the scheduler, overwriting whatever label
// the admin seeded.
func RefreshFillLevels() {
	type seatCount struct {
		ShowtimeID uuid.UUID
		Booked     uint
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var counts []seatCount
		if err := tx.
			Model(&models.BookedSeat{}).
			Select("showtime_id, COUNT(id) AS booked").
			Group("showtime_id").
			Find(&counts).
			Error; err != nil {
			return err
		}
		byShowtime := make(map[uuid.UUID]uint, len(counts))
		for _, c := range counts {
			byShowtime[c.ShowtimeID] = c.Booked
		}
		var showtimes []models.Showtime
		if err := tx.
			Model(&models.Showtime{}).
			Select("id", "seats", "filling").
			Find(&showtimes).
			Error; err != nil {
			return err
		}
		for _, st := range showtimes {
			label := FillLabel(byShowtime[st.ID], st.Seats)
			if label == st.Filling {
				continue
			}
			if err := tx.
				Model(&models.Showtime{}).
				Where("id = ?", st.ID).
				Update("filling", label).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error refreshing fill levels: %s\n", err.Error())
	}
}
