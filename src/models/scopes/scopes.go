package scopes

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func WithShowtime(id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("showtime_id = ?", id)
	}
}

func WithSeatIDs(ids ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("seat_id IN (?)", ids)
	}
}

func WithUser(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", id)
	}
}
