package common

import (
	"context"
	"encoding/json"
	"frontrow/src/db"
	"frontrow/src/lib"
	"frontrow/src/models"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const metricsCacheKey = "admin::dashboard:metrics"

type DashboardMetrics struct {
	Tickets int64  `json:"tickets"`
	Users   int64  `json:"users"`
	Movies  int64  `json:"movies"`
	Revenue string `json:"revenue"`
}

// GetDashboardMetrics aggregates the admin dashboard counters plus the
// all-time revenue sum. Revenue stays decimal end to end and is
// serialized as a decimal string.
func GetDashboardMetrics() (*DashboardMetrics, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		if val := rd.Get(context.Background(), metricsCacheKey).Val(); val != "" {
			var cached DashboardMetrics
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var metrics DashboardMetrics
	var revenue decimal.Decimal
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Ticket{}).Count(&metrics.Tickets).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Count(&metrics.Users).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Movie{}).Count(&metrics.Movies).Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Ticket{}).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&revenue).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.Revenue = revenue.StringFixed(2)

	if rd != nil {
		if b, err := json.Marshal(&metrics); err == nil {
			if err := rd.Set(context.Background(), metricsCacheKey, string(b), 30*time.Second).Err(); err != nil {
				log.Printf("[redis] Error caching dashboard metrics: %s\n", err.Error())
			}
		}
	}
	return &metrics, nil
}
