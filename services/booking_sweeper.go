package services

import (
	"fmt"
	"time"

	"travelapp/config"
	"travelapp/constants"
	"travelapp/models"
	"travelapp/utils"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingSweeper settles bookings whose dates have passed: confirmed stays
// past checkout become completed, pending requests past check-in are
// cancelled.
type BookingSweeper struct {
	db *gorm.DB
}

func NewBookingSweeper(db *gorm.DB) *BookingSweeper {
	return &BookingSweeper{db: db}
}

type sweepSummary struct {
	Completed int64  `json:"completed"`
	Cancelled int64  `json:"cancelled"`
	SweptAt   string `json:"sweptAt"`
}

func (s *BookingSweeper) SweepBookings(m *melody.Melody) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	completed := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date <= ?", constants.BookingStatusConfirmed, today).
		Update("status", constants.BookingStatusCompleted)
	if completed.Error != nil {
		return fmt.Errorf("completing past bookings: %w", completed.Error)
	}

	cancelled := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_in_date < ?", constants.BookingStatusPending, today).
		Update("status", constants.BookingStatusCancelled)
	if cancelled.Error != nil {
		return fmt.Errorf("cancelling stale bookings: %w", cancelled.Error)
	}

	if completed.RowsAffected > 0 || cancelled.RowsAffected > 0 {
		if config.RedisClient != nil {
			if err := DeleteByPattern(config.Ctx, config.RedisClient, "bookings:all:*"); err != nil {
				utils.LogError("Failed to invalidate booking caches after sweep: %v", err)
			}
		}
	}

	utils.LogInfo("Booking sweep done: %d completed, %d cancelled", completed.RowsAffected, cancelled.RowsAffected)

	if m != nil {
		payload, err := json.Marshal(sweepSummary{
			Completed: completed.RowsAffected,
			Cancelled: cancelled.RowsAffected,
			SweptAt:   now.Format(time.RFC3339),
		})
		if err == nil {
			m.Broadcast(payload)
		}
	}

	return nil
}
