package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BookingSweeper settles bookings whose dates have passed.
type BookingSweeper interface {
	SweepBookings(m *melody.Melody) error
}

var bookingSweeper BookingSweeper

// SetBookingSweeper sets the implementation used by the nightly job.
func SetBookingSweeper(sweeper BookingSweeper) {
	bookingSweeper = sweeper
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Runs at midnight every day
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Running booking sweep at: %v", now)
		if bookingSweeper == nil {
			log.Printf("Error: BookingSweeper has not been set")
			return
		}
		if err := bookingSweeper.SweepBookings(m); err != nil {
			log.Printf("Error while sweeping bookings: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
