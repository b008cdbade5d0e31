package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// BookingCompleter marks past-dated bookings completed; implemented
// by the booking service.
type BookingCompleter interface {
	CompletePast(now time.Time) (int64, error)
}

// InitCronJobs schedules the nightly sweep that retires bookings
// whose last night has passed, so they drop out of conflict checks.
func InitCronJobs(c *cron.Cron, completer BookingCompleter) error {
	_, err := c.AddFunc("5 0 * * *", func() {
		n, err := completer.CompletePast(time.Now())
		if err != nil {
			log.Printf("failed to complete past bookings: %v", err)
			return
		}
		if n > 0 {
			log.Printf("marked %d booking row(s) completed", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("cron jobs initialized")
	return nil
}
