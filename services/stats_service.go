package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
)

type StatsService struct {
	db  *gorm.DB
	log logger.Logger
}

type StatsServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewStatsService(opts StatsServiceOptions) *StatsService {
	return &StatsService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// AdminStats aggregates the dashboard numbers: entity counts,
// reservations per month for the current year, top rooms by booked
// nights and the average review star.
func (s *StatsService) AdminStats(now time.Time) (dto.AdminStatsResponse, error) {
	var stats dto.AdminStatsResponse

	type counter struct {
		model interface{}
		dest  *int64
	}
	counts := []counter{
		{&models.User{}, &stats.Users},
		{&models.Room{}, &stats.Rooms},
		{&models.Review{}, &stats.Reviews},
	}
	for _, cnt := range counts {
		if err := s.db.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to count entities", err)
		}
	}

	if err := s.db.Model(&models.Booking{}).
		Where("status = ?", constants.BookingStatusActive).
		Distinct("group_id").Count(&stats.ActiveBookings).Error; err != nil {
		return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to count bookings", err)
	}

	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	rows := []dto.MonthBookings{}
	if err := s.db.Model(&models.Booking{}).
		Select("to_char(created_at, 'YYYY-MM') AS month, COUNT(DISTINCT group_id) AS reservations, COUNT(*) AS nights").
		Where("created_at >= ?", yearStart).
		Group("month").Order("month").
		Scan(&rows).Error; err != nil {
		return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to aggregate monthly bookings", err)
	}

	// Every month of the year appears, zero-filled when nothing was booked.
	byMonth := make(map[string]dto.MonthBookings, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r
	}
	for m := 1; m <= 12; m++ {
		key := fmt.Sprintf("%d-%02d", now.Year(), m)
		if r, ok := byMonth[key]; ok {
			stats.BookingsPerMonth = append(stats.BookingsPerMonth, r)
		} else {
			stats.BookingsPerMonth = append(stats.BookingsPerMonth, dto.MonthBookings{Month: key})
		}
	}

	if err := s.db.Model(&models.Booking{}).
		Select("bookings.room_id, rooms.name AS room_name, COUNT(*) AS nights").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Group("bookings.room_id, rooms.name").
		Order("nights DESC").Limit(5).
		Scan(&stats.TopRooms).Error; err != nil {
		return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to aggregate top rooms", err)
	}

	if err := s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(star), 0)").
		Scan(&stats.AverageStar).Error; err != nil {
		return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to average reviews", err)
	}

	return stats, nil
}
