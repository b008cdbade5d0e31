package services

import (
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
)

// Conflict describes why a requested date cannot be booked.
type Conflict struct {
	Date string
	Own  bool // the requester already holds this (room, date) themselves
}

// BookingService owns the no-double-booking invariant: for a given
// room no two active bookings may claim the same calendar date.
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// findConflict returns the first requested date already held by an
// active booking, scanning requested in order. Rows of excludeGroup
// are ignored so a group can be re-checked against everyone but
// itself when it moves.
func findConflict(requested []string, existing []models.Booking, email, excludeGroup string) *Conflict {
	held := make(map[string]models.Booking, len(existing))
	for _, b := range existing {
		if b.Status != constants.BookingStatusActive {
			continue
		}
		if excludeGroup != "" && b.GroupID == excludeGroup {
			continue
		}
		if _, ok := held[b.Date]; !ok {
			held[b.Date] = b
		}
	}

	for _, d := range requested {
		if b, ok := held[d]; ok {
			return &Conflict{Date: d, Own: b.Email == email}
		}
	}
	return nil
}

func conflictError(c *Conflict) *errors.AppError {
	if c.Own {
		return errors.NewAppError(errors.ErrCodeDuplicateBooking, "already booked by you on "+c.Date, nil)
	}
	return errors.NewAppError(errors.ErrCodeBookingConflict, "room unavailable on "+c.Date, nil)
}

// Check runs the conflict check for a requested room/date set without
// committing anything. excludeGroup is empty for new bookings.
func (s *BookingService) Check(roomID uint, email string, dates []string, excludeGroup string) error {
	var existing []models.Booking
	if err := s.db.Where("room_id = ? AND date IN ? AND status = ?",
		roomID, dates, constants.BookingStatusActive).Find(&existing).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to load bookings", err)
	}

	if c := findConflict(dates, existing, email, excludeGroup); c != nil {
		return conflictError(c)
	}
	return nil
}

// CreateGroup checks and persists one logical reservation as a unit.
// Every row is written in one transaction, and the (room_id, date)
// unique index turns a lost race with a concurrent request into the
// same conflict error the check would have produced.
func (s *BookingService) CreateGroup(user models.User, room models.Room, dates []string, checkIn, checkOut string) ([]models.Booking, error) {
	if err := s.Check(room.ID, user.Email, dates, ""); err != nil {
		return nil, err
	}

	groupID := uuid.NewString()
	bookings := make([]models.Booking, 0, len(dates))
	for _, d := range dates {
		bookings = append(bookings, models.Booking{
			GroupID:  groupID,
			RoomID:   room.ID,
			UserID:   user.ID,
			Email:    user.Email,
			Date:     d,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Price:    room.Price,
			Status:   constants.BookingStatusActive,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&bookings).Error
	})
	if err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Info("booking race lost for room %d, group %s", room.ID, groupID)
			return nil, errors.NewAppError(errors.ErrCodeBookingConflict, "room unavailable on one of the requested dates", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
	}

	s.log.Info("booking group %s created: room %d, %d night(s)", groupID, room.ID, len(bookings))
	return bookings, nil
}

// Group loads every row of a booking group.
func (s *BookingService) Group(groupID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Preload("Room").Where("group_id = ?", groupID).
		Order("date").Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking group", err)
	}
	if len(bookings) == 0 {
		return nil, errors.ErrBookingNotFound
	}
	return bookings, nil
}

// GroupByBookingID resolves any row id to its whole group.
func (s *BookingService) GroupByBookingID(id uint) ([]models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
	}
	return s.Group(booking.GroupID)
}

// MoveGroup re-dates a whole group. The conflict check excludes the
// group's own rows, then the swap is delete-old + insert-new in one
// transaction so no partial state survives a failure.
func (s *BookingService) MoveGroup(group []models.Booking, dates []string, checkIn, checkOut string) ([]models.Booking, error) {
	first := group[0]

	if err := s.Check(first.RoomID, first.Email, dates, first.GroupID); err != nil {
		return nil, err
	}

	replacement := make([]models.Booking, 0, len(dates))
	for _, d := range dates {
		replacement = append(replacement, models.Booking{
			GroupID:  first.GroupID,
			RoomID:   first.RoomID,
			UserID:   first.UserID,
			Email:    first.Email,
			Date:     d,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Price:    first.Price,
			Status:   constants.BookingStatusActive,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", first.GroupID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Create(&replacement).Error
	})
	if err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.NewAppError(errors.ErrCodeBookingConflict, "room unavailable on one of the requested dates", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update booking", err)
	}

	s.log.Info("booking group %s moved to %s..%s", first.GroupID, dates[0], dates[len(dates)-1])
	return replacement, nil
}

// CancelGroup removes every row of one group and nothing else.
func (s *BookingService) CancelGroup(groupID string) error {
	res := s.db.Where("group_id = ?", groupID).Delete(&models.Booking{})
	if res.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to cancel booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.ErrBookingNotFound
	}
	s.log.Info("booking group %s cancelled (%d row(s))", groupID, res.RowsAffected)
	return nil
}

// BookedDates lists the active dates for a room, for date pickers.
func (s *BookingService) BookedDates(roomID uint) ([]string, error) {
	var dates []string
	if err := s.db.Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", roomID, constants.BookingStatusActive).
		Order("date").Pluck("date", &dates).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load booked dates", err)
	}
	return dates, nil
}

// ListByEmail returns a user's bookings grouped into reservations,
// newest first.
func (s *BookingService) ListByEmail(email string) ([][]models.Booking, error) {
	var rows []models.Booking
	if err := s.db.Preload("Room").Where("email = ?", email).
		Order("created_at DESC, date").Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load bookings", err)
	}

	index := make(map[string]int)
	var groups [][]models.Booking
	for _, b := range rows {
		i, ok := index[b.GroupID]
		if !ok {
			i = len(groups)
			index[b.GroupID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], b)
	}
	return groups, nil
}

// HasActiveForRoom reports whether a room still has active bookings;
// a room cannot be deleted while it does.
func (s *BookingService) HasActiveForRoom(roomID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", roomID, constants.BookingStatusActive).
		Count(&count).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "failed to count bookings", err)
	}
	return count > 0, nil
}

// CompletePast marks active rows dated before today as completed.
// Run nightly from the cron job.
func (s *BookingService) CompletePast(now time.Time) (int64, error) {
	today := now.Format(DateLayout)
	res := s.db.Model(&models.Booking{}).
		Where("status = ? AND date < ?", constants.BookingStatusActive, today).
		Update("status", constants.BookingStatusCompleted)
	if res.Error != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to complete past bookings", res.Error)
	}
	return res.RowsAffected, nil
}
