package validator

import (
	"regexp"
	"time"

	"stayhub/errors"
	"stayhub/models"
)

const dateLayout = "2006-01-02"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email must not be empty", nil)
	}
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}
	return nil
}

// ValidateBookingDates rejects malformed or past dates. today is the
// caller's idea of the current day so the check is deterministic.
func ValidateBookingDates(dates []string, today time.Time) error {
	if len(dates) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "at least one date is required", nil)
	}
	todayStr := today.Format(dateLayout)
	for _, d := range dates {
		parsed, err := time.Parse(dateLayout, d)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "invalid date: "+d, err)
		}
		if parsed.Format(dateLayout) < todayStr {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "date is in the past: "+d, nil)
		}
	}
	return nil
}

// ValidateReview checks the mutable review fields.
func ValidateReview(review *models.Review) error {
	if review.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room id must not be empty", nil)
	}
	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "star must be between 1 and 5", nil)
	}
	if review.Comment == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "comment must not be empty", nil)
	}
	return nil
}

// ValidateRoom checks the admin-supplied room fields.
func ValidateRoom(room *models.Room) error {
	if room.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room name must not be empty", nil)
	}
	if room.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "room price must be positive", nil)
	}
	return nil
}
