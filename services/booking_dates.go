package services

import (
	"sort"
	"time"

	"stayhub/errors"
)

// DateLayout is the canonical wire and storage format for booking
// dates. ISO dates sort lexicographically, so string comparison below
// is date comparison.
const DateLayout = "2006-01-02"

// ParseDate parses a booking date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid date: "+s, err)
	}
	return t, nil
}

// ExpandRange expands [checkIn, checkOut) into per-day dates. The
// checkout day itself stays free for the next guest.
func ExpandRange(checkIn, checkOut string) ([]string, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return nil, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return nil, err
	}
	if !out.After(in) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "checkOut must be after checkIn", nil)
	}

	var dates []string
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// NormalizeDates validates, dedupes and sorts an explicit date set.
func NormalizeDates(dates []string) ([]string, error) {
	if len(dates) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "at least one date is required", nil)
	}

	seen := make(map[string]bool, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, err := ParseDate(d); err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

// RangesOverlap tests two half-open intervals [a1,a2) and [b1,b2).
func RangesOverlap(a1, a2, b1, b2 string) bool {
	return a1 < b2 && b1 < a2
}
