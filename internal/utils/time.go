package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// DateString formats t as an ISO calendar date in t's own location.
func DateString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ShiftDate returns the ISO date that is days calendar days away from now's date.
// Calendar arithmetic is used so DST transitions never skip or repeat a day.
func ShiftDate(now time.Time, days int) string {
	y, m, d := now.Date()
	return DateString(time.Date(y, m, d+days, 0, 0, 0, 0, now.Location()))
}

// ValidateDateFormat checks if the string is a valid YYYY-MM-DD date.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
