package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// BackupTimestampFormat is used in backup file names
	BackupTimestampFormat = "20060102-150405"

	// DefaultTimezone uses the system local timezone
	DefaultTimezone = "Local"

	// TrailingWindowDays is the number of calendar days, today included, covered by windowed metrics
	TrailingWindowDays = 7

	// SessionTickInterval drives the elapsed-time display of an in-progress session
	SessionTickInterval = time.Minute
)

// Weekday names, indexed by time.Weekday (Sunday = 0).
const (
	Sunday    = "Sunday"
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
)

// WeekdayNames maps time.Weekday to the weekday name used as a plan key.
var WeekdayNames = [7]string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
