package models

import (
	"strings"

	"github.com/julianstephens/liftlog/internal/constants"
)

// ParseWeekday resolves a weekday name or common abbreviation to its canonical name.
func ParseWeekday(s string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", false
	}
	for _, name := range constants.WeekdayNames {
		lower := strings.ToLower(name)
		if key == lower || (len(key) >= 3 && strings.HasPrefix(lower, key)) {
			return name, true
		}
	}
	return "", false
}

// IsWeekday reports whether s is exactly one of the canonical weekday names.
func IsWeekday(s string) bool {
	for _, name := range constants.WeekdayNames {
		if s == name {
			return true
		}
	}
	return false
}
