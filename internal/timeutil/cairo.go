package timeutil

import (
	"time"
)

// Cairo is the shop's local timezone (UTC+2)
var Cairo *time.Location

func init() {
	var err error
	Cairo, err = time.LoadLocation("Africa/Cairo")
	if err != nil {
		// Fallback: create fixed zone if Africa/Cairo not available
		Cairo = time.FixedZone("EET", 2*60*60) // UTC+2
	}
}

// Now returns the current time in the shop timezone
func Now() time.Time {
	return time.Now().In(Cairo)
}

// ToLocal converts any time to the shop timezone
func ToLocal(t time.Time) time.Time {
	return t.In(Cairo)
}

// ParseLocal parses a time string in the shop timezone
func ParseLocal(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, Cairo)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatLocal formats a time in the shop timezone using the given layout
func FormatLocal(t time.Time, layout string) string {
	return t.In(Cairo).Format(layout)
}

// StartOfDay returns the start of day (00:00:00) in the shop timezone
func StartOfDay(t time.Time) time.Time {
	local := t.In(Cairo)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Cairo)
}

// EndOfDay returns the end of day (23:59:59.999...) in the shop timezone
func EndOfDay(t time.Time) time.Time {
	local := t.In(Cairo)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Cairo)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
