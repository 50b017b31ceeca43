package domain

import (
	"errors"
	"fmt"
	"time"
)

// AvailabilityResult is the derived, non-persisted answer of the calculator.
// Regenerated per request and cached transiently.
type AvailabilityResult struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"` // "HH:MM", ascending, deduplicated
	BlockedReason  *string  `json:"blockedReason,omitempty"`
}

// DayWindowUTC returns the floating UTC day window for a date:
// [YYYY-MM-DDT00:00:00.000Z, YYYY-MM-DDT23:59:59.999Z].
// Используется для выборок за день, чтобы избежать дрейфа между серверной
// зоной и датой, которую видит посетитель.
func DayWindowUTC(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// NormalizeDay truncates a timestamp to its UTC day
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ErrInvalidDate is returned for dates not matching YYYY-MM-DD
var ErrInvalidDate = errors.New("domain: invalid date, expected YYYY-MM-DD")

// ParseDate parses a YYYY-MM-DD string into a UTC-normalized day
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return NormalizeDay(t), nil
}

// SlotInstant returns the instant of a departure at the given minute of the
// day within the floating UTC window
func SlotInstant(day time.Time, minutes int) time.Time {
	start, _ := DayWindowUTC(day)
	return start.Add(time.Duration(minutes) * time.Minute)
}

// FormatSlot renders minutes from midnight as "HH:MM"
func FormatSlot(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
