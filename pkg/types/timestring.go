package types

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// Used for departure slots instead of time.Time to avoid timezone drift
// between stored instants and the times shown to visitors.
type TimeString string

var timeStringPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NewTimeString creates a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes since midnight to a TimeString
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("minutes out of range: %d", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что строка имеет корректный формат HH:MM
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}
	return nil
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parts := strings.SplitN(string(t), ":", 2)
	hh, _ := strconv.Atoi(parts[0])
	mm, _ := strconv.Atoi(parts[1])
	return hh*60 + mm, nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на n минут вперед.
// Ошибка, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes + n)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer for SQL storage
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		// Postgres может вернуть время с секундами ("10:00:00")
		*t = TimeString(trimSeconds(v))
		return nil
	case []byte:
		*t = TimeString(trimSeconds(string(v)))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func trimSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
