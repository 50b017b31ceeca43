package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDate("15/09/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDayWindowUTC(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	start, end := DayWindowUTC(day)

	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestSlotInstant(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		SlotInstant(day, 600))
	assert.Equal(t,
		time.Date(2026, 9, 15, 17, 40, 0, 0, time.UTC),
		SlotInstant(day, 1060))
}

func TestFormatSlot(t *testing.T) {
	assert.Equal(t, "10:00", FormatSlot(600))
	assert.Equal(t, "10:05", FormatSlot(605))
	assert.Equal(t, "17:45", FormatSlot(1065))
	assert.Equal(t, "00:00", FormatSlot(0))
}

func TestBlockedIntervalOverlaps(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	blk := &BlockedInterval{
		Start: SlotInstant(day, 600),
		End:   SlotInstant(day, 660),
		Scope: ScopeInterval,
	}

	// Tour 10:30..10:55 starts inside the block
	assert.True(t, blk.Overlaps(SlotInstant(day, 630), SlotInstant(day, 655)))
	// Tour touching the block boundary still overlaps (inclusive ends)
	assert.True(t, blk.Overlaps(SlotInstant(day, 660), SlotInstant(day, 685)))
	// Tour entirely after the block
	assert.False(t, blk.Overlaps(SlotInstant(day, 690), SlotInstant(day, 715)))
	// Tour entirely before the block
	assert.False(t, blk.Overlaps(SlotInstant(day, 540), SlotInstant(day, 565)))
}

func TestBlockedIntervalCoversDay(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	dayStart, dayEnd := DayWindowUTC(day)

	full := &BlockedInterval{Start: dayStart, End: dayEnd, Scope: ScopeDay}
	assert.True(t, full.CoversDay(dayStart, dayEnd))

	// Interval-scoped block never counts as a full-day closure even when
	// its window spans the whole day
	interval := &BlockedInterval{Start: dayStart, End: dayEnd, Scope: ScopeInterval}
	assert.False(t, interval.CoversDay(dayStart, dayEnd))

	partial := &BlockedInterval{Start: SlotInstant(day, 600), End: SlotInstant(day, 700), Scope: ScopeDay}
	assert.False(t, partial.CoversDay(dayStart, dayEnd))
}

func TestBookingLifecyclePredicates(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.IsUnpaidHold())

	b.IsPaid = true
	assert.False(t, b.IsUnpaidHold())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())

	b.Status = StatusCompleted
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
}

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, IsSupportedLanguage("fr"))
	assert.True(t, IsSupportedLanguage("nl"))
	assert.False(t, IsSupportedLanguage("ru"))
	assert.False(t, IsSupportedLanguage(""))
}
