package domain

import "time"

// BlockScope discriminates how a blocked interval was declared
type BlockScope string

const (
	ScopeDay      BlockScope = "day"
	ScopeInterval BlockScope = "interval"
)

// BlockedInterval is an operator-declared window during which no departures
// may be booked, irrespective of capacity
type BlockedInterval struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Scope  BlockScope
	Reason string

	CreatedAt time.Time
}

// Overlaps reports whether the block intersects [from, to]
func (b *BlockedInterval) Overlaps(from, to time.Time) bool {
	return !b.Start.After(to) && !b.End.Before(from)
}

// CoversDay reports whether a day-scoped block covers the whole day window.
// Any such block short-circuits availability for the day.
func (b *BlockedInterval) CoversDay(dayStart, dayEnd time.Time) bool {
	return b.Scope == ScopeDay && !b.Start.After(dayStart) && !b.End.Before(dayEnd)
}
