package domain

// TimeWindow is an inclusive range of allowed departure start times,
// in minutes from midnight
type TimeWindow struct {
	StartMinutes int
	EndMinutes   int
}

// Contains reports whether a departure at the given minute is inside the window
func (w TimeWindow) Contains(minutes int) bool {
	return minutes >= w.StartMinutes && minutes <= w.EndMinutes
}

// Schedule describes the daily departure pattern of the fleet.
// Departures recur on a fixed cycle during operating hours; within each cycle
// every active boat departs once, at cycleStart + its offset.
type Schedule struct {
	CycleMinutes        int
	Offsets             []int // ascending, one per boat position
	Windows             []TimeWindow
	OpenMinutes         int // first cycle start
	CloseMinutes        int // no trip may end after this
	TourDurationMinutes int
	BufferMinutes       int
	MinBookingDelay     int // minutes, applies when the requested day is today
}

// DefaultSchedule returns the production departure pattern
func DefaultSchedule() Schedule {
	return Schedule{
		CycleMinutes: DefaultCycleMinutes,
		Offsets:      DefaultOffsets,
		Windows: []TimeWindow{
			{StartMinutes: MorningStartMinutes, EndMinutes: MorningEndMinutes},
			{StartMinutes: AfternoonStartMinutes, EndMinutes: AfternoonEndMinutes},
		},
		OpenMinutes:         DefaultOpenMinutes,
		CloseMinutes:        DefaultCloseMinutes,
		TourDurationMinutes: DefaultTourDurationMinutes,
		BufferMinutes:       DefaultBufferMinutes,
		MinBookingDelay:     MinBookingDelayMinutes,
	}
}

// AllowsStart reports whether a departure may start at the given minute
func (s Schedule) AllowsStart(minutes int) bool {
	for _, w := range s.Windows {
		if w.Contains(minutes) {
			return true
		}
	}
	return false
}

// FitsBeforeClose reports whether a tour starting at the given minute
// ends before closing time
func (s Schedule) FitsBeforeClose(minutes int) bool {
	return minutes+s.TourDurationMinutes <= s.CloseMinutes
}

// TripMinutes returns the full occupation window of one departure,
// tour duration plus turnaround buffer
func (s Schedule) TripMinutes() int {
	return s.TourDurationMinutes + s.BufferMinutes
}
