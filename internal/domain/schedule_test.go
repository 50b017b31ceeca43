package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleAllowsStart(t *testing.T) {
	s := DefaultSchedule()

	cases := []struct {
		minute  int
		allowed bool
	}{
		{600, true},   // 10:00, first morning departure
		{705, true},   // 11:45, last morning departure
		{706, false},  // just past the morning window
		{720, false},  // 12:00, lunch break
		{810, true},   // 13:30, first afternoon departure
		{1065, true},  // 17:45, last afternoon departure
		{1066, false}, // past the afternoon window
		{599, false},  // before opening
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, s.AllowsStart(tc.minute), "minute %d", tc.minute)
	}
}

func TestScheduleFitsBeforeClose(t *testing.T) {
	s := DefaultSchedule()

	// 17:45 + 25 min tour = 18:10, before the 18:15 close
	assert.True(t, s.FitsBeforeClose(1065))
	// 17:55 + 25 min tour = 18:20, too late
	assert.False(t, s.FitsBeforeClose(1075))
}

func TestScheduleTripMinutes(t *testing.T) {
	s := DefaultSchedule()
	assert.Equal(t, 30, s.TripMinutes())
}

func TestAssignOffsets(t *testing.T) {
	boats := []*Boat{
		{ID: 1, Capacity: 12},
		{ID: 2, Capacity: 12},
		{ID: 3, Capacity: 10},
		{ID: 4, Capacity: 12},
	}

	slots := AssignOffsets(boats, DefaultOffsets)

	assert.Len(t, slots, 4)
	assert.Equal(t, []int{0, 5, 10, 25}, []int{
		slots[0].OffsetMinutes,
		slots[1].OffsetMinutes,
		slots[2].OffsetMinutes,
		slots[3].OffsetMinutes,
	})
	assert.Equal(t, int64(1), slots[0].Boat.ID)
	assert.Equal(t, int64(4), slots[3].Boat.ID)
}

func TestAssignOffsetsFewerBoatsThanOffsets(t *testing.T) {
	boats := []*Boat{{ID: 1}, {ID: 2}}

	slots := AssignOffsets(boats, DefaultOffsets)

	assert.Len(t, slots, 2)
	assert.Equal(t, 0, slots[0].OffsetMinutes)
	assert.Equal(t, 5, slots[1].OffsetMinutes)
}

func TestAssignOffsetsMoreBoatsThanOffsets(t *testing.T) {
	boats := []*Boat{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	slots := AssignOffsets(boats, DefaultOffsets)

	assert.Len(t, slots, 4)
}
