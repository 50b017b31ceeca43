package domain

// BoatStatus represents the operational status of a boat
type BoatStatus string

const (
	BoatStatusActive      BoatStatus = "ACTIVE"
	BoatStatusMaintenance BoatStatus = "MAINTENANCE"
)

// Boat represents one boat of the fleet
type Boat struct {
	ID       int64
	Name     string
	Capacity int
	Status   BoatStatus
}

// IsActive returns true if the boat can take departures
func (b *Boat) IsActive() bool {
	return b.Status == BoatStatusActive
}

// BoatSlot binds a boat to its departure offset within the repeating cycle.
// The binding is computed once per request from the stable fleet ordering
// (id ascending) so that the calculator never re-derives an index from
// wall-clock arithmetic.
type BoatSlot struct {
	Boat          *Boat
	OffsetMinutes int
}

// AssignOffsets pairs boats with the configured cycle offsets positionally.
// Boats must already be in stable order (id ascending). When fewer boats than
// offsets are available, the latest offsets are left unused; extra boats
// beyond the offset list never depart.
func AssignOffsets(boats []*Boat, offsets []int) []BoatSlot {
	n := len(boats)
	if len(offsets) < n {
		n = len(offsets)
	}

	slots := make([]BoatSlot, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, BoatSlot{
			Boat:          boats[i],
			OffsetMinutes: offsets[i],
		})
	}
	return slots
}
