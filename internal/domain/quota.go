package domain

import "time"

// DailyBoatQuota caps how many boats may depart on a given day,
// independent of boat ACTIVE/MAINTENANCE status
type DailyBoatQuota struct {
	Day            time.Time // UTC-normalized day
	BoatsAvailable int       // 1..MaxDailyBoats
	Note           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
