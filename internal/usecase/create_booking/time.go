package create_booking

import "time"

// minutesOfDayIn возвращает минуты от полуночи в указанной зоне
func minutesOfDayIn(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// isSameLocalDay проверяет, что момент и UTC-день совпадают по календарю зоны
func isSameLocalDay(now time.Time, day time.Time, loc *time.Location) bool {
	local := now.In(loc)
	y1, m1, d1 := local.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isPastLocalDay проверяет, что запрошенный день уже прошел по зоне бизнеса
func isPastLocalDay(now time.Time, day time.Time, loc *time.Location) bool {
	local := now.In(loc)
	nowDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(nowDay)
}
