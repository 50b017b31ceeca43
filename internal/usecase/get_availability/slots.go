package get_availability

import (
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// candidateMinutes генерирует стартовые минуты всех потенциальных отправлений
// дня. Цикл повторяется от открытия, внутри цикла каждая лодка отходит на
// своем смещении. Кандидат проходит, если старт попадает в рабочее окно и
// тур успевает закончиться до закрытия.
// Смещения уникальны, поэтому минута однозначно определяет лодку.
func candidateMinutes(schedule domain.Schedule, boatSlots []domain.BoatSlot) map[int]domain.BoatSlot {
	candidates := make(map[int]domain.BoatSlot)

	for cycleStart := schedule.OpenMinutes; cycleStart <= schedule.CloseMinutes; cycleStart += schedule.CycleMinutes {
		for _, bs := range boatSlots {
			minute := cycleStart + bs.OffsetMinutes
			if !schedule.AllowsStart(minute) {
				continue
			}
			if !schedule.FitsBeforeClose(minute) {
				continue
			}
			candidates[minute] = bs
		}
	}

	return candidates
}

// boatEligible проверяет, может ли лодка принять группу на отправлении.
// Правила совместного использования лодки:
//   - бронирование другой минуты, чье окно (тур + буфер) пересекает наше,
//     исключает лодку целиком;
//   - бронирования той же минуты делят лодку, только если язык совпадает
//     и оставшихся мест хватает на всю группу.
func boatEligible(
	bs domain.BoatSlot,
	start time.Time,
	tripEnd time.Time,
	language string,
	partySize int,
	bookings []*domain.Booking,
) bool {
	seatsTaken := 0

	for _, b := range bookings {
		if b.BoatID != bs.Boat.ID || !b.IsActive() {
			continue
		}

		if b.StartTime.Equal(start) {
			if b.Language != language {
				return false
			}
			seatsTaken += b.NumberOfPeople
			continue
		}

		// Другая минута: окно занятости не должно пересекать наше
		if b.StartTime.Before(tripEnd) && b.EndTime.After(start) {
			return false
		}
	}

	return bs.Boat.Capacity-seatsTaken >= partySize
}

// blockedAt проверяет, накрывает ли какая-нибудь блокировка окно тура
func blockedAt(blocks []*domain.BlockedInterval, start, end time.Time) bool {
	for _, blk := range blocks {
		if blk.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// fullDayBlock возвращает первую блокировку со scope=day, накрывающую весь
// день, или nil. Порядок blocks определяет, чья причина уходит наружу.
func fullDayBlock(blocks []*domain.BlockedInterval, dayStart, dayEnd time.Time) *domain.BlockedInterval {
	for _, blk := range blocks {
		if blk.CoversDay(dayStart, dayEnd) {
			return blk
		}
	}
	return nil
}

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
