package get_availability

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	calls    int
	err      error
}

func (f *fakeBookingRepo) ListForDay(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.BlockedInterval
	err    error
}

func (f *fakeBlockRepo) ListOverlapping(_ context.Context, _, _ time.Time) ([]*domain.BlockedInterval, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
}

type fakeFleet struct {
	slots []domain.BoatSlot
	err   error
}

func (f *fakeFleet) ListBoatSlotsForDay(_ context.Context, _ time.Time) ([]domain.BoatSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return nil, cache.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.data[key] = value
	return nil
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testDate = "2026-09-15"

var testDay = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

// notToday момент задолго до запрошенного дня, фильтр "сегодня" не активен
var notToday = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func fullFleet(capacities ...int) []domain.BoatSlot {
	boats := make([]*domain.Boat, 0, len(capacities))
	for i, c := range capacities {
		boats = append(boats, &domain.Boat{
			ID:       int64(i + 1),
			Name:     "Boat",
			Capacity: c,
			Status:   domain.BoatStatusActive,
		})
	}
	return domain.AssignOffsets(boats, domain.DefaultOffsets)
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	blockRepo *fakeBlockRepo,
	fleet *fakeFleet,
	c *fakeCache,
	now time.Time,
) *UseCase {
	return NewUseCase(
		bookingRepo,
		blockRepo,
		fleet,
		c,
		90*time.Second,
		domain.DefaultSchedule(),
		time.UTC,
		nil,
		nopLogger{},
	).WithTimeProvider(fixedTime{t: now})
}

func slotInstant(minutes int) time.Time {
	return domain.SlotInstant(testDay, minutes)
}

func booking(boatID int64, startMinutes, people int, lang string) *domain.Booking {
	start := slotInstant(startMinutes)
	return &domain.Booking{
		ID:             "b",
		Date:           testDay,
		StartTime:      start,
		EndTime:        start.Add(time.Duration(domain.DefaultTourDurationMinutes) * time.Minute),
		BoatID:         boatID,
		Language:       lang,
		NumberOfPeople: people,
		Status:         domain.StatusConfirmed,
	}
}

func TestExecute_EmptyPartySkipsStorage(t *testing.T) {
	bookingRepo := &fakeBookingRepo{err: errors.New("must not be called")}
	blockRepo := &fakeBlockRepo{err: errors.New("must not be called")}
	fleet := &fakeFleet{err: errors.New("must not be called")}

	uc := newTestUseCase(bookingRepo, blockRepo, fleet, newFakeCache(), notToday)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr"})

	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
	assert.Nil(t, resp.BlockedReason)
	assert.Zero(t, bookingRepo.calls)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeFleet{}, newFakeCache(), notToday)

	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"missing date", Request{Language: "fr", Adults: 1}, ErrInvalidDate},
		{"bad date", Request{Date: "15/09/2026", Language: "fr", Adults: 1}, ErrInvalidDate},
		{"missing language", Request{Date: testDate, Adults: 1}, ErrInvalidLanguage},
		{"unknown language", Request{Date: testDate, Language: "xx", Adults: 1}, ErrInvalidLanguage},
		{"negative count", Request{Date: testDate, Language: "fr", Adults: -1}, ErrInvalidPartySize},
		{"party too large", Request{Date: testDate, Language: "fr", Adults: domain.MaxPartySize + 1}, ErrInvalidPartySize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExecute_FullFleetEmptyDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeBlockRepo{},
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		notToday,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	// Утро: 10:00-11:45, после обеда: 13:30-17:45, четыре лодки в цикле
	assert.Equal(t, []string{"10:00", "10:05", "10:10", "10:25", "10:30"}, resp.AvailableSlots[:5])
	assert.Len(t, resp.AvailableSlots, 50)
	assert.True(t, sort.SliceIsSorted(resp.AvailableSlots, func(i, j int) bool {
		return resp.AvailableSlots[i] < resp.AvailableSlots[j]
	}))
	assert.NotContains(t, resp.AvailableSlots, "11:55") // 11:30 + 25 вне утреннего окна
	assert.NotContains(t, resp.AvailableSlots, "17:55") // 17:30 + 25 вне вечернего окна
	assert.Contains(t, resp.AvailableSlots, "17:40")
	assert.Nil(t, resp.BlockedReason)
}

func TestExecute_FullDayBlockShortCircuits(t *testing.T) {
	dayStart, dayEnd := domain.DayWindowUTC(testDay)
	bookingRepo := &fakeBookingRepo{err: errors.New("must not be called")}
	blockRepo := &fakeBlockRepo{blocks: []*domain.BlockedInterval{{
		ID:     1,
		Start:  dayStart,
		End:    dayEnd,
		Scope:  domain.ScopeDay,
		Reason: "maintenance du quai",
	}}}

	uc := newTestUseCase(bookingRepo, blockRepo, &fakeFleet{err: errors.New("must not be called")}, newFakeCache(), notToday)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
	require.NotNil(t, resp.BlockedReason)
	assert.Equal(t, "maintenance du quai", *resp.BlockedReason)
	assert.Zero(t, bookingRepo.calls)
}

func TestExecute_IntervalBlockRemovesCoveredSlots(t *testing.T) {
	blockRepo := &fakeBlockRepo{blocks: []*domain.BlockedInterval{{
		ID:     1,
		Start:  slotInstant(600), // 10:00
		End:    slotInstant(615), // 10:15
		Scope:  domain.ScopeInterval,
		Reason: "marée basse",
	}}}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		blockRepo,
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		notToday,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	// Любой тур, пересекающий блокировку, выпадает
	assert.NotContains(t, resp.AvailableSlots, "10:00")
	assert.NotContains(t, resp.AvailableSlots, "10:05")
	assert.NotContains(t, resp.AvailableSlots, "10:10")
	assert.Contains(t, resp.AvailableSlots, "10:25")
	assert.Nil(t, resp.BlockedReason)
}

func TestExecute_LanguageExclusivity(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, 600, 2, "fr"), // лодка 1 отходит в 10:00 на французском
	}}

	uc := newTestUseCase(
		bookingRepo,
		&fakeBlockRepo{},
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		notToday,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "en", Adults: 2})

	require.NoError(t, err)
	assert.NotContains(t, resp.AvailableSlots, "10:00")
	assert.Contains(t, resp.AvailableSlots, "10:05") // другая лодка
	assert.Contains(t, resp.AvailableSlots, "10:30") // та же лодка, следующий цикл
}

func TestExecute_CapacitySharingSameLanguage(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, 600, 10, "fr"),
	}}
	fleet := &fakeFleet{slots: fullFleet(12, 12, 12, 12)}

	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, fleet, newFakeCache(), notToday)

	// Два места еще есть
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})
	require.NoError(t, err)
	assert.Contains(t, resp.AvailableSlots, "10:00")

	// Трем уже тесно
	resp, err = uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 3})
	require.NoError(t, err)
	assert.NotContains(t, resp.AvailableSlots, "10:00")
	assert.Contains(t, resp.AvailableSlots, "10:05")
}

func TestExecute_QuotaLimitsOffsets(t *testing.T) {
	// Квота оставила две лодки: отправления только на смещениях 0 и 5
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeBlockRepo{},
		&fakeFleet{slots: fullFleet(12, 12)},
		newFakeCache(),
		notToday,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	assert.Contains(t, resp.AvailableSlots, "10:00")
	assert.Contains(t, resp.AvailableSlots, "10:05")
	assert.NotContains(t, resp.AvailableSlots, "10:10")
	assert.NotContains(t, resp.AvailableSlots, "10:25")
}

func TestExecute_NoBoatsReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeFleet{}, newFakeCache(), notToday)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
	assert.Nil(t, resp.BlockedReason)
}

func TestExecute_TodayAppliesMinimumDelay(t *testing.T) {
	// Сейчас 10:30, минимум 30 минут: первое доступное отправление в 11:00
	now := testDay.Add(10*time.Hour + 30*time.Minute)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeBlockRepo{},
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	require.NotEmpty(t, resp.AvailableSlots)
	assert.Equal(t, "11:00", resp.AvailableSlots[0])
}

func TestExecute_PastDayReturnsEmpty(t *testing.T) {
	now := testDay.AddDate(0, 0, 3)

	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("must not be called")},
		&fakeBlockRepo{err: errors.New("must not be called")},
		&fakeFleet{err: errors.New("must not be called")},
		newFakeCache(),
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_EmptyDayWithBlocksReportsReason(t *testing.T) {
	// Два интервала накрывают оба рабочих окна целиком
	blockRepo := &fakeBlockRepo{blocks: []*domain.BlockedInterval{
		{
			ID: 1, Scope: domain.ScopeInterval, Reason: "tempête",
			Start: slotInstant(590), End: slotInstant(740),
		},
		{
			ID: 2, Scope: domain.ScopeInterval, Reason: "régate",
			Start: slotInstant(800), End: slotInstant(1100),
		},
	}}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		blockRepo,
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		notToday,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
	require.NotNil(t, resp.BlockedReason)
	assert.Equal(t, "tempête", *resp.BlockedReason)
}

func TestExecute_SecondCallServedFromCache(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(
		bookingRepo,
		&fakeBlockRepo{},
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		notToday,
	)

	req := &Request{Date: testDate, Language: "fr", Adults: 2}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, bookingRepo.calls)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, bookingRepo.calls)
	assert.Equal(t, first.AvailableSlots, second.AvailableSlots)
}

func TestExecute_StorageErrorSurfacesAsInternal(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeBlockRepo{},
		&fakeFleet{slots: fullFleet(12, 12, 12, 12)},
		newFakeCache(),
		notToday,
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, Language: "fr", Adults: 2})

	assert.ErrorIs(t, err, ErrInternal)
}
