package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	quotaRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/quota"
)

type fakeBoatRepo struct {
	active       []*domain.Boat
	all          []*domain.Boat
	listCalls    int
	statusUpdate struct {
		id     int64
		status domain.BoatStatus
	}
}

func (f *fakeBoatRepo) ListActive(_ context.Context) ([]*domain.Boat, error) {
	f.listCalls++
	return f.active, nil
}

func (f *fakeBoatRepo) List(_ context.Context) ([]*domain.Boat, error) {
	return f.all, nil
}

func (f *fakeBoatRepo) GetByID(_ context.Context, id int64) (*domain.Boat, error) {
	for _, b := range f.all {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBoatNotFound
}

func (f *fakeBoatRepo) UpdateStatus(_ context.Context, id int64, status domain.BoatStatus) error {
	f.statusUpdate.id = id
	f.statusUpdate.status = status
	return nil
}

type fakeQuotaRepo struct {
	quota *domain.DailyBoatQuota
}

func (f *fakeQuotaRepo) GetForDay(_ context.Context, _ time.Time) (*domain.DailyBoatQuota, error) {
	if f.quota == nil {
		return nil, quotaRepo.ErrQuotaNotFound
	}
	return f.quota, nil
}

func (f *fakeQuotaRepo) Upsert(_ context.Context, q *domain.DailyBoatQuota) (*domain.DailyBoatQuota, error) {
	f.quota = q
	return q, nil
}

func (f *fakeQuotaRepo) Delete(_ context.Context, _ time.Time) error {
	if f.quota == nil {
		return quotaRepo.ErrQuotaNotFound
	}
	f.quota = nil
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDay = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func fourBoats() []*domain.Boat {
	return []*domain.Boat{
		{ID: 1, Name: "Boat 1", Capacity: 12, Status: domain.BoatStatusActive},
		{ID: 2, Name: "Boat 2", Capacity: 12, Status: domain.BoatStatusActive},
		{ID: 3, Name: "Boat 3", Capacity: 12, Status: domain.BoatStatusActive},
		{ID: 4, Name: "Boat 4", Capacity: 12, Status: domain.BoatStatusActive},
	}
}

func newTestService(boats *fakeBoatRepo, quotas *fakeQuotaRepo) *Service {
	return NewService(boats, quotas, cache.NewMemory(), 5*time.Minute, domain.DefaultSchedule(), nopLogger{})
}

func TestListBoatSlotsForDay_FullFleet(t *testing.T) {
	boats := &fakeBoatRepo{active: fourBoats()}
	svc := newTestService(boats, &fakeQuotaRepo{})

	slots, err := svc.ListBoatSlotsForDay(context.Background(), testDay)

	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, 0, slots[0].OffsetMinutes)
	assert.Equal(t, 25, slots[3].OffsetMinutes)
	assert.Equal(t, int64(1), slots[0].Boat.ID)
}

func TestListBoatSlotsForDay_QuotaCapsFleet(t *testing.T) {
	boats := &fakeBoatRepo{active: fourBoats()}
	quotas := &fakeQuotaRepo{quota: &domain.DailyBoatQuota{Day: testDay, BoatsAvailable: 2}}
	svc := newTestService(boats, quotas)

	slots, err := svc.ListBoatSlotsForDay(context.Background(), testDay)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	// Квота оставляет первые лодки стабильного порядка
	assert.Equal(t, int64(1), slots[0].Boat.ID)
	assert.Equal(t, int64(2), slots[1].Boat.ID)
}

func TestListActiveBoats_CachesSecondCall(t *testing.T) {
	boats := &fakeBoatRepo{active: fourBoats()}
	svc := newTestService(boats, &fakeQuotaRepo{})

	_, err := svc.ListActiveBoats(context.Background())
	require.NoError(t, err)

	got, err := svc.ListActiveBoats(context.Background())
	require.NoError(t, err)

	assert.Len(t, got, 4)
	assert.Equal(t, 1, boats.listCalls)
}

func TestSetBoatStatus_InvalidatesCache(t *testing.T) {
	boats := &fakeBoatRepo{active: fourBoats()}
	svc := newTestService(boats, &fakeQuotaRepo{})

	// Прогреваем кеш, затем выводим лодку на обслуживание
	_, err := svc.ListActiveBoats(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.SetBoatStatus(context.Background(), 3, domain.BoatStatusMaintenance))
	assert.Equal(t, int64(3), boats.statusUpdate.id)
	assert.Equal(t, domain.BoatStatusMaintenance, boats.statusUpdate.status)

	boats.active = boats.active[:2]
	got, err := svc.ListActiveBoats(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSetQuota_Validates(t *testing.T) {
	svc := newTestService(&fakeBoatRepo{}, &fakeQuotaRepo{})

	_, err := svc.SetQuota(context.Background(), &domain.DailyBoatQuota{Day: testDay, BoatsAvailable: 0})
	assert.ErrorIs(t, err, ErrInvalidQuota)

	_, err = svc.SetQuota(context.Background(), &domain.DailyBoatQuota{Day: testDay, BoatsAvailable: domain.MaxDailyBoats + 1})
	assert.ErrorIs(t, err, ErrInvalidQuota)

	saved, err := svc.SetQuota(context.Background(), &domain.DailyBoatQuota{Day: testDay, BoatsAvailable: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, saved.BoatsAvailable)
}

func TestQuotaLifecycle(t *testing.T) {
	quotas := &fakeQuotaRepo{}
	svc := newTestService(&fakeBoatRepo{}, quotas)
	ctx := context.Background()

	_, err := svc.GetQuota(ctx, testDay)
	assert.ErrorIs(t, err, ErrQuotaNotFound)

	_, err = svc.SetQuota(ctx, &domain.DailyBoatQuota{Day: testDay, BoatsAvailable: 2})
	require.NoError(t, err)

	q, err := svc.GetQuota(ctx, testDay)
	require.NoError(t, err)
	assert.Equal(t, 2, q.BoatsAvailable)

	require.NoError(t, svc.RemoveQuota(ctx, testDay))
	assert.ErrorIs(t, svc.RemoveQuota(ctx, testDay), ErrQuotaNotFound)
}
