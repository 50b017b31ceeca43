package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

type fakeBookingRepo struct {
	expired []*domain.Booking
	err     error
	cutoff  time.Time
}

func (f *fakeBookingRepo) ExpireStaleHolds(_ context.Context, before time.Time) ([]*domain.Booking, error) {
	f.cutoff = before
	return f.expired, f.err
}

type fakeCache struct {
	deletedPrefixes []string
}

func (f *fakeCache) DeleteByPrefix(_ context.Context, prefix string) error {
	f.deletedPrefixes = append(f.deletedPrefixes, prefix)
	return nil
}

type fakeNotifier struct {
	notified int
}

func (f *fakeNotifier) PlanningChanged(_ context.Context) {
	f.notified++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func hold(date time.Time) *domain.Booking {
	return &domain.Booking{
		Date:   date,
		Status: domain.StatusPending,
		IsPaid: false,
	}
}

func TestRun_ReleasesHoldsAndInvalidatesEachDateOnce(t *testing.T) {
	day1 := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{expired: []*domain.Booking{hold(day1), hold(day1), hold(day2)}}
	c := &fakeCache{}
	n := &fakeNotifier{}
	e := NewHoldExpirer(repo, c, n, 30*time.Minute, nil, nopLogger{})

	require.NoError(t, e.Run(context.Background()))

	// Две даты затронуты, каждая инвалидируется один раз
	assert.Len(t, c.deletedPrefixes, 2)
	assert.ElementsMatch(t, []string{
		"availability:2026-09-15:",
		"availability:2026-09-16:",
	}, c.deletedPrefixes)
	assert.Equal(t, 1, n.notified)

	// Отсечка примерно now - TTL
	assert.WithinDuration(t, time.Now().UTC().Add(-30*time.Minute), repo.cutoff, 5*time.Second)
}

func TestRun_NothingExpired(t *testing.T) {
	repo := &fakeBookingRepo{}
	c := &fakeCache{}
	n := &fakeNotifier{}
	e := NewHoldExpirer(repo, c, n, 30*time.Minute, nil, nopLogger{})

	require.NoError(t, e.Run(context.Background()))

	assert.Empty(t, c.deletedPrefixes)
	assert.Zero(t, n.notified)
}

func TestRun_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	e := NewHoldExpirer(repo, &fakeCache{}, &fakeNotifier{}, 30*time.Minute, nil, nopLogger{})

	assert.Error(t, e.Run(context.Background()))
}
