package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), -time.Second))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, m.Delete(ctx, "a", "b"))

	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, AvailabilityKey("2026-09-15", "fr", 2, 0, 0), []byte("a"), time.Minute))
	require.NoError(t, m.Set(ctx, AvailabilityKey("2026-09-15", "en", 1, 1, 0), []byte("b"), time.Minute))
	require.NoError(t, m.Set(ctx, AvailabilityKey("2026-09-16", "fr", 2, 0, 0), []byte("c"), time.Minute))

	require.NoError(t, m.DeleteByPrefix(ctx, AvailabilityDatePrefix("2026-09-15")))

	_, err := m.Get(ctx, AvailabilityKey("2026-09-15", "fr", 2, 0, 0))
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = m.Get(ctx, AvailabilityKey("2026-09-15", "en", 1, 1, 0))
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Другая дата не затронута
	value, err := m.Get(ctx, AvailabilityKey("2026-09-16", "fr", 2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), value)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, assert.AnError
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return assert.AnError
}

func (failingStore) Delete(context.Context, ...string) error {
	return assert.AnError
}

func (failingStore) DeleteByPrefix(context.Context, string) error {
	return assert.AnError
}

func TestLayeredFallsBackWhenPrimaryFails(t *testing.T) {
	ctx := context.Background()
	l := NewLayered(failingStore{}, NewMemory(), nil)

	// Запись переживает ошибку primary
	require.NoError(t, l.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := l.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestLayeredWithoutPrimary(t *testing.T) {
	ctx := context.Background()
	l := NewLayered(nil, NewMemory(), nil)

	require.NoError(t, l.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := l.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, l.DeleteByPrefix(ctx, "k"))
	_, err = l.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
