package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:25")
	require.NoError(t, err)
	assert.Equal(t, "10:25", ts.String())

	for _, invalid := range []string{"24:00", "10:60", "9:05", "ten", "", "10:25:30"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(600)
	require.NoError(t, err)
	assert.Equal(t, "10:00", ts.String())

	ts, err = NewTimeStringFromMinutes(1065)
	require.NoError(t, err)
	assert.Equal(t, "17:45", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)
	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("13:55")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 835, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("17:45")

	end, err := ts.AddMinutes(25)
	require.NoError(t, err)
	assert.Equal(t, "18:10", end.String())

	// За пределы суток
	_, err = TimeString("23:50").AddMinutes(25)
	assert.Error(t, err)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:05"))
	assert.True(t, TimeString("13:30").IsAfter("11:45"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("17:45")))
	assert.Equal(t, "17:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC)))
	assert.Equal(t, "13:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:25").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:25", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
