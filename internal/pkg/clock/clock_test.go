//go:build unit

package clock_test

import (
	"testing"
	"time"

	"classroom-reservations/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	t.Run("late evening UTC still belongs to the local day", func(t *testing.T) {
		// 2026-03-11 01:30 UTC is 2026-03-10 22:30 in Buenos Aires
		now := time.Date(2026, 3, 11, 1, 30, 0, 0, time.UTC)
		start, end := clock.DayBounds(now, loc)

		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)
		assert.Equal(t, 2026, end.Year())
		assert.Equal(t, time.March, end.Month())
		assert.Equal(t, 10, end.Day())
		assert.Equal(t, 23, end.Hour())
		assert.Equal(t, 999*time.Millisecond, time.Duration(end.Nanosecond()))
	})

	t.Run("nil location falls back to local", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local)
		start, _ := clock.DayBounds(now, nil)
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 11, start.Day())
	})
}

func TestMockClock(t *testing.T) {
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(base)
	c.Add(90 * time.Minute)
	assert.Equal(t, base.Add(90*time.Minute), c.Now())
	c.Set(base)
	assert.Equal(t, base, c.Now())
}
