package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_WednesdayStart(t *testing.T) {
	// January 2025 starts on a Wednesday.
	cells := MonthGrid(2025, time.January)

	require.Len(t, cells, 3+31)
	for i := 0; i < 3; i++ {
		assert.Nil(t, cells[i])
	}
	require.NotNil(t, cells[3])
	assert.Equal(t, "2025-01-01", Format(*cells[3]))
	assert.Equal(t, "2025-01-31", Format(*cells[len(cells)-1]))
}

func TestMonthGrid_SundayStartHasNoPlaceholders(t *testing.T) {
	// June 2025 starts on a Sunday.
	cells := MonthGrid(2025, time.June)

	require.Len(t, cells, 30)
	require.NotNil(t, cells[0])
	assert.Equal(t, 1, cells[0].Day())
}

func TestMonthGrid_LeapFebruary(t *testing.T) {
	// February 2024 starts on a Thursday.
	cells := MonthGrid(2024, time.February)
	assert.Len(t, cells, 4+29)
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	original := []string{"2025-06-01", "2025-06-03"}

	for _, date := range []string{"2025-06-02", "2025-06-03"} {
		once := Toggle(original, date)
		assert.NotEqual(t, IsBlocked(original, date), IsBlocked(once, date))

		twice := Toggle(once, date)
		assert.Equal(t, IsBlocked(original, date), IsBlocked(twice, date))
		assert.ElementsMatch(t, original, twice)
	}

	assert.Equal(t, []string{"2025-06-01", "2025-06-03"}, original, "input must not be modified")
}

func TestCheck(t *testing.T) {
	now := time.Date(2025, time.May, 20, 18, 30, 0, 0, time.UTC)
	blocked := []string{"2025-05-25"}

	assert.NoError(t, Check("2025-05-21", blocked, now))
	assert.NoError(t, Check("2025-06-01", blocked, now))
	assert.ErrorIs(t, Check("2025-05-20", blocked, now), ErrTooSoon)
	assert.ErrorIs(t, Check("2025-05-01", blocked, now), ErrTooSoon)
	assert.ErrorIs(t, Check("2025-05-25", blocked, now), ErrBlocked)
	assert.ErrorIs(t, Check("25/05/2025", blocked, now), ErrInvalid)
}

func TestTomorrow_UsesWallClockOfNow(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	now := time.Date(2025, time.May, 20, 23, 0, 0, 0, loc)

	assert.Equal(t, "2025-05-21", Tomorrow(now))
	assert.True(t, IsPast("2025-05-19", now))
	assert.False(t, IsPast("2025-05-20", now))
}

func TestShiftMonth(t *testing.T) {
	y, m := ShiftMonth(2025, time.January, -1)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)

	y, m = ShiftMonth(2025, time.December, 1)
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.January, m)
}

func TestAvailabilityMonth(t *testing.T) {
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	m := AvailabilityMonth(2025, time.January, []string{"2025-01-15"}, now)

	assert.Equal(t, "2025-01-11", m.Tomorrow)
	require.Len(t, m.Cells, 34)
	assert.Nil(t, m.Cells[0])

	jan9 := m.Cells[3+8]
	assert.Equal(t, "2025-01-09", jan9.Date)
	assert.True(t, jan9.Past)

	jan10 := m.Cells[3+9]
	assert.True(t, jan10.Today)
	assert.False(t, jan10.Past)

	jan15 := m.Cells[3+14]
	assert.True(t, jan15.Blocked)
}
