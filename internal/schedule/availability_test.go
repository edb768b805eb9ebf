package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyBetween(t *testing.T, loc *time.Location, startClock, endClock string) BusyPeriod {
	t.Helper()
	return BusyPeriod{Start: at(t, loc, startClock), End: at(t, loc, endClock)}
}

func ids(c Catalog) []int {
	out := []int{}
	for _, iv := range c {
		out = append(out, iv.ID)
	}
	return out
}

func TestAvailableIntervalsEmptyCalendar(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	free, err := AvailableIntervals(DefaultCatalog(), date, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(free))
}

func TestAvailableIntervalsExactMatchRemovesOnlyThatSlot(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	busy := []BusyPeriod{busyBetween(t, loc, "10:00", "13:00")}
	free, err := AvailableIntervals(DefaultCatalog(), date, busy)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, ids(free))
}

func TestAvailableIntervalsStraddlingEventRemovesBothNeighbors(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	// 09:00-11:00 crosses the 07:00-10:00 / 10:00-13:00 boundary.
	busy := []BusyPeriod{busyBetween(t, loc, "09:00", "11:00")}
	free, err := AvailableIntervals(DefaultCatalog(), date, busy)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids(free))
}

func TestAvailableIntervalsTouchingEventDoesNotBlock(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	// Ends exactly when slot 1 starts, starts exactly when slot 4 ends.
	busy := []BusyPeriod{
		busyBetween(t, loc, "06:00", "07:00"),
		busyBetween(t, loc, "21:30", "22:00"),
	}
	free, err := AvailableIntervals(DefaultCatalog(), date, busy)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(free))
}

func TestAvailableIntervalsOrderAndDuplicatesIrrelevant(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	a := []BusyPeriod{
		busyBetween(t, loc, "09:00", "11:00"),
		busyBetween(t, loc, "18:00", "19:00"),
	}
	b := []BusyPeriod{
		busyBetween(t, loc, "18:00", "19:00"),
		busyBetween(t, loc, "09:00", "11:00"),
		busyBetween(t, loc, "09:00", "11:00"),
	}

	freeA, err := AvailableIntervals(DefaultCatalog(), date, a)
	require.NoError(t, err)
	freeB, err := AvailableIntervals(DefaultCatalog(), date, b)
	require.NoError(t, err)
	assert.Equal(t, freeA, freeB)
	assert.Equal(t, []int{3}, ids(freeA))
}

func TestAvailableIntervalsFullyBookedDay(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	busy := []BusyPeriod{busyBetween(t, loc, "07:00", "22:00")}
	free, err := AvailableIntervals(DefaultCatalog(), date, busy)
	require.NoError(t, err)
	assert.Empty(t, free)
	assert.NotNil(t, free)
}
