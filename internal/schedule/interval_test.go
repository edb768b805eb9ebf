package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func civil(t *testing.T) *time.Location {
	t.Helper()
	loc, err := FixedOffset("-05:00")
	require.NoError(t, err)
	return loc
}

func at(t *testing.T, loc *time.Location, clock string) time.Time {
	t.Helper()
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)
	ts, err := At(date, clock)
	require.NoError(t, err)
	return ts
}

func TestOverlapsSymmetric(t *testing.T) {
	loc := civil(t)
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint", "07:00", "10:00", "14:00", "17:00", false},
		{"touching", "07:00", "10:00", "10:00", "13:00", false},
		{"crossing", "09:00", "11:00", "10:00", "13:00", true},
		{"identical", "10:00", "13:00", "10:00", "13:00", true},
		{"contained", "10:00", "13:00", "11:00", "12:00", true},
		{"zero length", "10:00", "10:00", "07:00", "13:00", false},
		{"zero length at boundary", "10:00", "10:00", "10:00", "13:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			aStart, aEnd := at(t, loc, tc.aStart), at(t, loc, tc.aEnd)
			bStart, bEnd := at(t, loc, tc.bStart), at(t, loc, tc.bEnd)
			assert.Equal(t, tc.want, Overlaps(aStart, aEnd, bStart, bEnd))
			assert.Equal(t, tc.want, Overlaps(bStart, bEnd, aStart, aEnd), "must be symmetric")
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Len(t, c, 4)

	iv, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, "10:00", iv.Start)
	assert.Equal(t, "13:00", iv.End)
	assert.Equal(t, "10:00 - 13:00", iv.String())

	_, ok = c.Find(99)
	assert.False(t, ok)
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog("2=10:00-13:00, 1=07:00-10:00")
	require.NoError(t, err)
	require.Len(t, c, 2)
	// ordered by start time
	assert.Equal(t, 1, c[0].ID)
	assert.Equal(t, 2, c[1].ID)
}

func TestParseCatalogRejectsBadSpecs(t *testing.T) {
	bad := []string{
		"",
		"1=07:00",
		"x=07:00-10:00",
		"0=07:00-10:00",
		"1=10:00-10:00",
		"1=13:00-10:00",
		"1=07:00-10:00,1=14:00-17:00",
		"1=07:00-11:00,2=10:00-13:00",
		"1=7am-10am",
	}
	for _, spec := range bad {
		_, err := ParseCatalog(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestIntervalBounds(t *testing.T) {
	loc := civil(t)
	date, err := ParseDate("2024-06-10", loc)
	require.NoError(t, err)

	iv := Interval{ID: 4, Start: "18:30", End: "21:30"}
	start, end, err := iv.Bounds(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 10, 18, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 6, 10, 21, 30, 0, 0, loc), end)
	assert.Equal(t, loc, start.Location())
}
