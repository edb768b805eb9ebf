package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the civil date format accepted on the wire.
const DateLayout = "2006-01-02"

const clockLayout = "15:04"

// FixedOffset parses an offset string like "-05:00" into the one civil
// location shared by every read and write path. The deployment runs on a
// constant offset; there is no tzdb lookup and no DST handling anywhere.
func FixedOffset(offset string) (*time.Location, error) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return nil, fmt.Errorf("invalid offset %q, want ±HH:MM", offset)
	}
	t, err := time.Parse("15:04", offset[1:])
	if err != nil {
		return nil, fmt.Errorf("invalid offset %q: %v", offset, err)
	}
	secs := t.Hour()*3600 + t.Minute()*60
	if offset[0] == '-' {
		secs = -secs
	}
	return time.FixedZone("UTC"+offset, secs), nil
}

// ParseDate interprets a civil date string as midnight in loc. The returned
// time carries loc, so downstream conversions stay on the same timeline.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// At anchors a wall-clock "HH:MM" on date's civil day.
func At(date time.Time, clock string) (time.Time, error) {
	tod, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, tod.Hour(), tod.Minute(), 0, 0, date.Location()), nil
}

// DayBounds returns [00:00:00, 23:59:59] of date's civil day.
func DayBounds(date time.Time) (time.Time, time.Time) {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	return start, start.Add(24*time.Hour - time.Second)
}

func parseClock(s string) (time.Time, error) {
	if len(s) < 5 {
		return time.Time{}, fmt.Errorf("invalid time string: %s", s)
	}
	return time.Parse(clockLayout, s[:5])
}
