package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Interval is one bookable slot of the lab day. Start and End are wall-clock
// "HH:MM" strings in the deployment civil timezone.
type Interval struct {
	ID    int    `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Bounds resolves the interval to absolute instants on the given civil date.
func (iv Interval) Bounds(date time.Time) (time.Time, time.Time, error) {
	start, err := At(date, iv.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := At(date, iv.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// String renders the interval for the reservation log, e.g. "10:00 - 13:00".
func (iv Interval) String() string {
	return iv.Start + " - " + iv.End
}

// Catalog is the fixed, ordered set of bookable intervals for a day.
// It never changes after startup and is safe to share across requests.
type Catalog []Interval

// DefaultCatalog is the reference deployment's four lab slots.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: 1, Start: "07:00", End: "10:00"},
		{ID: 2, Start: "10:00", End: "13:00"},
		{ID: 3, Start: "14:00", End: "17:00"},
		{ID: 4, Start: "18:30", End: "21:30"},
	}
}

// ParseCatalog reads a catalog spec like "1=07:00-10:00,2=10:00-13:00".
// Entries must have unique ids, start before end, and not overlap each other.
func ParseCatalog(spec string) (Catalog, error) {
	var out Catalog
	seen := map[int]bool{}
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idStr, rng, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid catalog entry %q, want id=HH:MM-HH:MM", entry)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid slot id in %q", entry)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate slot id %d", id)
		}
		seen[id] = true
		startStr, endStr, ok := strings.Cut(rng, "-")
		if !ok {
			return nil, fmt.Errorf("invalid range in %q, want HH:MM-HH:MM", entry)
		}
		start, err := parseClock(startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid start in %q: %v", entry, err)
		}
		end, err := parseClock(endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid end in %q: %v", entry, err)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("start must be before end in %q", entry)
		}
		out = append(out, Interval{ID: id, Start: startStr, End: endStr})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty catalog spec")
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	for i := 1; i < len(out); i++ {
		if out[i].Start < out[i-1].End {
			return nil, fmt.Errorf("slots %d and %d overlap", out[i-1].ID, out[i].ID)
		}
	}
	return out, nil
}

// Find returns the interval with the given id.
func (c Catalog) Find(id int) (Interval, bool) {
	for _, iv := range c {
		if iv.ID == id {
			return iv, true
		}
	}
	return Interval{}, false
}

// Overlaps reports whether two half-open ranges intersect. Ranges that only
// touch (aEnd == bStart) do not overlap; identical ranges do; a zero-length
// range is empty and never overlaps anything. This is the only overlap test
// in the repo.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aStart.Before(aEnd) || !bStart.Before(bEnd) {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
