package provider

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"

	"labreserve-service/internal/schedule"
)

// GoogleCalendar implements schedule.CalendarProvider against calendar/v3.
type GoogleCalendar struct {
	srv        *calendar.Service
	calendarID string
	timezone   string
}

func NewGoogleCalendar(srv *calendar.Service, calendarID, timezone string) *GoogleCalendar {
	return &GoogleCalendar{srv: srv, calendarID: calendarID, timezone: timezone}
}

func (g *GoogleCalendar) ListBusy(ctx context.Context, from, to time.Time) ([]schedule.BusyPeriod, error) {
	events, err := g.srv.Events.List(g.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var busy []schedule.BusyPeriod
	for _, item := range events.Items {
		start, ok := parseEventTime(item.Start, from.Location())
		if !ok {
			continue
		}
		end, ok := parseEventTime(item.End, from.Location())
		if !ok {
			continue
		}
		busy = append(busy, schedule.BusyPeriod{Start: start, End: end})
	}
	return busy, nil
}

func (g *GoogleCalendar) InsertEvent(ctx context.Context, ev schedule.Event) (string, error) {
	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
	}
	created, err := g.srv.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

// parseEventTime handles both timed and all-day events. All-day events carry
// only a date; they are anchored at midnight in the deployment's civil zone.
func parseEventTime(t *calendar.EventDateTime, loc *time.Location) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	if t.DateTime != "" {
		ts, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	}
	if t.Date != "" {
		ts, err := time.ParseInLocation(schedule.DateLayout, t.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	}
	return time.Time{}, false
}
