package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Event is the calendar write payload.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// LogProvider appends reservation rows to the tabular log.
type LogProvider interface {
	AppendRow(ctx context.Context, row []interface{}) error
}

// Reservation is a validated request: Slot already resolved against the
// catalog and Date carrying the civil location. Consumed exactly once; the
// calendar event and the log row are the only durable records.
type Reservation struct {
	Teacher      string
	Program      string
	Subject      string
	Date         time.Time
	Slot         Interval
	Observations string
	SubmittedAt  string
}

// Row is the ordered log tuple: submitted-at, teacher, program, subject,
// date, interval, observations.
func (r Reservation) Row() []interface{} {
	return []interface{}{
		r.SubmittedAt,
		r.Teacher,
		r.Program,
		r.Subject,
		r.Date.Format(DateLayout),
		r.Slot.String(),
		r.Observations,
	}
}

// record performs the two-phase write: calendar event first, then the log
// row. There is no transaction across the two providers. A failed insert
// aborts before any row is written; a failed append after a successful
// insert leaves the event without a row and is surfaced as ErrLogWrite with
// the event id so the pair can be reconciled out of band.
func (s *Service) record(ctx context.Context, r Reservation) error {
	start, end, err := r.Slot.Bounds(r.Date)
	if err != nil {
		return err
	}

	ev := Event{
		Summary: fmt.Sprintf("Lab reservation: %s - %s", r.Teacher, r.Subject),
		Description: fmt.Sprintf("Program: %s\nSubject: %s\nTeacher: %s",
			r.Program, r.Subject, r.Teacher),
		Start: start,
		End:   end,
	}

	insertCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	eventID, err := s.calendar.InsertEvent(insertCtx, ev)
	if err != nil {
		s.logger.Error("calendar insert failed",
			zap.String("date", r.Date.Format(DateLayout)),
			zap.Int("slot", r.Slot.ID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCalendarWrite, err)
	}

	appendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.log.AppendRow(appendCtx, r.Row()); err != nil {
		s.logger.Error("log append failed after calendar insert",
			zap.String("event_id", eventID),
			zap.String("date", r.Date.Format(DateLayout)),
			zap.Int("slot", r.Slot.ID),
			zap.Error(err))
		return fmt.Errorf("%w (event %s): %v", ErrLogWrite, eventID, err)
	}

	s.logger.Info("reservation recorded",
		zap.String("event_id", eventID),
		zap.String("date", r.Date.Format(DateLayout)),
		zap.Int("slot", r.Slot.ID))
	return nil
}
