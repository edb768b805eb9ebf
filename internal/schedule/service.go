package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service holds the immutable catalog and the process-wide provider handles.
// It keeps no per-request state and is safe for concurrent use.
type Service struct {
	catalog  Catalog
	calendar CalendarProvider
	log      LogProvider
	timeout  time.Duration
	logger   *zap.Logger
}

func NewService(catalog Catalog, calendar CalendarProvider, log LogProvider, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		catalog:  catalog,
		calendar: calendar,
		log:      log,
		timeout:  timeout,
		logger:   logger,
	}
}

// Availability returns the catalog intervals on date that overlap none of
// the calendar's busy periods. A provider failure fails the whole query;
// an unknown calendar state is never treated as free or taken.
func (s *Service) Availability(ctx context.Context, date time.Time) (Catalog, error) {
	from, to := DayBounds(date)

	listCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	busy, err := s.calendar.ListBusy(listCtx, from, to)
	if err != nil {
		s.logger.Error("calendar read failed",
			zap.String("date", date.Format(DateLayout)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	return AvailableIntervals(s.catalog, date, busy)
}

// Reserve runs the availability check and then the two-phase write for one
// reservation. The check and the write are not serialized across requests:
// two concurrent reservations for the same slot can both pass the check
// before either writes. A lock or idempotency key would slot in right here.
func (s *Service) Reserve(ctx context.Context, r Reservation) error {
	free, err := s.Availability(ctx, r.Date)
	if err != nil {
		return err
	}
	if _, ok := free.Find(r.Slot.ID); !ok {
		return ErrSlotTaken
	}
	return s.record(ctx, r)
}
