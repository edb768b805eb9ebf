package schedule

import "errors"

var (
	// ErrUnknownSlot rejects ids that do not resolve to a catalog interval.
	// No provider call is made when this fires.
	ErrUnknownSlot = errors.New("unknown time slot")

	// ErrSlotTaken means the requested slot overlaps an existing calendar
	// event. Nothing was written.
	ErrSlotTaken = errors.New("time slot already reserved")

	// ErrProviderUnavailable means a provider read failed. Nothing was
	// written, so the whole request is safe to retry.
	ErrProviderUnavailable = errors.New("calendar provider unavailable")

	// ErrCalendarWrite means the event insert failed. No log row was
	// written, so the whole reservation is safe to retry.
	ErrCalendarWrite = errors.New("calendar event creation failed")

	// ErrLogWrite means the log append failed after the calendar event was
	// created. The two records are now out of sync; retrying would duplicate
	// the event, so the created event id travels with the error for out-of-
	// band reconciliation.
	ErrLogWrite = errors.New("reservation log append failed")
)
