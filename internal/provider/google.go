package provider

import (
	"context"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Clients bundles the Google API services. Built once at startup and shared
// read-only by all requests.
type Clients struct {
	Calendar *calendar.Service
	Sheets   *sheets.Service
}

// NewClients builds the Calendar and Sheets services from a service-account
// key file.
func NewClients(ctx context.Context, credentialsFile string) (*Clients, error) {
	calSrv, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarEventsScope))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}

	sheetSrv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Clients{Calendar: calSrv, Sheets: sheetSrv}, nil
}
