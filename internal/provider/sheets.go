package provider

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// GoogleSheet implements schedule.LogProvider by appending rows to one
// spreadsheet range. The log is append-only; nothing here updates or
// deletes.
type GoogleSheet struct {
	srv           *sheets.Service
	spreadsheetID string
	writeRange    string
}

func NewGoogleSheet(srv *sheets.Service, spreadsheetID, writeRange string) *GoogleSheet {
	return &GoogleSheet{srv: srv, spreadsheetID: spreadsheetID, writeRange: writeRange}
}

func (g *GoogleSheet) AppendRow(ctx context.Context, row []interface{}) error {
	body := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := g.srv.Spreadsheets.Values.
		Append(g.spreadsheetID, g.writeRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
