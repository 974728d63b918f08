// Package gsheets reads and writes the first worksheet of a Google Sheets spreadsheet.
package gsheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

type Service struct {
	google           *sheets.Service
	valueInputOption string
}

// Worksheet is the first sheet of a spreadsheet, addressed by its title.
type Worksheet struct {
	google           *sheets.Service
	spreadsheet      string
	title            string
	valueInputOption string
}

// NewService wraps a Sheets API client. valueInputOption ('RAW' or 'USER_ENTERED') controls how
// written values are interpreted.
func NewService(google *sheets.Service, valueInputOption string) *Service {
	return &Service{
		google:           google,
		valueInputOption: valueInputOption,
	}
}

// Open returns the first worksheet of the spreadsheet.
func (s *Service) Open(ctx context.Context, spreadsheet string) (*Worksheet, error) {
	response, err := s.google.Spreadsheets.Get(spreadsheet).
		Fields("spreadsheetId,sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet %v (%w)", spreadsheet, err)
	}

	if len(response.Sheets) == 0 || response.Sheets[0].Properties == nil {
		return nil, fmt.Errorf("spreadsheet %v has no worksheets", spreadsheet)
	}

	return &Worksheet{
		google:           s.google,
		spreadsheet:      response.SpreadsheetId,
		title:            response.Sheets[0].Properties.Title,
		valueInputOption: s.valueInputOption,
	}, nil
}

// Read returns the values of the first worksheet of the spreadsheet.
func (s *Service) Read(ctx context.Context, spreadsheet string) ([][]string, error) {
	worksheet, err := s.Open(ctx, spreadsheet)
	if err != nil {
		return nil, err
	}

	return worksheet.Values(ctx)
}

func (w *Worksheet) Title() string {
	return w.title
}

// Values returns every non-empty row of the worksheet as displayed.
func (w *Worksheet) Values(ctx context.Context) ([][]string, error) {
	response, err := w.google.Spreadsheets.Values.Get(w.spreadsheet, Range(w.title, "")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet '%v' (%w)", w.title, err)
	}

	return toStrings(response.Values), nil
}

// Clear removes all values (but not formatting) from the worksheet.
func (w *Worksheet) Clear(ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{Range(w.title, "")},
	}

	if _, err := w.google.Spreadsheets.Values.BatchClear(w.spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear sheet '%v' (%w)", w.title, err)
	}

	return nil
}

// Update writes rows to the worksheet starting at A1.
func (w *Worksheet) Update(ctx context.Context, rows [][]string) error {
	values := sheets.ValueRange{
		Values: toValues(rows),
	}

	if _, err := w.google.Spreadsheets.Values.Update(w.spreadsheet, Range(w.title, "A1"), &values).
		ValueInputOption(w.valueInputOption).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error writing to sheet '%v' (%w)", w.title, err)
	}

	return nil
}

// Append inserts rows after the last row with data.
func (w *Worksheet) Append(ctx context.Context, rows [][]string) error {
	values := sheets.ValueRange{
		Values: toValues(rows),
	}

	if _, err := w.google.Spreadsheets.Values.Append(w.spreadsheet, Range(w.title, ""), &values).
		ValueInputOption(w.valueInputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error appending to sheet '%v' (%w)", w.title, err)
	}

	return nil
}

// Range returns the A1 notation for cells on the named sheet, or for the whole sheet if cells
// is empty.
func Range(title, cells string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if cells == "" {
		return quoted
	}

	return quoted + "!" + cells
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		record := make([]string, len(row))
		for i, v := range row {
			if v != nil {
				record[i] = fmt.Sprintf("%v", v)
			}
		}

		rows = append(rows, record)
	}

	return rows
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		record := make([]interface{}, len(row))
		for i, v := range row {
			record[i] = v
		}

		values = append(values, record)
	}

	return values
}
