package table

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsScheme prefixes inputs that name a Google spreadsheet instead of a file
const SheetsScheme = "sheets://"

// DefaultSheetRange covers the whole of the first sheet's used columns
const DefaultSheetRange = "A:ZZ"

// IsSheetsSource reports whether src names a Google spreadsheet
func IsSheetsSource(src string) bool {
	return strings.HasPrefix(src, SheetsScheme)
}

// ParseSheetsSource extracts the spreadsheet ID from a sheets:// source
func ParseSheetsSource(src string) (string, error) {
	if !IsSheetsSource(src) {
		return "", fmt.Errorf("not a sheets source: %s", src)
	}
	id := strings.Trim(strings.TrimPrefix(src, SheetsScheme), "/")
	if id == "" {
		return "", fmt.Errorf("missing spreadsheet ID in %s", src)
	}
	return id, nil
}

// LoadSheet fetches a range of a Google spreadsheet. The first row of the
// range is the header row.
func LoadSheet(ctx context.Context, spreadsheetID, readRange, credentialsFile string) (*Table, error) {
	if readRange == "" {
		readRange = DefaultSheetRange
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsReadonlyScope))

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	resp, err := srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", spreadsheetID, err)
	}

	return FromValues(resp.Values)
}

// FromValues converts a Sheets API value range into a table
func FromValues(values [][]interface{}) (*Table, error) {
	records := make([][]string, len(values))
	for i, row := range values {
		record := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				record[j] = fmt.Sprint(v)
			}
		}
		records[i] = record
	}
	return FromRecords(records)
}
