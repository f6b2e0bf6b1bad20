package table

import (
	"context"
	"path/filepath"
	"strings"
)

// LoadOptions configures inputs that are not plain files
type LoadOptions struct {
	SheetRange      string // A1 range for sheets:// inputs
	CredentialsFile string // Google service account JSON for sheets:// inputs
}

// Load reads a table from a CSV file, an .xlsx workbook or a sheets:// source
func Load(ctx context.Context, src string, opts LoadOptions) (*Table, error) {
	if IsSheetsSource(src) {
		id, err := ParseSheetsSource(src)
		if err != nil {
			return nil, err
		}
		return LoadSheet(ctx, id, opts.SheetRange, opts.CredentialsFile)
	}

	if isXLSX(src) {
		return LoadXLSX(src)
	}
	return LoadCSV(src)
}

// Save writes a table as .xlsx when the path says so, CSV otherwise
func Save(path string, t *Table) error {
	if isXLSX(path) {
		return SaveXLSX(path, t)
	}
	return SaveCSV(path, t)
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
