package localize

import (
	"context"
	"fmt"

	"codeberg.org/snonux/csvlocalizer/internal/mapping"
	"codeberg.org/snonux/csvlocalizer/internal/table"
)

// Stats counts what happened to the cells of a table
type Stats struct {
	Rows          int
	Columns       int
	TargetColumns int
	Missing       int
	Trivial       int
	Dictionary    int
	Remote        int
	Fallback      int
	Filled        int // missing cells outside target columns set to ""
}

func (s *Stats) count(src Source) {
	switch src {
	case SourceMissing:
		s.Missing++
	case SourceTrivial:
		s.Trivial++
	case SourceDictionary:
		s.Dictionary++
	case SourceRemote:
		s.Remote++
	case SourceFallback:
		s.Fallback++
	}
}

// Observer is told about every resolved cell of a target column
type Observer func(column string, row int, original table.Cell, res Result)

// Localizer rewrites a whole table in place
type Localizer struct {
	headers  *mapping.HeaderMapping
	values   *ValueTranslator
	match    HeaderMatch
	observer Observer
}

// NewLocalizer creates a localizer from a header mapping and a value resolver
func NewLocalizer(headers *mapping.HeaderMapping, values *ValueTranslator, match HeaderMatch) *Localizer {
	return &Localizer{
		headers: headers,
		values:  values,
		match:   match,
	}
}

// OnResolve registers fn to be called after each target cell is resolved
func (l *Localizer) OnResolve(fn Observer) {
	l.observer = fn
}

// Localize renames the headers, resolves every cell of the translation
// target columns (column by column, top to bottom) and sets all remaining
// missing cells to "". The row and column counts never change. A cancelled
// context stops the run with ctx.Err().
func (l *Localizer) Localize(ctx context.Context, t *table.Table) (*Stats, error) {
	stats := &Stats{
		Rows:    t.NumRows(),
		Columns: t.NumColumns(),
	}

	if err := t.SetHeaders(NormalizeHeaders(t.Headers, l.headers, l.match)); err != nil {
		return nil, fmt.Errorf("failed to rename headers: %w", err)
	}

	for j, name := range t.Headers {
		if !l.headers.IsTarget(name) {
			continue
		}
		stats.TargetColumns++

		for i, row := range t.Rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			original := row[j]
			res := l.values.Resolve(ctx, original)
			row[j] = table.Text(res.Text)
			stats.count(res.Source)

			if l.observer != nil {
				l.observer(name, i, original, res)
			}
		}
	}

	// a cancel during the last remote call leaves no cell to notice it
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats.Filled = t.FillMissing("")
	return stats, nil
}
