package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/csvlocalizer/internal"
	"codeberg.org/snonux/csvlocalizer/internal/archive"
	"codeberg.org/snonux/csvlocalizer/internal/batch"
	"codeberg.org/snonux/csvlocalizer/internal/cli"
	"codeberg.org/snonux/csvlocalizer/internal/export"
	"codeberg.org/snonux/csvlocalizer/internal/localize"
	"codeberg.org/snonux/csvlocalizer/internal/mapping"
	"codeberg.org/snonux/csvlocalizer/internal/table"
	"codeberg.org/snonux/csvlocalizer/internal/translation"
)

// Processor handles localizing files
type Processor struct {
	flags      *cli.Flags
	translator translation.Translator
	mappings   *mapping.Set
	match      localize.HeaderMatch
	glossary   *translation.Glossary
	logger     *slog.Logger

	// set during a batch once the first job has created the SQLite table
	sqliteAppend bool
}

// NewProcessor creates a new file processor. Mappings come from
// flags.MappingsFile when set, the built-in defaults otherwise.
func NewProcessor(flags *cli.Flags, translator translation.Translator, logger *slog.Logger) (*Processor, error) {
	match, err := localize.ParseHeaderMatch(flags.HeaderMatch)
	if err != nil {
		return nil, err
	}

	mappings := mapping.Default()
	if flags.MappingsFile != "" {
		mappings, err = mapping.LoadFile(flags.MappingsFile)
		if err != nil {
			return nil, err
		}
	}

	return &Processor{
		flags:      flags,
		translator: translator,
		mappings:   mappings,
		match:      match,
		glossary:   translation.NewGlossary(),
		logger:     logger,
	}, nil
}

// Process localizes one input and writes the result to output. An empty
// output means the default <input>_en.csv. Only input, output and
// cancellation errors are returned; failed translations keep the original
// value and are counted in the stats.
func (p *Processor) Process(ctx context.Context, input, output string) (*localize.Stats, error) {
	if output == "" {
		output = internal.DefaultOutputPath(input)
	}
	if sameFile(input, output) {
		return nil, fmt.Errorf("output %s would overwrite the input", output)
	}

	start := time.Now()
	logger := p.logger.With(slog.String("input", input), slog.String("output", output))

	tbl, err := table.Load(ctx, input, table.LoadOptions{
		SheetRange:      p.flags.SheetRange,
		CredentialsFile: p.flags.CredentialsFile,
	})
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %d rows and %d columns from %s\n", tbl.NumRows(), tbl.NumColumns(), input)

	values := localize.NewValueTranslator(p.mappings.Values, p.translator, p.flags.SourceLang, p.flags.TargetLang)
	loc := localize.NewLocalizer(p.mappings.Headers, values, p.match)
	loc.OnResolve(func(column string, row int, original table.Cell, res localize.Result) {
		switch res.Source {
		case localize.SourceRemote:
			p.glossary.Add(strings.TrimSpace(original.Value), res.Text)
			logger.Debug("translated value",
				slog.String("column", column),
				slog.Int("row", row+1),
				slog.String("value", original.Value),
				slog.String("translation", res.Text))
		case localize.SourceFallback:
			logger.Warn("translation failed, keeping original value",
				slog.String("column", column),
				slog.Int("row", row+1),
				slog.String("value", original.Value),
				slog.Any("error", res.Err))
		}
	})

	stats, err := loc.Localize(ctx, tbl)
	if err != nil {
		return nil, fmt.Errorf("localization of %s stopped: %w", input, err)
	}
	// nothing is archived or written once the run was cancelled
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("localization of %s stopped: %w", input, err)
	}

	if p.flags.Archive {
		if _, err := archive.ArchiveFile(output); err != nil {
			return nil, err
		}
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := table.Save(output, tbl); err != nil {
		return nil, err
	}

	if p.flags.SQLiteFile != "" {
		exportSQLite := export.SQLite
		if p.sqliteAppend {
			exportSQLite = export.AppendSQLite
		}
		if err := exportSQLite(p.flags.SQLiteFile, p.flags.SQLiteTable, tbl); err != nil {
			return nil, fmt.Errorf("failed to export to SQLite: %w", err)
		}
		fmt.Printf("Exported to SQLite: %s\n", p.flags.SQLiteFile)
	}

	if p.flags.GlossaryFile != "" {
		if err := p.glossary.Save(p.flags.GlossaryFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	fmt.Printf("Cleaned and translated CSV saved to %s\n", output)
	printStats(stats)

	logger.Info("localized file",
		slog.Int("rows", stats.Rows),
		slog.Int("columns", stats.Columns),
		slog.Int("remote", stats.Remote),
		slog.Int("fallback", stats.Fallback),
		slog.Duration("duration", time.Since(start)))

	return stats, nil
}

// ProcessBatch processes every job listed in the batch file. Failing jobs
// are reported and skipped; an error is returned if any failed. With SQLite
// export the first successful job replaces the table and later jobs append
// to it.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	jobs, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Track statistics
	processedCount := 0
	errorCount := 0
	total := &localize.Stats{}

	p.sqliteAppend = false
	defer func() { p.sqliteAppend = false }()

	for i, job := range jobs {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(jobs), job.Input)

		stats, err := p.Process(ctx, job.Input, job.Output)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			fmt.Fprintf(os.Stderr, "Error processing '%s' (line %d): %v\n", job.Input, job.Line, err)
			p.logger.Error("batch job failed", slog.String("input", job.Input), slog.Int("line", job.Line), slog.Any("error", err))
			errorCount++
			continue
		}

		processedCount++
		addStats(total, stats)
		p.sqliteAppend = p.flags.SQLiteFile != ""
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total files: %d\n", len(jobs))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("Rows: %d\n", total.Rows)
	fmt.Printf("Translated remotely: %d\n", total.Remote)
	if total.Fallback > 0 {
		fmt.Printf("Kept original (translation failed): %d\n", total.Fallback)
	}
	fmt.Printf("================================\n")

	if errorCount > 0 {
		return fmt.Errorf("%d of %d files failed", errorCount, len(jobs))
	}
	return nil
}

// Glossary returns the remote translations collected so far
func (p *Processor) Glossary() *translation.Glossary {
	return p.glossary
}

func printStats(s *localize.Stats) {
	fmt.Printf("  Rows: %d, columns: %d (%d translated)\n", s.Rows, s.Columns, s.TargetColumns)
	fmt.Printf("  Values: %d from dictionary, %d translated remotely, %d unchanged, %d missing\n",
		s.Dictionary, s.Remote, s.Trivial, s.Missing)
	if s.Fallback > 0 {
		fmt.Printf("  Warning: %d values kept in the original language (translation failed)\n", s.Fallback)
	}
}

func addStats(total, s *localize.Stats) {
	total.Rows += s.Rows
	total.Columns += s.Columns
	total.TargetColumns += s.TargetColumns
	total.Missing += s.Missing
	total.Trivial += s.Trivial
	total.Dictionary += s.Dictionary
	total.Remote += s.Remote
	total.Fallback += s.Fallback
	total.Filled += s.Filled
}

func sameFile(a, b string) bool {
	if table.IsSheetsSource(a) {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
