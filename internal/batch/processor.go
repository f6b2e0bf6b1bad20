package batch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Job is one file to localize
type Job struct {
	Input  string
	Output string // empty means the default output path
	Line   int
}

// ReadBatchFile reads localization jobs from a file.
// Supports formats:
// - Input only: "survey.csv" (output next to it as survey_en.csv)
// - With output: "survey.csv = out/survey.csv"
// Blank lines and lines starting with '#' are ignored. Relative paths are
// resolved against the directory of the batch file.
func ReadBatchFile(filename string) ([]Job, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	base := filepath.Dir(filename)

	var jobs []Job
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		input, output := line, ""
		if before, after, found := strings.Cut(line, "="); found {
			input = strings.TrimSpace(before)
			output = strings.TrimSpace(after)
			if input == "" {
				return nil, fmt.Errorf("line %d: missing input file", lineNo)
			}
			if output == "" {
				return nil, fmt.Errorf("line %d: missing output file after '='", lineNo)
			}
		}

		jobs = append(jobs, Job{
			Input:  resolve(base, input),
			Output: resolve(base, output),
			Line:   lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return jobs, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "sheets://") {
		return path
	}
	return filepath.Join(base, path)
}
