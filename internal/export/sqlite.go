// Package export writes localized tables into SQLite databases.
package export

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/csvlocalizer/internal/table"
)

// DefaultTable is used when no table name is given
const DefaultTable = "responses"

// SQLite writes a table to a SQLite database file. An existing table with
// the same name is replaced; other tables in the file are left alone.
func SQLite(dbPath, tableName string, t *table.Table) error {
	return write(dbPath, tableName, t, true)
}

// AppendSQLite adds the rows of a table to an existing SQLite table, creating
// it when missing. The columns must match the ones already stored.
func AppendSQLite(dbPath, tableName string, t *table.Table) error {
	return write(dbPath, tableName, t, false)
}

func write(dbPath, tableName string, t *table.Table, replace bool) error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("no columns to export")
	}

	ident := Identifier(tableName)
	if ident == "" {
		ident = DefaultTable
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	columns := ColumnNames(t.Headers)
	name := quoteIdent(ident)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	create := "CREATE TABLE IF NOT EXISTS"
	if replace {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + name); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
		create = "CREATE TABLE"
	}

	defs := make([]string, len(columns))
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
		defs[i] = quoted[i] + " TEXT"
	}
	if _, err := tx.Exec(fmt.Sprintf("%s %s (%s)", create, name, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		name, strings.Join(quoted, ", "), placeholders))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		args := make([]any, len(columns))
		for j := range columns {
			if j < len(row) && !row[j].Missing {
				args[j] = row[j].Value
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// ColumnNames turns headers into unique SQL column names
func ColumnNames(headers []string) []string {
	seen := make(map[string]int, len(headers))
	out := make([]string, len(headers))

	for i, h := range headers {
		name := Identifier(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		key := strings.ToLower(name)
		if n := seen[key]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[key]++
		out[i] = name
	}
	return out
}

// Identifier keeps letters, digits and underscores; everything else becomes
// an underscore. Runs of underscores collapse and a leading digit gets a
// prefix.
func Identifier(s string) string {
	var b strings.Builder
	lastUnderscore := false

	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}

	out := strings.Trim(b.String(), "_")
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "c_" + out
	}
	return out
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
