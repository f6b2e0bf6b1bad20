// Package processor drives a localization run. It loads the input table,
// renames headers and translates values through the localize package,
// writes the result and the optional glossary and SQLite export, and
// prints progress and summaries. Batch files are processed here as well.
package processor
