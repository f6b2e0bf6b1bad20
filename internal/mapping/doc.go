// Package mapping holds the static Marathi to English dictionaries used to
// rename column headers and to translate well known cell values without a
// remote call. Mappings are built once and never mutated afterwards.
package mapping
