// Package seeder imports dictionary datasets into the entries table:
// parse, validate, dedupe, batch insert. Parsers for the individual file
// formats live in subpackages and are pure functions.
package seeder

// Record is one raw dictionary pair as read from a dataset file, before
// validation and deduplication.
type Record struct {
	Banglish string
	English  string
	Source   string
}
