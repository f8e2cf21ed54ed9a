// Package record defines the label record data model and the spreadsheet
// sources that produce ordered record sequences from CSV and TSV files.
package record

import "strings"

// Record is one part row from a spreadsheet. Name is required and doubles
// as the output filename stem; every other field may be empty.
type Record struct {
	Name        string
	Description string
	TopSymbol   string
	SideSymbol  string
	ReorderURL  string
}

// Columns lists the spreadsheet columns a record source must provide.
// A header missing any of these is a fatal startup error, not a
// per-record error.
var Columns = []string{"name", "description", "top_symbol", "side_symbol", "reorder_url"}

// normalize trims surrounding whitespace from every field and lowercases
// the symbol tokens, mirroring how rows are cleaned on ingest.
func (r *Record) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.TopSymbol = strings.ToLower(strings.TrimSpace(r.TopSymbol))
	r.SideSymbol = strings.ToLower(strings.TrimSpace(r.SideSymbol))
	r.ReorderURL = strings.TrimSpace(r.ReorderURL)
}
