// Package grid implements the parsing heuristics that turn one raw
// spreadsheet grid into normalized registration records. Everything here is
// pure: the grid is an abstract [][]string with no file I/O attached, so the
// header-row scan, month-column mapping, and maker-column policy can be
// tested against synthetic grids.
package grid

import "github.com/skdeore/rtopulse/config"

// Grid is one sheet's cell values, row-major. Rows may be ragged; absent
// cells read as empty strings.
type Grid [][]string

// Record is the canonical unit produced by sheet parsing: one maker's
// registration count for one month in one region's report. Records are
// immutable once emitted; duplicate (year, region, maker, month) tuples are
// legal and are summed by every downstream aggregation.
type Record struct {
	CalYear int    `json:"cal_year"`
	Region  string `json:"region"`
	Maker   string `json:"maker"`
	Month   string `json:"month"`
	Count   int    `json:"count"`
}

var monthSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(config.Months))
	for _, mo := range config.Months {
		m[mo] = struct{}{}
	}
	return m
}()

// IsMonth reports whether s (already trimmed and upper-cased) is one of the
// twelve recognized month abbreviations.
func IsMonth(s string) bool {
	_, ok := monthSet[s]
	return ok
}

// MonthIndex returns the calendar position of a month abbreviation, or a
// sentinel past DEC for unknown labels so they sort last.
func MonthIndex(m string) int {
	for i, mo := range config.Months {
		if mo == m {
			return i
		}
	}
	return len(config.Months)
}
