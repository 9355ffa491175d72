package grid

import (
	"sort"
	"strings"

	"github.com/skdeore/rtopulse/config"
)

// RejectReason classifies why a whole sheet contributed no records.
type RejectReason string

const (
	RejectNone        RejectReason = ""
	RejectEmptyGrid   RejectReason = "empty_grid"
	RejectNoHeaderRow RejectReason = "no_header_row"
	RejectNoMonthCols RejectReason = "no_month_columns"
	RejectNoRegion    RejectReason = "no_region_code"
)

// RowSkipReason classifies why a single data row was skipped.
type RowSkipReason string

const (
	RowSkipBlankMaker RowSkipReason = "blank_maker"
	RowSkipShortMaker RowSkipReason = "short_maker"
)

// RowSkip records one skipped data row for diagnostics.
type RowSkip struct {
	Row    int
	Reason RowSkipReason
}

// Report describes how a sheet was interpreted. The public contract
// collapses every skip to "contributes nothing"; the report exists so the
// loader can log why a file or row produced no data.
type Report struct {
	Reject    RejectReason
	HeaderRow int
	MakerCol  int
	MonthCols map[int]string
	RowSkips  []RowSkip
	Records   int
}

// HeaderRow scans at most the first maxScan rows for the first row holding
// at least one month label and returns its index, or -1 when none is found.
func HeaderRow(g Grid, maxScan int) int {
	limit := len(g)
	if limit > maxScan {
		limit = maxScan
	}
	for r := 0; r < limit; r++ {
		for _, cell := range g[r] {
			if IsMonth(strings.ToUpper(strings.TrimSpace(cell))) {
				return r
			}
		}
	}
	return -1
}

// MonthColumns maps each column of the header row whose cell is a month
// abbreviation to that month.
func MonthColumns(row []string) map[int]string {
	cols := make(map[int]string)
	for c, cell := range row {
		s := strings.ToUpper(strings.TrimSpace(cell))
		if IsMonth(s) {
			cols[c] = s
		}
	}
	return cols
}

// MakerColumn locates the maker-name column: the column immediately left of
// the lowest-indexed month column. When the first month column sits at index
// 0 that would be column -1, and the historical behavior falls back to
// column 1 instead. The fallback silently mislocates the maker column for
// such layouts; it is preserved as-is for compatibility with the reports
// already in circulation.
func MakerColumn(monthCols map[int]string) int {
	first := -1
	for c := range monthCols {
		if first == -1 || c < first {
			first = c
		}
	}
	maker := first - 1
	if maker < 0 {
		maker = 1
	}
	return maker
}

// CollapseSpaces trims and collapses internal whitespace runs to single
// spaces, normalizing maker names like "MARUTI  SUZUKI \t INDIA".
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseSheet normalizes one sheet into records. It never fails: grids with
// no recognizable header, no month columns, or no region token in the source
// name yield an empty slice with the reject reason set in the report.
// Zero counts are emitted as real records; a registered month with zero
// registrations is a data point, not absent data.
func ParseSheet(g Grid, calYear int, source string) ([]Record, Report) {
	rep := Report{Reject: RejectNone, HeaderRow: -1, MakerCol: -1}
	if len(g) == 0 {
		rep.Reject = RejectEmptyGrid
		return nil, rep
	}

	hdr := HeaderRow(g, config.DefaultHeaderScanRows)
	if hdr < 0 {
		rep.Reject = RejectNoHeaderRow
		return nil, rep
	}
	rep.HeaderRow = hdr

	monthCols := MonthColumns(g[hdr])
	if len(monthCols) == 0 {
		rep.Reject = RejectNoMonthCols
		return nil, rep
	}
	rep.MonthCols = monthCols
	rep.MakerCol = MakerColumn(monthCols)

	region, ok := ExtractRegion(source)
	if !ok {
		rep.Reject = RejectNoRegion
		return nil, rep
	}

	// Emit month cells in ascending column order so record order is
	// deterministic for identical input.
	cols := make([]int, 0, len(monthCols))
	for c := range monthCols {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	var records []Record
	for r := hdr + 1; r < len(g); r++ {
		row := g[r]
		var raw string
		if rep.MakerCol < len(row) {
			raw = row[rep.MakerCol]
		}
		if strings.TrimSpace(raw) == "" {
			rep.RowSkips = append(rep.RowSkips, RowSkip{Row: r, Reason: RowSkipBlankMaker})
			continue
		}
		maker := CollapseSpaces(raw)
		if len(maker) < 2 {
			rep.RowSkips = append(rep.RowSkips, RowSkip{Row: r, Reason: RowSkipShortMaker})
			continue
		}
		for _, c := range cols {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			records = append(records, Record{
				CalYear: calYear,
				Region:  region,
				Maker:   maker,
				Month:   monthCols[c],
				Count:   CoerceCount(cell),
			})
		}
	}
	rep.Records = len(records)
	return records, rep
}
