package analytics

import (
	"sort"

	"github.com/skdeore/rtopulse/internal/corpus"
	"github.com/skdeore/rtopulse/internal/grid"
)

// PivotFilter restricts the monthly pivot. Zero values mean no restriction;
// Region is matched after upper-casing.
type PivotFilter struct {
	Year   int    `json:"year,omitempty"`
	Region string `json:"region,omitempty"`
}

// PivotRow is one maker's counts across the observed months. Counts and
// SharePct are index-aligned with PivotTable.Months; SharePct holds the
// maker's share of each month's column total.
type PivotRow struct {
	Maker     string    `json:"maker"`
	Counts    []int     `json:"counts"`
	SharePct  []float64 `json:"share_pct"`
	Total     int       `json:"total"`
	Highlight bool      `json:"highlight,omitempty"`
}

// PivotTable is the maker-by-month view: rows ordered by total descending
// (ties keep first-encounter order) plus one grand-total row whose SharePct
// holds each month's share of the grand total.
type PivotTable struct {
	Months     []string   `json:"months"`
	Rows       []PivotRow `json:"rows"`
	TotalRow   PivotRow   `json:"total_row"`
	GrandTotal int        `json:"grand_total"`
	// NoData marks a filter combination with no matching records, distinct
	// from a globally empty corpus (see Snapshot.Empty).
	NoData bool `json:"no_data,omitempty"`
}

// MonthlyPivot groups the corpus by maker over the observed months, summing
// duplicate (year, region, maker, month) tuples rather than overwriting.
func MonthlyPivot(snap *corpus.Snapshot, filter PivotFilter, highlight string) PivotTable {
	months := snap.MonthsOrDefault()
	out := PivotTable{Months: months}

	monthPos := make(map[string]int, len(months))
	for i, m := range months {
		monthPos[m] = i
	}

	var (
		order  []string
		counts = make(map[string][]int)
	)
	for _, r := range snap.Records {
		if filter.Year != 0 && r.CalYear != filter.Year {
			continue
		}
		if filter.Region != "" && r.Region != filter.Region {
			continue
		}
		pos, ok := monthPos[r.Month]
		if !ok {
			continue
		}
		row, seen := counts[r.Maker]
		if !seen {
			row = make([]int, len(months))
			counts[r.Maker] = row
			order = append(order, r.Maker)
		}
		row[pos] += r.Count
	}
	if len(order) == 0 {
		out.NoData = true
		return out
	}

	rows := make([]PivotRow, 0, len(order))
	for _, maker := range order {
		c := counts[maker]
		total := 0
		for _, n := range c {
			total += n
		}
		rows = append(rows, PivotRow{
			Maker:     maker,
			Counts:    c,
			Total:     total,
			Highlight: matchesHighlight(maker, highlight),
		})
	}
	// Stable sort keeps encounter order for equal totals.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })

	monthTotals := make([]int, len(months))
	grand := 0
	for _, row := range rows {
		for i, n := range row.Counts {
			monthTotals[i] += n
		}
		grand += row.Total
	}
	for ri := range rows {
		shares := make([]float64, len(months))
		for i, n := range rows[ri].Counts {
			shares[i] = sharePct(float64(n), float64(monthTotals[i]))
		}
		rows[ri].SharePct = shares
	}

	totalShares := make([]float64, len(months))
	for i, n := range monthTotals {
		totalShares[i] = sharePct(float64(n), float64(grand))
	}

	out.Rows = rows
	out.TotalRow = PivotRow{Maker: "TOTAL", Counts: monthTotals, SharePct: totalShares, Total: grand}
	out.GrandTotal = grand
	return out
}

// filterRegion returns the records matching an optional region code; an
// empty region passes everything through.
func filterRegion(records []grid.Record, region string) []grid.Record {
	if region == "" {
		return records
	}
	out := make([]grid.Record, 0, len(records))
	for _, r := range records {
		if r.Region == region {
			out = append(out, r)
		}
	}
	return out
}
