// Package analytics derives the dashboard views from a corpus snapshot:
// the monthly pivot, the fiscal-quarter year-over-year comparison, and the
// Unnati/PACL territory split. All views share one numeric policy: division
// by a zero denominator yields 0, never NaN or a fault.
package analytics

import (
	"fmt"
	"strings"

	"github.com/skdeore/rtopulse/internal/grid"
)

// sharePct returns part/total*100, or 0 when total is 0.
func sharePct(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

// growthPct returns the plain growth rate (current-prior)/prior*100, or 0
// when prior is 0. Used for the remainder and market-total rows and the
// territory split.
func growthPct(prior, current float64) float64 {
	if prior <= 0 {
		return 0
	}
	return (current - prior) / prior * 100
}

// makerGrowthPct applies the per-maker display convention: growth from a
// zero base is reported as +100% when the current window has volume, not as
// "no data". This asymmetry with growthPct is deliberate.
func makerGrowthPct(prior, current float64) float64 {
	if prior > 0 {
		return (current - prior) / prior * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// fyLabel renders the short fiscal-year name, e.g. F26 for F(2026).
func fyLabel(year int) string {
	return fmt.Sprintf("F%02d", year%100)
}

// inFiscalYear reports whether a record falls inside fiscal year F(Y):
// April of Y-1 through March of Y.
func inFiscalYear(r grid.Record, fy int) bool {
	idx := grid.MonthIndex(r.Month)
	if r.CalYear == fy-1 {
		return idx >= grid.MonthIndex("APR")
	}
	if r.CalYear == fy {
		return idx <= grid.MonthIndex("MAR")
	}
	return false
}

// matchesHighlight reports whether a maker name matches the highlighted
// maker by case-insensitive substring.
func matchesHighlight(maker, highlight string) bool {
	if highlight == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(maker), strings.ToUpper(highlight))
}
