package analytics

import (
	"github.com/skdeore/rtopulse/config"
	"github.com/skdeore/rtopulse/internal/corpus"
	"github.com/skdeore/rtopulse/internal/grid"
)

// GroupSplit carries one distribution group's weighted totals across the
// prior and current fiscal-year windows, with derived market-share figures.
// All totals are weighted sums and therefore fractional.
type GroupSplit struct {
	Group string `json:"group"`

	PriorAll    float64 `json:"prior_all"`
	CurrentAll  float64 `json:"current_all"`
	PriorHigh   float64 `json:"prior_highlighted"`
	CurrentHigh float64 `json:"current_highlighted"`

	// Market share of the highlighted maker within the whole market
	// (both groups combined), per window.
	PriorSharePct   float64 `json:"prior_share_pct"`
	CurrentSharePct float64 `json:"current_share_pct"`
	ShareChangePct  float64 `json:"share_change_pct"`
	GrowthPct       float64 `json:"growth_pct"`
}

// TerritorySplit is the Unnati-vs-PACL allocation view: each configured
// region's volumes weighted by its allocation percentages and summed per
// group, compared across two fiscal years.
type TerritorySplit struct {
	PriorFY string     `json:"prior_fy"`
	NextFY  string     `json:"current_fy"`
	Unnati  GroupSplit `json:"unnati"`
	PACL    GroupSplit `json:"pacl"`
	NoData  bool       `json:"no_data,omitempty"`
}

// windowTotals accumulates one fiscal window's plain and highlighted totals
// per region.
type windowTotals struct {
	all  map[string]int
	high map[string]int
}

// TerritoryAllocation computes the territory split for F(baseYear) vs
// F(baseYear+1), optionally restricted to one region. Each region's
// all-maker and highlighted-maker totals are weighted by that region's
// group percentages and summed across the allocation table.
func TerritoryAllocation(snap *corpus.Snapshot, alloc map[string]config.Allocation, baseYear int, region, highlight string) TerritorySplit {
	records := filterRegion(snap.Records, region)
	priorFY, currentFY := baseYear, baseYear+1

	out := TerritorySplit{
		PriorFY: fyLabel(priorFY),
		NextFY:  fyLabel(currentFY),
		Unnati:  GroupSplit{Group: "Unnati"},
		PACL:    GroupSplit{Group: "PACL"},
	}
	if len(records) == 0 {
		out.NoData = true
		return out
	}

	prior := collectWindow(records, priorFY, highlight)
	current := collectWindow(records, currentFY, highlight)

	for code, a := range alloc {
		uw := float64(a.UnnatiPct) / 100
		pw := float64(a.PACLPct) / 100

		out.Unnati.PriorAll += float64(prior.all[code]) * uw
		out.Unnati.PriorHigh += float64(prior.high[code]) * uw
		out.Unnati.CurrentAll += float64(current.all[code]) * uw
		out.Unnati.CurrentHigh += float64(current.high[code]) * uw

		out.PACL.PriorAll += float64(prior.all[code]) * pw
		out.PACL.PriorHigh += float64(prior.high[code]) * pw
		out.PACL.CurrentAll += float64(current.all[code]) * pw
		out.PACL.CurrentHigh += float64(current.high[code]) * pw
	}

	priorMarket := out.Unnati.PriorAll + out.PACL.PriorAll
	currentMarket := out.Unnati.CurrentAll + out.PACL.CurrentAll

	for _, g := range []*GroupSplit{&out.Unnati, &out.PACL} {
		g.PriorSharePct = sharePct(g.PriorHigh, priorMarket)
		g.CurrentSharePct = sharePct(g.CurrentHigh, currentMarket)
		g.ShareChangePct = g.CurrentSharePct - g.PriorSharePct
		g.GrowthPct = growthPct(g.PriorHigh, g.CurrentHigh)
	}
	return out
}

func collectWindow(records []grid.Record, fy int, highlight string) windowTotals {
	w := windowTotals{all: make(map[string]int), high: make(map[string]int)}
	for _, r := range records {
		if !inFiscalYear(r, fy) {
			continue
		}
		w.all[r.Region] += r.Count
		if matchesHighlight(r.Maker, highlight) {
			w.high[r.Region] += r.Count
		}
	}
	return w
}
