package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skdeore/rtopulse/config"
	"github.com/skdeore/rtopulse/internal/corpus"
	"github.com/skdeore/rtopulse/internal/grid"
)

// QuarterRow is one ranked line of a quarterly comparison table. Prior and
// Current month values are index-aligned with QuarterTable.Months.
type QuarterRow struct {
	Rank          int     `json:"rank"`
	Maker         string  `json:"maker"`
	PriorMonths   []int   `json:"prior_months"`
	PriorTotal    int     `json:"prior_total"`
	CurrentMonths []int   `json:"current_months"`
	CurrentTotal  int     `json:"current_total"`
	GrowthPct     float64 `json:"growth_pct"`
	Highlight     bool    `json:"highlight,omitempty"`
}

// QuarterTable compares one fiscal quarter across two consecutive fiscal
// years: the top makers ranked by prior-year volume, the aggregated
// remainder, and the total market (TIV) row.
type QuarterTable struct {
	Name    string       `json:"name"`
	Label   string       `json:"label"`
	Months  []string     `json:"months"`
	PriorFY string       `json:"prior_fy"`
	NextFY  string       `json:"current_fy"`
	Rows    []QuarterRow `json:"rows"`
	NoData  bool         `json:"no_data,omitempty"`
}

// QuarterlyComparison builds all four quarter tables for fiscal years
// F(baseYear) vs F(baseYear+1), optionally restricted to one region.
// Ranking is by prior-fiscal-year total descending; ranks 1-10 are listed
// individually, rank 11 aggregates the remainder, rank 12 is the market
// total. The remainder and market rows use the plain growth rule (zero
// base reports 0), unlike per-maker rows which report +100% from zero.
func QuarterlyComparison(snap *corpus.Snapshot, baseYear int, region, highlight string) []QuarterTable {
	records := filterRegion(snap.Records, region)
	priorFY, currentFY := baseYear, baseYear+1

	tables := make([]QuarterTable, 0, len(config.Quarters))
	for _, q := range config.Quarters {
		tables = append(tables, quarterTable(records, q, priorFY, currentFY, highlight))
	}
	return tables
}

func quarterTable(records []grid.Record, q config.Quarter, priorFY, currentFY int, highlight string) QuarterTable {
	out := QuarterTable{
		Name:    q.Name,
		Label:   fmt.Sprintf("%s (%s-%s) - %s vs %s", q.Name, titleMonth(q.Months[0]), titleMonth(q.Months[2]), fyLabel(priorFY), fyLabel(currentFY)),
		Months:  q.Months,
		PriorFY: fyLabel(priorFY),
		NextFY:  fyLabel(currentFY),
	}

	monthPos := make(map[string]int, len(q.Months))
	for i, m := range q.Months {
		monthPos[m] = i
	}

	type window struct {
		months []int
		total  int
	}
	var order []string
	prior := make(map[string]*window)
	current := make(map[string]*window)
	get := func(m map[string]*window, maker string) *window {
		w, ok := m[maker]
		if !ok {
			w = &window{months: make([]int, len(q.Months))}
			m[maker] = w
		}
		return w
	}
	seen := make(map[string]struct{})
	for _, r := range records {
		pos, inQuarter := monthPos[r.Month]
		if !inQuarter {
			continue
		}
		var w *window
		switch {
		case inFiscalYear(r, priorFY):
			w = get(prior, r.Maker)
		case inFiscalYear(r, currentFY):
			w = get(current, r.Maker)
		default:
			continue
		}
		if _, ok := seen[r.Maker]; !ok {
			seen[r.Maker] = struct{}{}
			order = append(order, r.Maker)
		}
		w.months[pos] += r.Count
		w.total += r.Count
	}

	// Makers are listed alphabetically before ranking so that equal prior
	// totals order predictably.
	sort.Strings(order)

	type makerSummary struct {
		maker   string
		prior   window
		current window
	}
	summaries := make([]makerSummary, 0, len(order))
	for _, maker := range order {
		ms := makerSummary{maker: maker, prior: window{months: make([]int, len(q.Months))}, current: window{months: make([]int, len(q.Months))}}
		if w := prior[maker]; w != nil {
			ms.prior = *w
		}
		if w := current[maker]; w != nil {
			ms.current = *w
		}
		if ms.prior.total == 0 && ms.current.total == 0 {
			continue
		}
		summaries = append(summaries, ms)
	}
	if len(summaries) == 0 {
		out.NoData = true
		return out
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].prior.total > summaries[j].prior.total })

	top := summaries
	if len(top) > config.DefaultTopMakers {
		top = summaries[:config.DefaultTopMakers]
	}
	for i, ms := range top {
		out.Rows = append(out.Rows, QuarterRow{
			Rank:          i + 1,
			Maker:         ms.maker,
			PriorMonths:   ms.prior.months,
			PriorTotal:    ms.prior.total,
			CurrentMonths: ms.current.months,
			CurrentTotal:  ms.current.total,
			GrowthPct:     makerGrowthPct(float64(ms.prior.total), float64(ms.current.total)),
			Highlight:     matchesHighlight(ms.maker, highlight),
		})
	}

	if len(summaries) > config.DefaultTopMakers {
		rem := QuarterRow{
			Rank:          config.DefaultTopMakers + 1,
			Maker:         "Remaining Mfg",
			PriorMonths:   make([]int, len(q.Months)),
			CurrentMonths: make([]int, len(q.Months)),
		}
		for _, ms := range summaries[config.DefaultTopMakers:] {
			for i := range q.Months {
				rem.PriorMonths[i] += ms.prior.months[i]
				rem.CurrentMonths[i] += ms.current.months[i]
			}
			rem.PriorTotal += ms.prior.total
			rem.CurrentTotal += ms.current.total
		}
		rem.GrowthPct = growthPct(float64(rem.PriorTotal), float64(rem.CurrentTotal))
		out.Rows = append(out.Rows, rem)
	}

	tiv := QuarterRow{
		Rank:          config.DefaultTopMakers + 2,
		Maker:         "TIV",
		PriorMonths:   make([]int, len(q.Months)),
		CurrentMonths: make([]int, len(q.Months)),
	}
	for _, ms := range summaries {
		for i := range q.Months {
			tiv.PriorMonths[i] += ms.prior.months[i]
			tiv.CurrentMonths[i] += ms.current.months[i]
		}
		tiv.PriorTotal += ms.prior.total
		tiv.CurrentTotal += ms.current.total
	}
	tiv.GrowthPct = growthPct(float64(tiv.PriorTotal), float64(tiv.CurrentTotal))
	out.Rows = append(out.Rows, tiv)

	return out
}

// titleMonth renders a month abbreviation in display case, e.g. Apr.
func titleMonth(m string) string {
	if len(m) < 2 {
		return m
	}
	return m[:1] + strings.ToLower(m[1:])
}
