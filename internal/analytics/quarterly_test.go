package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skdeore/rtopulse/internal/grid"
)

func TestMakerGrowthConvention(t *testing.T) {
	// Zero-base growth reports +100% when the current window has volume.
	require.Equal(t, 100.0, makerGrowthPct(0, 50))
	require.Equal(t, 0.0, makerGrowthPct(0, 0))
	require.Equal(t, -50.0, makerGrowthPct(200, 100))
	require.Equal(t, 25.0, makerGrowthPct(400, 500))

	// The aggregate rows use the plain rule: zero base reports 0.
	require.Equal(t, 0.0, growthPct(0, 50))
	require.Equal(t, -50.0, growthPct(200, 100))
}

func TestFiscalYearWindow(t *testing.T) {
	// F(2026) spans APR 2025 .. MAR 2026.
	require.True(t, inFiscalYear(rec(2025, "MH27", "X", "APR", 1), 2026))
	require.True(t, inFiscalYear(rec(2025, "MH27", "X", "DEC", 1), 2026))
	require.True(t, inFiscalYear(rec(2026, "MH27", "X", "JAN", 1), 2026))
	require.True(t, inFiscalYear(rec(2026, "MH27", "X", "MAR", 1), 2026))

	require.False(t, inFiscalYear(rec(2025, "MH27", "X", "MAR", 1), 2026))
	require.False(t, inFiscalYear(rec(2026, "MH27", "X", "APR", 1), 2026))
	require.False(t, inFiscalYear(rec(2024, "MH27", "X", "JUN", 1), 2026))
}

func TestQuarterlyComparisonRows(t *testing.T) {
	snap := snapOf(
		// Q1 of F25: Apr-Jun 2024. Q1 of F26: Apr-Jun 2025.
		rec(2024, "MH27", "MAHINDRA", "APR", 100),
		rec(2024, "MH27", "MAHINDRA", "MAY", 50),
		rec(2025, "MH27", "MAHINDRA", "APR", 120),
		rec(2024, "MH27", "TATA", "APR", 200),
		rec(2025, "MH27", "TATA", "APR", 100),
		// Maker with prior volume only.
		rec(2024, "MH27", "FORCE", "JUN", 10),
	)
	tables := QuarterlyComparison(snap, 2025, "", "MAHINDRA")
	require.Len(t, tables, 4)

	q1 := tables[0]
	require.Equal(t, "Q1", q1.Name)
	require.Equal(t, "F25", q1.PriorFY)
	require.Equal(t, "F26", q1.NextFY)
	require.Equal(t, []string{"APR", "MAY", "JUN"}, q1.Months)

	// Ranked by prior total descending: TATA 200, MAHINDRA 150, FORCE 10,
	// then the TIV market-total row at rank 12.
	require.Len(t, q1.Rows, 4)
	require.Equal(t, "TATA", q1.Rows[0].Maker)
	require.Equal(t, 1, q1.Rows[0].Rank)
	require.InDelta(t, -50.0, q1.Rows[0].GrowthPct, 0.001)

	require.Equal(t, "MAHINDRA", q1.Rows[1].Maker)
	require.True(t, q1.Rows[1].Highlight)
	require.Equal(t, []int{100, 50, 0}, q1.Rows[1].PriorMonths)
	require.Equal(t, 150, q1.Rows[1].PriorTotal)
	require.Equal(t, 120, q1.Rows[1].CurrentTotal)
	require.InDelta(t, -20.0, q1.Rows[1].GrowthPct, 0.001)

	tiv := q1.Rows[3]
	require.Equal(t, "TIV", tiv.Maker)
	require.Equal(t, 12, tiv.Rank)
	require.Equal(t, 360, tiv.PriorTotal)
	require.Equal(t, 220, tiv.CurrentTotal)

	// Q2 saw no records at all.
	require.True(t, tables[1].NoData)
}

func TestQuarterlyTopTenRemainderSplit(t *testing.T) {
	snap := snapOf(makeQ1Makers(15)...)

	tables := QuarterlyComparison(snap, 2025, "", "")
	q1 := tables[0]

	// 10 ranked rows + remainder + market total.
	require.Len(t, q1.Rows, 12)
	require.Equal(t, "Remaining Mfg", q1.Rows[10].Maker)
	require.Equal(t, 11, q1.Rows[10].Rank)
	require.Equal(t, "TIV", q1.Rows[11].Maker)
	require.Equal(t, 12, q1.Rows[11].Rank)

	// Makers are built with prior totals 150,149,...,136: the remainder is
	// the sum of ranks 11-15 and the market row covers all fifteen.
	wantRemainder := 140 + 139 + 138 + 137 + 136
	wantAll := 0
	for i := 0; i < 15; i++ {
		wantAll += 150 - i
	}
	require.Equal(t, wantRemainder, q1.Rows[10].PriorTotal)
	require.Equal(t, wantAll, q1.Rows[11].PriorTotal)
}

func TestQuarterlyZeroPriorMakerReportsPlusHundred(t *testing.T) {
	snap := snapOf(
		rec(2025, "MH27", "NEWCO", "APR", 50),
		rec(2024, "MH27", "OLDCO", "APR", 10),
	)
	q1 := QuarterlyComparison(snap, 2025, "", "")[0]
	var newco *QuarterRow
	for i := range q1.Rows {
		if q1.Rows[i].Maker == "NEWCO" {
			newco = &q1.Rows[i]
		}
	}
	require.NotNil(t, newco)
	require.Equal(t, 0, newco.PriorTotal)
	require.Equal(t, 50, newco.CurrentTotal)
	require.Equal(t, 100.0, newco.GrowthPct)
}

func makeQ1Makers(n int) []grid.Record {
	out := make([]grid.Record, 0, 2*n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("MAKER%02d", i)
		out = append(out, rec(2024, "MH27", name, "APR", 150-i))
		out = append(out, rec(2025, "MH27", name, "APR", 100))
	}
	return out
}
