package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skdeore/rtopulse/config"
)

func TestTerritoryWeighting(t *testing.T) {
	alloc := map[string]config.Allocation{
		"MH31": {UnnatiPct: 60, PACLPct: 40},
	}
	// All inside F(2026): Apr 2025 onward. All-maker total 1000, of which
	// MAHINDRA 300.
	snap := snapOf(
		rec(2025, "MH31", "MAHINDRA", "APR", 300),
		rec(2025, "MH31", "TATA", "APR", 700),
	)
	split := TerritoryAllocation(snap, alloc, 2025, "", "MAHINDRA")

	require.InDelta(t, 600.0, split.Unnati.CurrentAll, 0.001)
	require.InDelta(t, 180.0, split.Unnati.CurrentHigh, 0.001)
	require.InDelta(t, 400.0, split.PACL.CurrentAll, 0.001)
	require.InDelta(t, 120.0, split.PACL.CurrentHigh, 0.001)

	// Market share is against both groups combined: 180/1000 and 120/1000.
	require.InDelta(t, 18.0, split.Unnati.CurrentSharePct, 0.001)
	require.InDelta(t, 12.0, split.PACL.CurrentSharePct, 0.001)
}

func TestTerritoryShareChangeAndGrowth(t *testing.T) {
	alloc := map[string]config.Allocation{
		"MH27": {UnnatiPct: 100, PACLPct: 0},
	}
	snap := snapOf(
		// F(2025): Apr 2024 window.
		rec(2024, "MH27", "MAHINDRA", "APR", 100),
		rec(2024, "MH27", "TATA", "APR", 100),
		// F(2026): Apr 2025 window.
		rec(2025, "MH27", "MAHINDRA", "APR", 150),
		rec(2025, "MH27", "TATA", "APR", 50),
	)
	split := TerritoryAllocation(snap, alloc, 2025, "", "MAHINDRA")

	require.Equal(t, "F25", split.PriorFY)
	require.Equal(t, "F26", split.NextFY)

	require.InDelta(t, 50.0, split.Unnati.PriorSharePct, 0.001)   // 100/200
	require.InDelta(t, 75.0, split.Unnati.CurrentSharePct, 0.001) // 150/200
	require.InDelta(t, 25.0, split.Unnati.ShareChangePct, 0.001)
	require.InDelta(t, 50.0, split.Unnati.GrowthPct, 0.001) // 100 -> 150

	// PACL has no weight anywhere: zero denominators yield zeros, not NaN.
	require.Equal(t, 0.0, split.PACL.GrowthPct)
	require.Equal(t, 0.0, split.PACL.PriorSharePct)
}

func TestTerritoryRegionFilterAndNoData(t *testing.T) {
	alloc := map[string]config.Allocation{
		"MH27": {UnnatiPct: 100, PACLPct: 0},
		"MH32": {UnnatiPct: 0, PACLPct: 100},
	}
	snap := snapOf(
		rec(2025, "MH27", "MAHINDRA", "APR", 10),
		rec(2025, "MH32", "MAHINDRA", "APR", 20),
	)

	split := TerritoryAllocation(snap, alloc, 2025, "MH32", "MAHINDRA")
	require.InDelta(t, 0.0, split.Unnati.CurrentAll, 0.001)
	require.InDelta(t, 20.0, split.PACL.CurrentAll, 0.001)

	empty := TerritoryAllocation(snap, alloc, 2025, "MH99", "MAHINDRA")
	require.True(t, empty.NoData)
}

func TestMatchesHighlightSubstring(t *testing.T) {
	require.True(t, matchesHighlight("Mahindra & Mahindra Ltd", "MAHINDRA"))
	require.True(t, matchesHighlight("MAHINDRA", "mahindra"))
	require.False(t, matchesHighlight("TATA MOTORS", "MAHINDRA"))
	require.False(t, matchesHighlight("MAHINDRA", ""))
}
