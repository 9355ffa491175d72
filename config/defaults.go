package config

import "time"

// Default guardrails and domain constants for the RTO registration
// analytics server. These are conservative and can be overridden through
// environment variables (see FromEnv); they are referenced by
// internal/runtime and internal/corpus.

const (
	// Concurrency
	DefaultMaxConcurrentRequests = 10

	// Cache
	DefaultRecheckInterval = 5 * time.Second

	// Header detection scans at most this many leading rows for month labels.
	DefaultHeaderScanRows = 5

	// Quarterly views rank this many makers individually before folding the
	// rest into the remainder row.
	DefaultTopMakers = 10
)

const (
	// Timeouts
	DefaultOperationTimeout      = 30 * time.Second
	DefaultAcquireRequestTimeout = 2 * time.Second
	DefaultShutdownTimeout       = 5 * time.Second
)

const (
	// DefaultListenAddr is where the HTTP layer binds unless overridden.
	DefaultListenAddr = ":8000"

	// DefaultHighlightMaker is the maker matched (case-insensitive substring)
	// by the territory split and flagged for row highlighting.
	DefaultHighlightMaker = "MAHINDRA"

	// DefaultFiscalBaseYear Y selects the F(Y) vs F(Y+1) comparison windows.
	DefaultFiscalBaseYear = 2025
)

// Months is the recognized month vocabulary in calendar order. Header cells
// must match one of these exactly after trimming and upper-casing.
var Months = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// Quarter names a fiscal quarter and the three calendar months it covers.
type Quarter struct {
	Name   string
	Months []string
}

// Quarters lists the fiscal quarters in order. The fiscal year starts in
// April, so Q4 falls in Jan-Mar of the following calendar year.
var Quarters = []Quarter{
	{Name: "Q1", Months: []string{"APR", "MAY", "JUN"}},
	{Name: "Q2", Months: []string{"JUL", "AUG", "SEP"}},
	{Name: "Q3", Months: []string{"OCT", "NOV", "DEC"}},
	{Name: "Q4", Months: []string{"JAN", "FEB", "MAR"}},
}

// Allocation is the static percentage split of one region between the two
// distribution groups. UnnatiPct and PACLPct must sum to 100.
type Allocation struct {
	UnnatiPct int `validate:"min=0,max=100"`
	PACLPct   int `validate:"min=0,max=100"`
}

// DefaultAllocations is the reference territory-allocation table keyed by
// region code.
var DefaultAllocations = map[string]Allocation{
	"MH27": {UnnatiPct: 100, PACLPct: 0},
	"MH29": {UnnatiPct: 100, PACLPct: 0},
	"MH31": {UnnatiPct: 60, PACLPct: 40},
	"MH32": {UnnatiPct: 0, PACLPct: 100},
	"MH33": {UnnatiPct: 0, PACLPct: 100},
	"MH34": {UnnatiPct: 0, PACLPct: 100},
	"MH35": {UnnatiPct: 0, PACLPct: 100},
	"MH36": {UnnatiPct: 0, PACLPct: 100},
	"MH40": {UnnatiPct: 60, PACLPct: 40},
	"MH49": {UnnatiPct: 60, PACLPct: 40},
}

// DefaultRegions is exposed by the metadata endpoint when the corpus is
// empty and no regions have been observed yet.
var DefaultRegions = []string{"MH27", "MH29", "MH31", "MH32", "MH33", "MH34", "MH35", "MH36", "MH40", "MH49"}

// DefaultYears are the year partitions discovered under the base data
// directory when no per-year overrides are set.
var DefaultYears = []int{2024, 2025, 2026}
