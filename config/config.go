package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries the runtime configuration assembled from environment
// variables and defaults. Validate before use; the server refuses to start
// on an invalid configuration.
type Config struct {
	// YearDirs maps each calendar-year partition to the directory holding
	// its report workbooks. Missing directories are tolerated at load time
	// (skipped with a warning); the map itself must not be empty.
	YearDirs map[int]string `validate:"required,min=1"`

	// Allocations is the per-region territory split. Each entry must sum to
	// 100 across the two groups.
	Allocations map[string]Allocation `validate:"required,min=1,dive"`

	ListenAddr      string        `validate:"required"`
	HighlightMaker  string        `validate:"required,min=2"`
	FiscalBaseYear  int           `validate:"required,min=2000,max=2100"`
	RecheckInterval time.Duration `validate:"min=0"`
	MaxConcurrent   int           `validate:"min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		a := sl.Current().Interface().(Allocation)
		if a.UnnatiPct+a.PACLPct != 100 {
			sl.ReportError(a.UnnatiPct, "UnnatiPct", "UnnatiPct", "allocsum", "")
		}
	}, Allocation{})
	return v
}

// FromEnv assembles a Config from RTOPULSE_* environment variables, falling
// back to the package defaults. Recognized variables:
//
//	RTOPULSE_DATA_DIR    base directory containing one subdirectory per year
//	RTOPULSE_DATA_<year> explicit directory for a single year partition
//	RTOPULSE_ADDR        HTTP listen address
//	RTOPULSE_RECHECK     cache recheck interval (Go duration syntax)
func FromEnv() Config {
	base := os.Getenv("RTOPULSE_DATA_DIR")
	if base == "" {
		base = filepath.Join(os.TempDir(), "rtopulse_data")
	}

	years := make(map[int]string, len(DefaultYears))
	for _, y := range DefaultYears {
		years[y] = filepath.Join(base, strconv.Itoa(y))
	}
	// Explicit per-year overrides win over the base layout and may add
	// partitions beyond the default years.
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" || !strings.HasPrefix(k, "RTOPULSE_DATA_") {
			continue
		}
		if y, err := strconv.Atoi(strings.TrimPrefix(k, "RTOPULSE_DATA_")); err == nil {
			years[y] = v
		}
	}

	cfg := Config{
		YearDirs:        years,
		Allocations:     DefaultAllocations,
		ListenAddr:      DefaultListenAddr,
		HighlightMaker:  DefaultHighlightMaker,
		FiscalBaseYear:  DefaultFiscalBaseYear,
		RecheckInterval: DefaultRecheckInterval,
		MaxConcurrent:   DefaultMaxConcurrentRequests,
	}
	if addr := os.Getenv("RTOPULSE_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if raw := os.Getenv("RTOPULSE_RECHECK"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
			cfg.RecheckInterval = d
		}
	}
	return cfg
}

// Validate checks structural invariants and returns a descriptive error on
// the first violation.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for region, a := range c.Allocations {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("config: allocation for %s must sum to 100: %w", region, err)
		}
	}
	return nil
}

// Years returns the configured calendar-year partitions in ascending order
// so directory discovery is deterministic.
func (c Config) Years() []int {
	ys := make([]int, 0, len(c.YearDirs))
	for y := range c.YearDirs {
		ys = append(ys, y)
	}
	sort.Ints(ys)
	return ys
}

// AllocationRegions returns the configured region codes in sorted order.
func (c Config) AllocationRegions() []string {
	rs := make([]string, 0, len(c.Allocations))
	for r := range c.Allocations {
		rs = append(rs, r)
	}
	sort.Strings(rs)
	return rs
}
