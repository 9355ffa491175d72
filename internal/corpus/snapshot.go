// Package corpus owns the canonical registration table: it discovers report
// workbooks across year-partitioned directories, parses each through
// internal/grid, and holds the concatenated result behind a recheck-interval
// cache. Consumers only ever see immutable snapshots.
package corpus

import (
	"sort"
	"strings"
	"time"

	"github.com/skdeore/rtopulse/config"
	"github.com/skdeore/rtopulse/internal/grid"
)

// Snapshot is one atomically-published corpus build: the full record
// sequence plus derived metadata. It is never mutated after publication;
// a refresh replaces the whole snapshot.
type Snapshot struct {
	Records []grid.Record
	// Months actually observed across all files, in calendar order.
	Months []string
	// Files successfully parsed into at least one record.
	Files    []string
	LoadedAt time.Time
}

// Empty reports the global no-data condition: nothing parsed anywhere.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Records) == 0
}

// MonthsOrDefault returns the observed months, or the full twelve-month
// vocabulary when the corpus has not seen any data yet.
func (s *Snapshot) MonthsOrDefault() []string {
	if s == nil || len(s.Months) == 0 {
		return config.Months
	}
	return s.Months
}

// Regions returns the distinct region codes present in the corpus, sorted.
func (s *Snapshot) Regions() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, r := range s.Records {
		seen[r.Region] = struct{}{}
	}
	regions := make([]string, 0, len(seen))
	for r := range seen {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// RegionsOrDefault prepends "ALL" to the observed regions, falling back to
// the configured default region list when the corpus is empty.
func (s *Snapshot) RegionsOrDefault() []string {
	regions := s.Regions()
	if len(regions) == 0 {
		regions = config.DefaultRegions
	}
	return append([]string{"ALL"}, regions...)
}

// normalize applies the defensive post-concatenation pass: regions and
// months upper-cased and trimmed, maker names trimmed, counts clamped
// non-negative, and records with unrecognized months dropped.
func normalize(records []grid.Record) []grid.Record {
	out := records[:0]
	for _, r := range records {
		r.Region = upperTrim(r.Region)
		r.Month = upperTrim(r.Month)
		r.Maker = grid.CollapseSpaces(r.Maker)
		if r.Count < 0 {
			r.Count = 0
		}
		if !grid.IsMonth(r.Month) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func upperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// observedMonths collects the distinct months present in records, sorted in
// calendar order rather than alphabetically.
func observedMonths(records []grid.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.Month] = struct{}{}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		return grid.MonthIndex(months[i]) < grid.MonthIndex(months[j])
	})
	return months
}
