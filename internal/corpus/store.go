package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/skdeore/rtopulse/config"
	"github.com/skdeore/rtopulse/internal/grid"
)

// Store caches the corpus across requests. A read rebuilds iff no snapshot
// exists yet, the recheck interval has elapsed, or the caller forces a
// refresh; otherwise the cached snapshot is returned unchanged. Rebuilds
// assemble the new snapshot off to the side and publish it with a single
// swap under the write lock, so concurrent readers never observe a torn
// corpus. Concurrent rebuild triggers collapse into one flight.
type Store struct {
	yearDirs map[int]string
	recheck  time.Duration
	reader   GridReader
	clock    func() time.Time
	logger   zerolog.Logger

	group singleflight.Group

	mu       sync.RWMutex
	snap     *Snapshot
	lastLoad time.Time
}

// NewStore constructs a Store over the configured year partitions.
// Pass recheck <= 0 for the default interval; reader nil for the xlsx
// reader; clock nil for time.Now.
func NewStore(yearDirs map[int]string, recheck time.Duration, reader GridReader, clock func() time.Time, logger zerolog.Logger) *Store {
	if recheck <= 0 {
		recheck = config.DefaultRecheckInterval
	}
	if reader == nil {
		reader = XLSXReader{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		yearDirs: yearDirs,
		recheck:  recheck,
		reader:   reader,
		clock:    clock,
		logger:   logger,
	}
}

// Load returns the current corpus snapshot, rebuilding it first when the
// cache policy requires. It never fails: files and partitions that cannot
// be read contribute zero records and the next refresh re-attempts them.
func (s *Store) Load(force bool) *Snapshot {
	s.mu.RLock()
	snap, last := s.snap, s.lastLoad
	s.mu.RUnlock()

	if !force && snap != nil && s.clock().Sub(last) < s.recheck {
		return snap
	}

	v, _, _ := s.group.Do("rebuild", func() (any, error) {
		fresh := s.rebuild()
		s.mu.Lock()
		s.snap = fresh
		s.lastLoad = fresh.LoadedAt
		s.mu.Unlock()
		return fresh, nil
	})
	return v.(*Snapshot)
}

// Current returns the cached snapshot without triggering a rebuild; nil
// when nothing has been loaded yet.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) rebuild() *Snapshot {
	started := s.clock()

	years := make([]int, 0, len(s.yearDirs))
	for y := range s.yearDirs {
		years = append(years, y)
	}
	sort.Ints(years)

	var (
		records []grid.Record
		used    []string
	)
	for _, year := range years {
		dir := s.yearDirs[year]
		if _, err := os.Stat(dir); err != nil {
			s.logger.Warn().Int("year", year).Str("dir", dir).Msg("partition directory not found, skipping")
			continue
		}
		files := discover(dir)
		s.logger.Info().Int("year", year).Str("dir", dir).Int("files", len(files)).Msg("scanning partition")

		for _, path := range files {
			recs := s.parseFile(path, year)
			if len(recs) == 0 {
				continue
			}
			records = append(records, recs...)
			used = append(used, path)
		}
	}

	records = normalize(records)
	snap := &Snapshot{
		Records:  records,
		Months:   observedMonths(records),
		Files:    used,
		LoadedAt: started,
	}

	s.logger.Info().
		Int("records", len(snap.Records)).
		Int("files", len(snap.Files)).
		Strs("months", snap.Months).
		Dur("took", s.clock().Sub(started)).
		Msg("corpus loaded")
	return snap
}

// parseFile reads and parses one workbook. Any failure is absorbed at file
// granularity: the file contributes zero records for this refresh cycle.
func (s *Store) parseFile(path string, year int) []grid.Record {
	g, err := s.reader.ReadGrid(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("unreadable workbook, skipping")
		return nil
	}
	recs, rep := grid.ParseSheet(g, year, path)
	if rep.Reject != grid.RejectNone {
		s.logger.Warn().Str("file", path).Str("reason", string(rep.Reject)).Msg("unparseable workbook, skipping")
		return nil
	}
	s.logger.Debug().
		Str("file", path).
		Int("header_row", rep.HeaderRow).
		Int("maker_col", rep.MakerCol).
		Int("month_cols", len(rep.MonthCols)).
		Int("rows_skipped", len(rep.RowSkips)).
		Int("records", rep.Records).
		Msg("workbook parsed")
	return recs
}

// discover lists the partition's workbook files whose names follow the
// region-code convention, in stable sorted order.
func discover(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
			continue
		}
		if _, ok := grid.ExtractRegion(name); !ok {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files
}
