package httpserv

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/skdeore/rtopulse/internal/analytics"
	"github.com/skdeore/rtopulse/pkg/version"
)

// metaResponse summarizes what the corpus currently holds, for filter
// population and the reload banner.
type metaResponse struct {
	Version     string   `json:"version"`
	Files       int      `json:"files"`
	Months      []string `json:"months"`
	Regions     []string `json:"regions"`
	Records     int      `json:"records"`
	CorpusEmpty bool     `json:"corpus_empty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version()})
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Load(false)
	writeJSON(w, http.StatusOK, metaResponse{
		Version:     version.Version(),
		Files:       len(snap.Files),
		Months:      snap.MonthsOrDefault(),
		Regions:     snap.RegionsOrDefault(),
		Records:     len(snap.Records),
		CorpusEmpty: snap.Empty(),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Load(false)
	table := analytics.MonthlyPivot(snap, analytics.PivotFilter{
		Year:   yearParam(r),
		Region: regionParam(r),
	}, s.cfg.HighlightMaker)

	writeJSON(w, http.StatusOK, struct {
		analytics.PivotTable
		CorpusEmpty bool `json:"corpus_empty,omitempty"`
	}{PivotTable: table, CorpusEmpty: snap.Empty()})
}

func (s *Server) handleQuarterly(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Load(false)
	tables := analytics.QuarterlyComparison(snap, baseYearParam(r, s.cfg.FiscalBaseYear), regionParam(r), s.cfg.HighlightMaker)
	writeJSON(w, http.StatusOK, map[string]any{
		"quarters":     tables,
		"corpus_empty": snap.Empty(),
	})
}

func (s *Server) handleTerritory(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Load(false)
	split := analytics.TerritoryAllocation(snap, s.cfg.Allocations, baseYearParam(r, s.cfg.FiscalBaseYear), regionParam(r), s.cfg.HighlightMaker)
	writeJSON(w, http.StatusOK, split)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Load(true)
	writeJSON(w, http.StatusOK, map[string]any{
		"reloaded": true,
		"files":    len(snap.Files),
		"records":  len(snap.Records),
		"months":   snap.Months,
	})
}

// yearParam reads the calendar-year filter; "ALL", absent, or garbage all
// mean unfiltered.
func yearParam(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" || strings.EqualFold(raw, "ALL") {
		return 0
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return y
}

// baseYearParam reads the fiscal base year for the comparison views; the
// year filter doubles as the base-year selector there, matching the
// historical dashboard.
func baseYearParam(r *http.Request, fallback int) int {
	if y := yearParam(r); y != 0 {
		return y
	}
	return fallback
}

// regionParam reads the RTO filter; "ALL" and absent mean unfiltered.
func regionParam(r *http.Request) string {
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("rto")))
	if raw == "" || raw == "ALL" {
		return ""
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
