// Package httpserv is the thin presentation layer: a chi router serving the
// analytics views as JSON. It holds no domain logic; every endpoint
// delegates to the corpus store and the analytics package.
package httpserv

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/skdeore/rtopulse/config"
	"github.com/skdeore/rtopulse/internal/corpus"
	"github.com/skdeore/rtopulse/internal/runtime"
)

// Server wires the analytics endpoints to the corpus store.
type Server struct {
	store  *corpus.Store
	cfg    config.Config
	logger zerolog.Logger
}

// New constructs the HTTP server facade.
func New(store *corpus.Store, cfg config.Config, logger zerolog.Logger) *Server {
	return &Server{store: store, cfg: cfg, logger: logger}
}

// Router assembles the route tree with request-ID, logging, recovery, and
// runtime-limit middleware.
func (s *Server) Router(rt *runtime.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(rt.Handler)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/meta", s.handleMeta)
	r.Get("/api/dashboard", s.handleDashboard)
	r.Get("/api/quarterly", s.handleQuarterly)
	r.Get("/api/territory", s.handleTerritory)
	r.Get("/reload", s.handleReload)
	return r
}

// requestLogger emits one zerolog line per request with the chi request ID.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request served")
	})
}
