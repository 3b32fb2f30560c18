// Package server exposes the league data as a JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creativecreature/sheetcache"
	"github.com/creativecreature/sheetcache/league"
)

// DefaultLeaders is the length of a leaderboard when the request doesn't say.
const DefaultLeaders = 10

const requestIDHeader = "X-Request-Id"

// League is the part of *league.Service that the server needs.
type League interface {
	Standings(ctx context.Context) ([]league.TeamStanding, error)
	Hitting(ctx context.Context) ([]league.Hitter, error)
	Pitching(ctx context.Context) ([]league.Pitcher, error)
	Fielding(ctx context.Context) ([]league.Fielder, error)
	Schedule(ctx context.Context, team string) ([]league.Game, error)
	Roster(ctx context.Context, team string) ([]league.RosterSpot, error)
	Player(ctx context.Context, name string) (*league.PlayerProfile, error)
	Leaders(ctx context.Context, stat string, n int) ([]league.Leader, error)
	Compare(ctx context.Context, a, b string) (*league.Comparison, error)
}

// Cache is the part of *sheetcache.Client that the server needs.
type Cache interface {
	Get(ctx context.Context, rangeDescriptor string) (sheetcache.Rows, error)
	MarkRefreshed()
	Invalidate()
	Size() int
	Fresh() bool
	RefreshedAt() time.Time
	TTL() time.Duration
}

// Purger removes persisted ranges. *boltstore.Store is one.
type Purger interface {
	Purge() (int, error)
}

type Server struct {
	league  League
	cache   Cache
	purger  Purger
	metrics *Metrics
	log     *zap.Logger
	mux     *http.ServeMux
}

type Option func(*Server)

// WithMetrics makes the stats endpoint report the counters.
func WithMetrics(metrics *Metrics) Option {
	return func(s *Server) {
		s.metrics = metrics
	}
}

// WithPurger makes an invalidation also purge the persisted ranges.
func WithPurger(purger Purger) Option {
	return func(s *Server) {
		s.purger = purger
	}
}

func New(svc League, cache Cache, log *zap.Logger, opts ...Option) *Server {
	s := &Server{
		league: svc,
		cache:  cache,
		log:    log,
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /standings", s.handleStandings)
	s.mux.HandleFunc("GET /stats/{kind}", s.handleStats)
	s.mux.HandleFunc("GET /schedule", s.handleSchedule)
	s.mux.HandleFunc("GET /teams/{team}/roster", s.handleRoster)
	s.mux.HandleFunc("GET /players/{name}", s.handlePlayer)
	s.mux.HandleFunc("GET /leaders/{stat}", s.handleLeaders)
	s.mux.HandleFunc("GET /compare", s.handleCompare)
	s.mux.HandleFunc("GET /ranges/{range}", s.handleRange)
	s.mux.HandleFunc("POST /admin/invalidate", s.handleInvalidate)
	s.mux.HandleFunc("GET /admin/stats", s.handleCacheStats)
}

// Handler returns the routes wrapped in the request id middleware.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return <-errCh
	}
}

type requestIDKey struct{}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.league.Standings(r.Context())
	s.respond(w, r, standings, err)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch kind := r.PathValue("kind"); kind {
	case "hitting":
		hitters, err := s.league.Hitting(ctx)
		s.respond(w, r, hitters, err)
	case "pitching":
		pitchers, err := s.league.Pitching(ctx)
		s.respond(w, r, pitchers, err)
	case "fielding":
		fielders, err := s.league.Fielding(ctx)
		s.respond(w, r, fielders, err)
	default:
		s.respond(w, r, nil, fmt.Errorf("%w: stats %q", league.ErrNotFound, kind))
	}
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	games, err := s.league.Schedule(r.Context(), r.URL.Query().Get("team"))
	s.respond(w, r, games, err)
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := s.league.Roster(r.Context(), r.PathValue("team"))
	s.respond(w, r, roster, err)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	profile, err := s.league.Player(r.Context(), r.PathValue("name"))
	s.respond(w, r, profile, err)
}

func (s *Server) handleLeaders(w http.ResponseWriter, r *http.Request) {
	n := DefaultLeaders
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			s.badRequest(w, r, "n must be a positive integer")
			return
		}
		n = parsed
	}
	leaders, err := s.league.Leaders(r.Context(), r.PathValue("stat"), n)
	s.respond(w, r, leaders, err)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		s.badRequest(w, r, "both a and b are required")
		return
	}
	comparison, err := s.league.Compare(r.Context(), a, b)
	s.respond(w, r, comparison, err)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	rng, err := sheetcache.ParseRange(r.PathValue("range"))
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}
	rows, err := s.cache.Get(r.Context(), rng.String())
	if err == nil {
		s.cache.MarkRefreshed()
	}
	s.respond(w, r, rangeResponse{Range: rng.String(), Rows: rows}, err)
}

type rangeResponse struct {
	Range string          `json:"range"`
	Rows  sheetcache.Rows `json:"rows"`
}

func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	s.cache.Invalidate()
	resp := invalidateResponse{Invalidated: true}
	if s.purger != nil {
		purged, err := s.purger.Purge()
		if err != nil {
			// The in-memory invalidation already makes the stored records unusable.
			s.log.Warn("purging persisted ranges",
				zap.String("request_id", requestID(r.Context())),
				zap.Error(err),
			)
		}
		resp.Purged = purged
	}
	s.log.Info("cache invalidated",
		zap.String("request_id", requestID(r.Context())),
		zap.Int("purged", resp.Purged),
	)
	s.writeJSON(w, r, http.StatusOK, resp)
}

type invalidateResponse struct {
	Invalidated bool `json:"invalidated"`
	Purged      int  `json:"purged"`
}

// CacheStats is the body of the stats endpoint.
type CacheStats struct {
	Entries     int       `json:"entries"`
	Fresh       bool      `json:"fresh"`
	TTLSeconds  int       `json:"ttl_seconds"`
	RefreshedAt time.Time `json:"refreshed_at,omitzero"`
	Refreshed   string    `json:"refreshed"`
	Metrics     *Snapshot `json:"metrics,omitempty"`
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	refreshedAt := s.cache.RefreshedAt()
	stats := CacheStats{
		Entries:     s.cache.Size(),
		Fresh:       s.cache.Fresh(),
		TTLSeconds:  int(s.cache.TTL() / time.Second),
		RefreshedAt: refreshedAt,
		Refreshed:   "never",
	}
	if !refreshedAt.IsZero() {
		stats.Refreshed = humanize.Time(refreshedAt)
	}
	if s.metrics != nil {
		snapshot := s.metrics.Snapshot()
		stats.Metrics = &snapshot
	}
	s.writeJSON(w, r, http.StatusOK, stats)
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// respond writes v, or the user facing message for err. Failures are logged
// with the request id so that a fan's report can be traced.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err == nil {
		s.writeJSON(w, r, http.StatusOK, v)
		return
	}

	id := requestID(r.Context())
	status := statusFor(err)
	fields := []zap.Field{
		zap.String("request_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", fields...)
	} else {
		s.log.Debug("request rejected", fields...)
	}
	s.writeJSON(w, r, status, errorResponse{Error: league.UserMessage(err), RequestID: id})
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: msg, RequestID: requestID(r.Context())})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, league.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, league.ErrUnknownStat):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writing response",
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err),
		)
	}
}
