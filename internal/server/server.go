// Package server exposes the compiler over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"regexfa/internal/cache"
	"regexfa/internal/export"
	"regexfa/internal/logging"
	"regexfa/regexlib"
)

// Options configure a Server. Zero values fall back to an in-memory cache
// without expiry, no pattern or DFA size limit and a silent logger.
type Options struct {
	Cache            cache.Cache
	Logger           *slog.Logger
	MaxPatternLength int
	// MaxDFAStates caps the subset construction; larger DFAs get 422.
	MaxDFAStates int
}

type Server struct {
	cache    cache.Cache
	logger   *slog.Logger
	maxLen   int
	maxDFA   int
	registry *prometheus.Registry
	metrics  *metrics
}

func New(opts Options) *Server {
	s := &Server{
		cache:    opts.Cache,
		logger:   opts.Logger,
		maxLen:   opts.MaxPatternLength,
		maxDFA:   opts.MaxDFAStates,
		registry: prometheus.NewRegistry(),
	}
	if s.cache == nil {
		s.cache = cache.NewMemory(0)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.metrics = newMetrics(s.registry)
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.health)
	r.Get("/v1/automaton", s.automaton)
	r.Post("/v1/match", s.match)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) checkPattern(pattern string) error {
	if s.maxLen > 0 && utf8.RuneCountInString(pattern) > s.maxLen {
		return fmt.Errorf("pattern longer than %d runes", s.maxLen)
	}
	return nil
}

func (s *Server) compile(pattern string, mode regexlib.Mode) (*regexlib.Regex, error) {
	re, err := regexlib.CompileLimit(pattern, mode, s.maxDFA)
	if err != nil {
		return nil, err
	}
	s.metrics.compiles.WithLabelValues(mode.String()).Inc()
	s.metrics.states.WithLabelValues(mode.String()).Observe(float64(re.Automaton().Len()))
	return re, nil
}

// compileError writes the response for a failed compile.
func compileError(w http.ResponseWriter, err error) {
	if errors.Is(err, regexlib.ErrTooManyStates) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

// automaton handles GET /v1/automaton?re=&mode=&format=&hide=.
func (s *Server) automaton(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("re") {
		writeError(w, http.StatusBadRequest, errors.New("missing query parameter re"))
		return
	}
	pattern := q.Get("re")
	if err := s.checkPattern(pattern); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode, err := regexlib.ParseMode(q.Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	format, err := export.ParseFormat(q.Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hide, _ := strconv.ParseBool(q.Get("hide"))

	log := s.loggerFor(r)
	key := cache.Key(pattern, mode.String(), string(format), strconv.FormatBool(hide))
	body, err := s.cache.Get(r.Context(), key)
	switch {
	case err == nil:
		s.metrics.cacheHits.Inc()
		w.Header().Set("X-Cache", "hit")
	case errors.Is(err, cache.ErrMiss):
		w.Header().Set("X-Cache", "miss")
	default:
		log.Warn("cache get failed", "error", err)
	}

	if body == nil {
		re, err := s.compile(pattern, mode)
		if err != nil {
			log.Info("compile rejected", "pattern", pattern, "mode", mode, "error", err)
			compileError(w, err)
			return
		}
		var buf bytes.Buffer
		if err := export.Write(&buf, re.Automaton(), format, export.Options{HideLabels: hide}); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		body = buf.Bytes()
		if err := s.cache.Set(r.Context(), key, body); err != nil {
			log.Warn("cache set failed", "error", err)
		}
		log.Info("compiled", "pattern", pattern, "mode", mode, "states", re.Automaton().Len())
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

type matchRequest struct {
	Pattern string   `json:"pattern"`
	Mode    string   `json:"mode"`
	Inputs  []string `json:"inputs"`
}

type verdict struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
}

type matchResponse struct {
	Pattern  string         `json:"pattern"`
	Mode     string         `json:"mode"`
	Stats    regexlib.Stats `json:"stats"`
	Results  []verdict      `json:"results"`
	Shortest *string        `json:"shortest"`
}

// match handles POST /v1/match.
func (s *Server) match(w http.ResponseWriter, r *http.Request) {
	var body matchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.checkPattern(body.Pattern); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode, err := regexlib.ParseMode(body.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	re, err := s.compile(body.Pattern, mode)
	if err != nil {
		s.loggerFor(r).Info("compile rejected", "pattern", body.Pattern, "mode", mode, "error", err)
		compileError(w, err)
		return
	}
	resp := matchResponse{
		Pattern: body.Pattern,
		Mode:    mode.String(),
		Stats:   re.Stats(),
		Results: make([]verdict, 0, len(body.Inputs)),
	}
	for _, in := range body.Inputs {
		resp.Results = append(resp.Results, verdict{Input: in, Accepted: re.Match(in)})
	}
	if word, ok := regexlib.ShortestAccepted(re.Automaton()); ok {
		resp.Shortest = &word
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
