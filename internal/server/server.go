// Package server exposes the render pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brdgme/markup/pkg/config"
	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/pipeline"
)

// maxBodyBytes bounds request bodies: the largest template plus room for
// the roster and JSON framing.
const maxBodyBytes = errors.MaxTemplateBytes + 64<<10

// Server is the HTTP render service.
type Server struct {
	router   chi.Router
	runner   *pipeline.Runner
	log      *log.Logger
	gatherer prometheus.Gatherer
	format   string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithGatherer serves metrics from g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithDefaultFormat sets the format used when a request names none.
func WithDefaultFormat(format string) Option {
	return func(s *Server) { s.format = format }
}

// New creates a server around runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:   runner,
		log:      log.NewWithOptions(io.Discard, log.Options{}),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/render", s.handleRender)
	r.Post("/parse", s.handleParse)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.router = r
}

// ListenAndServe serves h on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, h http.Handler, cfg config.Server, logger *log.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error  string      `json:"error"`
	Code   errors.Code `json:"code,omitempty"`
	Offset *int        `json:"offset,omitempty"`
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps a pipeline error to a status code and JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error(), Code: errors.GetCode(err)}
	if off, ok := errors.Offset(err); ok {
		resp.Offset = &off
	}

	status := http.StatusInternalServerError
	switch {
	case errors.IsSyntax(err):
		status = http.StatusUnprocessableEntity
	case resp.Code == errors.ErrCodeInvalidFormat,
		resp.Code == errors.ErrCodeInvalidPlayers,
		resp.Code == errors.ErrCodeInvalidTemplate:
		status = http.StatusBadRequest
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "request_id", GetRequestID(r.Context()), "error", err)
	}
	writeJSON(w, status, resp)
}
