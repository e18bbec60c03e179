package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ChartBuilder produces the heatmap served on every page request.
type ChartBuilder interface {
	Build(ctx context.Context) (domain.Chart, error)
}

// Server exposes the heatmap page plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	charts     ChartBuilder
	title      string
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /chart.svg, /palette.svg,
// /api/chart, /healthz, /readyz, and /metrics routes.
func NewServer(addr, title string, charts ChartBuilder, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		charts: charts,
		title:  title,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /chart.svg", s.handleSVG(render.ChartSVG))
	mux.HandleFunc("GET /palette.svg", s.handleSVG(render.PaletteSVG))
	mux.HandleFunc("GET /api/chart", s.handleChartJSON)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	chart, ok := s.build(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.Page(&buf, s.title, chart); err != nil {
		s.renderFailed(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck // client went away
}

func (s *Server) handleSVG(draw func(io.Writer, domain.Chart) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, ok := s.build(w, r)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := draw(&buf, chart); err != nil {
			s.renderFailed(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w) //nolint:errcheck // client went away
	}
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	chart, ok := s.build(w, r)
	if !ok {
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, chart)
}

// build returns false after writing a 502 when the dataset cannot be loaded
// or charted.
func (s *Server) build(w http.ResponseWriter, r *http.Request) (domain.Chart, bool) {
	chart, err := s.charts.Build(r.Context())
	if err != nil {
		sharedobs.WriteJSON(w, http.StatusBadGateway, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
		return domain.Chart{}, false
	}
	return chart, true
}

func (s *Server) renderFailed(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", "error", err)
	sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"status": "error",
		"error":  "render failed",
	})
}
