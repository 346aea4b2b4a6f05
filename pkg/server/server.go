package server

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/htmlgen-dev/htmlgen/pkg/html"
)

// tracerName identifies the preview server's tracer.
const tracerName = "htmlgen"

// PageFunc builds a fresh page for each request. Returning a new page
// per call keeps the server free of shared mutable trees.
type PageFunc func() *html.Page

// Server serves pages built with the htmlgen API for local preview.
type Server struct {
	config   *Config
	router   chi.Router
	renderer *html.Renderer
	reload   *ReloadHub
	metrics  *serverMetrics
	registry *prometheus.Registry
	tracer   trace.Tracer
	logger   *slog.Logger

	httpServer *http.Server
}

// New creates a preview server with the given configuration.
func New(config *Config) *Server {
	config = config.withDefaults()

	hub := NewReloadHub()
	registry := prometheus.NewRegistry()

	s := &Server{
		config:   config,
		router:   chi.NewRouter(),
		renderer: html.NewRenderer(html.RendererConfig{Pretty: config.Pretty}),
		reload:   hub,
		metrics:  newServerMetrics(registry, hub),
		registry: registry,
		tracer:   otel.Tracer(tracerName),
		logger:   config.Logger.With("component", "server"),
	}

	s.router.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
	if config.EnableReload {
		s.router.Get(ReloadEndpoint, s.reload.HandleWebSocket)
	}

	return s
}

// HandlePage registers a page factory at the given route path.
func (s *Server) HandlePage(path string, fn PageFunc) {
	s.router.Get(path, s.servePage(path, fn))
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload returns the live-reload hub so callers can notify browsers.
func (s *Server) Reload() *ReloadHub {
	return s.reload
}

// servePage renders the page and writes it as an HTML response.
func (s *Server) servePage(path string, fn PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := s.tracer.Start(r.Context(), "htmlgen.render",
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("htmlgen.path", path)),
		)
		defer span.End()

		start := time.Now()

		page := fn()
		if page == nil {
			s.fail(w, span, path, fmt.Errorf("page factory for %s returned nil", path))
			return
		}
		if err := page.Err(); err != nil {
			s.fail(w, span, path, fmt.Errorf("page %s: %w", path, err))
			return
		}

		if s.config.EnableReload {
			page.AddRaw(reloadClientScript)
		}

		var buf bytes.Buffer
		if err := s.renderer.RenderToWriter(&buf, page); err != nil {
			s.fail(w, span, path, fmt.Errorf("render %s: %w", path, err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		n, _ := w.Write(buf.Bytes())

		s.metrics.renderDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		s.metrics.pagesRendered.WithLabelValues(path, "success").Inc()
		s.metrics.bytesWritten.Add(float64(n))

		span.SetAttributes(attribute.Int("htmlgen.bytes", n))
		span.SetStatus(codes.Ok, "")
	}
}

// fail logs a page construction or render error and responds 500.
func (s *Server) fail(w http.ResponseWriter, span trace.Span, path string, err error) {
	s.logger.Error("page error", "path", path, "error", err)
	s.metrics.pagesRendered.WithLabelValues(path, "error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// Start runs the server until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.reload.Close()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("preview server stopped")
	return nil
}
