// Package server exposes a ResourceLoader over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /templates/*name   resolved template (builtin, upload://, directory, archive)
//	GET    /resources          archive listing, optional ?filter=EXPR
//	GET    /resources/*name   raw resource bytes
//	HEAD   /resources/*name   200 if HasResource, else 404
//	GET    /uploads/:name     uploaded template
//	PUT    /uploads/:name     upload a template from the request body
//	DELETE /uploads/:name     clear an upload, keeping its key
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"github.com/esvolkov/ukase"
)

// DefaultMaxUploadBytes bounds PUT /uploads bodies.
const DefaultMaxUploadBytes = 1 << 20

// Headers set on template and resource responses.
const (
	HeaderRequestID    = "X-Request-Id"
	HeaderResourceKind = "X-Resource-Kind"
)

// Options configures a Server.
type Options struct {
	Logger         *slog.Logger  // nil = discard
	MaxUploadBytes int64         // 0 = DefaultMaxUploadBytes
	ReadTimeout    time.Duration // applied by Serve
	WriteTimeout   time.Duration // applied by Serve
}

// Server routes HTTP requests to a ResourceLoader.
type Server struct {
	loader    ukase.ResourceLoader
	log       *slog.Logger
	maxUpload int64
	timeouts  [2]time.Duration
	handler   http.Handler
}

// New builds the router for loader.
func New(loader ukase.ResourceLoader, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}

	s := &Server{
		loader:    loader,
		log:       log,
		maxUpload: maxUpload,
		timeouts:  [2]time.Duration{opts.ReadTimeout, opts.WriteTimeout},
	}

	router := httprouter.New()
	router.GET("/healthz", s.healthz)
	router.GET("/templates/*name", s.getTemplate)
	router.GET("/resources", s.listResources)
	router.GET("/resources/*name", s.getResource)
	router.HEAD("/resources/*name", s.headResource)
	router.GET("/uploads/:name", s.getUpload)
	router.PUT("/uploads/:name", s.putUpload)
	router.DELETE("/uploads/:name", s.deleteUpload)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		log.Error("handler panic", slog.String("request_id", RequestID(r.Context())), slog.Any("panic", v))
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}

	s.handler = withRequestID(withAccessLog(log, router))
	return s
}

// Handler returns the root handler, including request-id and access-log
// middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully, waiting up to shutdownTimeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.timeouts[0],
		ReadHeaderTimeout: s.timeouts[0],
		WriteTimeout:      s.timeouts[1],
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving %s: %w", ln.Addr(), err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}
