// Package web serves the document tree over HTTP: HTML pages for browsing
// and reading, and a JSON API for scripts and the browser's own forms.
//
// Every handler passes the untrusted path straight to the file service,
// which resolves and confines it. A path that is missing and a path that
// escapes the root produce the same 404, so the server never reveals what
// exists outside the root.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jpl-au/mdfiles/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// shutdownTimeout bounds how long in-flight requests may run once the
// server has been asked to stop.
const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Logger receives one line per request. Defaults to slog.Default().
	Logger *slog.Logger

	// MaxBody caps JSON request bodies. Zero means 32MB.
	MaxBody int64
}

// Server holds the handlers for one document root.
type Server struct {
	svc     service.Service
	log     *slog.Logger
	pages   *template.Template
	maxBody int64
}

// New creates a server over svc.
func New(svc service.Service, opts Options) (*Server, error) {
	pages, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	s := &Server{
		svc:     svc,
		log:     opts.Logger,
		pages:   pages,
		maxBody: opts.MaxBody,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.maxBody <= 0 {
		s.maxBody = 32 << 20
	}
	return s, nil
}

// Handler returns the root handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/files/", http.StatusFound)
	})
	mux.HandleFunc("GET /healthz", s.handleHealth)

	// Pages
	mux.HandleFunc("GET /files/{path...}", s.handleBrowse)
	mux.HandleFunc("GET /view/{path...}", s.handleView)
	mux.HandleFunc("GET /raw/{path...}", s.handleRaw)
	mux.HandleFunc("GET /download/{path...}", s.handleDownload)
	mux.HandleFunc("GET /search", s.handleSearchPage)

	// Form actions (JSON responses)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /mkdir", s.handleMkdir)
	mux.HandleFunc("POST /delete", s.handleDelete)
	mux.HandleFunc("POST /rename", s.handleRename)

	// JSON API
	mux.HandleFunc("GET /api/list", s.handleAPIList)
	mux.HandleFunc("GET /api/read", s.handleAPIRead)
	mux.HandleFunc("POST /api/write", s.handleAPIWrite)
	mux.HandleFunc("GET /api/search", s.handleAPISearch)

	return s.recoverPanics(s.logRequests(mux))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutCtx)
	}()

	s.log.Info("mdfiles HTTP server ready", "addr", ln.Addr().String(), "root", s.svc.Root())

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
