// Package ui serves the Tutor site over HTTP.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/projeto-tutor/tutor/internal/ui/notifier"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
	"github.com/projeto-tutor/tutor/internal/ui/router"
)

const (
	debounce               = 100 * time.Millisecond
	defaultShutdownTimeout = 5 * time.Second
)

// watchedExt lists the asset extensions that trigger a reload.
var watchedExt = map[string]bool{
	".css":  true,
	".js":   true,
	".html": true,
	".svg":  true,
}

// Server is the site server.
type Server struct {
	port      int
	watch     bool
	staticDir string
	shutdown  time.Duration
	opts      pages.Options
	logger    *slog.Logger
	notifier  *notifier.Notifier
}

// Config holds configuration for the site server.
type Config struct {
	Port  int
	Watch bool
	// StaticDir is the on-disk asset directory watched for changes. Empty
	// disables watching.
	StaticDir       string
	ShutdownTimeout time.Duration
	Options         pages.Options
	Logger          *slog.Logger
}

// NewServer creates a new site server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := cfg.Options
	opts.LiveReload = cfg.Watch

	shutdown := cfg.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = defaultShutdownTimeout
	}

	return &Server{
		port:      cfg.Port,
		watch:     cfg.Watch,
		staticDir: cfg.StaticDir,
		shutdown:  shutdown,
		opts:      opts,
		logger:    logger,
		notifier:  notifier.New(),
	}
}

// Handler builds the routed handler with the standard middleware stack.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.opts, s.notifier, s.logger); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting site server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		if s.staticDir == "" {
			s.logger.Warn("watch requested but assets are embedded; rebuild with -tags dev to watch")
		} else {
			eg.Go(func() error {
				return s.watchFiles(egctx)
			})
		}
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for reload events.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles broadcasts a reload when an asset under staticDir changes.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.staticDir); err != nil {
		s.logger.Error("failed to watch static directory", "dir", s.staticDir, "error", err)
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(debounce, func() {
				s.logger.Debug("asset changed, reloading clients", "file", name, "clients", s.notifier.Len())
				s.notifier.Broadcast()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return watchedExt[filepath.Ext(event.Name)]
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
