package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-tutor/tutor/internal/testutil"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
)

func TestServer_Handler(t *testing.T) {
	tests := []struct {
		name       string
		watch      bool
		path       string
		wantStatus int
	}{
		{"landing", false, "/", http.StatusOK},
		{"stylesheet", false, "/static/tutor.css", http.StatusOK},
		{"no hotreload without watch", false, "/hotreload", http.StatusNotFound},
		{"hotreload with watch", true, "/hotreload", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(Config{
				Watch:   tt.watch,
				Options: pages.DefaultOptions(),
				Logger:  testutil.NewTestLogger(t),
			})
			handler, err := s.Handler()
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_WatchEnablesLiveReload(t *testing.T) {
	s := NewServer(Config{Watch: true, Options: pages.DefaultOptions()})
	assert.True(t, s.opts.LiveReload)

	s = NewServer(Config{Options: pages.Options{LiveReload: true}})
	assert.False(t, s.opts.LiveReload, "live reload follows the watch flag")
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	s := NewServer(Config{Port: 0, Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_WatchWithoutStaticDirWarns(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger()
	s := NewServer(Config{Port: 0, Watch: true, Logger: logger})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-errCh)

	assert.Contains(t, logs.String(), "watch requested but assets are embedded")
}

func TestServer_WatchBroadcastsOnAssetChange(t *testing.T) {
	dir := t.TempDir()
	s := NewServer(Config{Watch: true, StaticDir: dir, Logger: testutil.NewTestLogger(t)})

	updates, unsubscribe := s.Notifier().Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.watchFiles(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tutor.css"), []byte("body{}"), 0o600))

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload broadcast after the stylesheet changed")
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"css write", fsnotify.Event{Name: "a/tutor.css", Op: fsnotify.Write}, true},
		{"svg create", fsnotify.Event{Name: "hero.svg", Op: fsnotify.Create}, true},
		{"css chmod", fsnotify.Event{Name: "tutor.css", Op: fsnotify.Chmod}, false},
		{"swap file", fsnotify.Event{Name: "tutor.css.swp", Op: fsnotify.Write}, false},
		{"go source", fsnotify.Event{Name: "assets.go", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}
