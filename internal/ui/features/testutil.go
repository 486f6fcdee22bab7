// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/projeto-tutor/tutor/internal/testutil"
	"github.com/projeto-tutor/tutor/internal/ui/notifier"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
)

// TestFixture holds the dependencies a feature handler needs.
type TestFixture struct {
	Options  pages.Options
	Notifier *notifier.Notifier
	Logger   *slog.Logger
}

// SetupTestFixture returns a fixture with default page options. Pass
// liveReload to mount the development reload endpoints.
func SetupTestFixture(t *testing.T, liveReload bool) *TestFixture {
	t.Helper()

	opts := pages.DefaultOptions()
	opts.LiveReload = liveReload

	return &TestFixture{
		Options:  opts,
		Notifier: notifier.New(),
		Logger:   testutil.NewTestLogger(t),
	}
}

// RequestWithTimeout wraps a request with a context that expires after
// timeout. The cancel func is registered with t.Cleanup.
func RequestWithTimeout(t *testing.T, r *http.Request, timeout time.Duration) *http.Request {
	t.Helper()
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	t.Cleanup(cancel)
	return r.WithContext(ctx)
}

// WaitForSubscribers polls until n has at least want subscribers or the
// deadline passes.
func WaitForSubscribers(t *testing.T, n *notifier.Notifier, want int, deadline time.Duration) bool {
	t.Helper()
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		if n.Len() >= want {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return n.Len() >= want
}
