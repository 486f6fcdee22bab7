// Package landing serves the Tutor landing page.
package landing

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/projeto-tutor/tutor/internal/ui/components"
	"github.com/projeto-tutor/tutor/internal/ui/notifier"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
)

const reloadScript = "window.location.reload()"

// Handlers provides HTTP handlers for the landing feature.
type Handlers struct {
	page     http.Handler
	notifier *notifier.Notifier
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(opts pages.Options, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handlers{
		notifier: notify,
		logger:   logger,
	}
	h.page = templ.Handler(
		components.Templ(pages.Document(opts)),
		templ.WithErrorHandler(h.renderError),
	)
	return h
}

// LandingPage renders the full document.
func (h *Handlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.page.ServeHTTP(w, r)
}

func (h *Handlers) renderError(r *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.logger.Error("render landing page", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	})
}

// Health reports that the server is up.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ReloadStream is the long-lived SSE endpoint the page subscribes to in
// watch mode. Each notifier ping is forwarded as a reload script.
func (h *Handlers) ReloadStream(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates, cancel := h.notifier.Subscribe()
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sse.ExecuteScript(reloadScript); err != nil {
				h.logger.Debug("reload stream closed", "error", err)
				return
			}
		}
	}
}

// TriggerReload pings every open reload stream. External rebuild tools call
// it after writing new assets.
func (h *Handlers) TriggerReload(w http.ResponseWriter, _ *http.Request) {
	h.notifier.Broadcast()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
