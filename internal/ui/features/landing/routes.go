package landing

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/projeto-tutor/tutor/internal/ui/notifier"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
)

// SetupRoutes configures routes for the landing feature. The reload
// endpoints are only mounted when opts.LiveReload is set.
func SetupRoutes(router chi.Router, opts pages.Options, notify *notifier.Notifier, logger *slog.Logger) error {
	handlers := NewHandlers(opts, notify, logger)

	router.Get("/", handlers.LandingPage)
	router.Get("/healthz", handlers.Health)

	if opts.LiveReload {
		reloadPath := opts.ReloadPath
		if reloadPath == "" {
			reloadPath = pages.DefaultOptions().ReloadPath
		}
		router.Get(reloadPath, handlers.ReloadStream)
		router.Get("/hotreload", handlers.TriggerReload)
	}

	return nil
}
