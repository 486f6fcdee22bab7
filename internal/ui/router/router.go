// Package router sets up HTTP routes for the site server.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	landingFeature "github.com/projeto-tutor/tutor/internal/ui/features/landing"
	"github.com/projeto-tutor/tutor/internal/ui/notifier"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
	"github.com/projeto-tutor/tutor/internal/ui/resources"
)

// SetupRoutes configures all routes for the site server.
func SetupRoutes(
	router chi.Router,
	opts pages.Options,
	notify *notifier.Notifier,
	logger *slog.Logger,
) error {
	// Static assets
	router.Handle(resources.StaticPath("*"), resources.Handler())

	return landingFeature.SetupRoutes(router, opts, notify, logger)
}
