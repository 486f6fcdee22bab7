package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-tutor/tutor/internal/testutil"
	"github.com/projeto-tutor/tutor/internal/ui/notifier"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
)

func TestSetupRoutes(t *testing.T) {
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, pages.DefaultOptions(), notifier.New(), testutil.NewTestLogger(t)))

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/static/tutor.css", http.StatusOK},
		{"/static/missing.css", http.StatusNotFound},
		{"/reload", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
