// Package resources serves the static assets of the site.
package resources

import (
	"io/fs"
	"net/http"
)

// StaticDirectoryPath is the asset directory relative to the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// Stylesheet is the site stylesheet inside the asset tree.
const Stylesheet = "tutor.css"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}

// Handler serves the asset tree under /static/.
func Handler() http.Handler {
	return handler(FS())
}

func handler(fsys fs.FS) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheControl != "" {
			w.Header().Set("Cache-Control", cacheControl)
		}
		fileServer.ServeHTTP(w, r)
	})
}
