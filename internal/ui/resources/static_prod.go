//go:build !dev

package resources

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// Embedded assets never change within a binary.
const cacheControl = "public, max-age=31536000, immutable"

// Dir returns the on-disk asset directory. Production binaries read from the
// embedded tree, so there is nothing to watch.
func Dir() string {
	return ""
}

// FS returns the embedded asset tree.
func FS() fs.FS {
	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // static/ is embedded at build time
	}
	return fsys
}
