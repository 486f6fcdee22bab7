//go:build dev

package resources

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// Browsers revalidate on each request so edits show up on reload.
const cacheControl = "no-cache"

// Dir returns the on-disk asset directory, derived from this source file so
// it resolves regardless of the working directory.
func Dir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(filename), "static")
}

// FS returns the asset tree read live from disk.
func FS() fs.FS {
	return os.DirFS(Dir())
}
