package chi

import (
	"net/http"
	"os"
	"path/filepath"
)

// ImageAsset is an optional static image served from disk, such as the
// feature-importance chart. A missing file is not an error.
type ImageAsset struct {
	path string
}

// NewImageAsset creates an asset for path. It returns nil for an empty path.
func NewImageAsset(path string) *ImageAsset {
	if path == "" {
		return nil
	}
	return &ImageAsset{path: filepath.Clean(path)}
}

// Exists reports whether the file is currently readable.
func (a *ImageAsset) Exists() bool {
	if a == nil {
		return false
	}
	st, err := os.Stat(a.path)
	return err == nil && st.Mode().IsRegular()
}

// ServeHTTP serves the image, or 404 when it is missing.
func (a *ImageAsset) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !a.Exists() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, a.path)
}
