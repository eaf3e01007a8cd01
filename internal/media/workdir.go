package media

import (
	"fmt"
	"os"
)

// Workspace owns the working directories of one run: one for decoded
// stills and one reserved for conversion artifacts. The stills directory
// is removed when the run ends; the cache directory stays.
type Workspace struct {
	FramesDir string
	CacheDir  string
}

// NewWorkspace wraps the configured directory paths.
func NewWorkspace(framesDir, cacheDir string) Workspace {
	return Workspace{FramesDir: framesDir, CacheDir: cacheDir}
}

// Prepare creates both directories. Creation is idempotent, so a leftover
// tree from an earlier run is fine.
func (w Workspace) Prepare() error {
	for _, dir := range []string{w.FramesDir, w.CacheDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("media: cannot create %s: %w", dir, err)
		}
	}
	return nil
}

// CleanupFrames removes the stills directory and everything under it.
func (w Workspace) CleanupFrames() error {
	return os.RemoveAll(w.FramesDir)
}
