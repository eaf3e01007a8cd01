package media

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkspacePrepareIdempotent(t *testing.T) {
	base := t.TempDir()
	ws := NewWorkspace(filepath.Join(base, "temp_frames"), filepath.Join(base, "ascii_cache"))

	if err := ws.Prepare(); err != nil {
		t.Fatalf("Prepare() failed: %v", err)
	}
	// Second run against existing directories must not fail.
	if err := ws.Prepare(); err != nil {
		t.Fatalf("Prepare() on existing dirs failed: %v", err)
	}

	for _, dir := range []string{ws.FramesDir, ws.CacheDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%s) failed: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestWorkspaceCleanupRemovesOnlyFrames(t *testing.T) {
	base := t.TempDir()
	ws := NewWorkspace(filepath.Join(base, "temp_frames"), filepath.Join(base, "ascii_cache"))
	if err := ws.Prepare(); err != nil {
		t.Fatalf("Prepare() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(ws.FramesDir, "frame_0001.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := ws.CleanupFrames(); err != nil {
		t.Fatalf("CleanupFrames() failed: %v", err)
	}

	if _, err := os.Stat(ws.FramesDir); !os.IsNotExist(err) {
		t.Error("frames dir should be gone after cleanup")
	}
	if _, err := os.Stat(ws.CacheDir); err != nil {
		t.Error("cache dir should survive cleanup")
	}
}

func TestWorkspaceCleanupMissingDir(t *testing.T) {
	ws := NewWorkspace(filepath.Join(t.TempDir(), "absent"), filepath.Join(t.TempDir(), "cache"))

	// RemoveAll of a missing path is not an error.
	if err := ws.CleanupFrames(); err != nil {
		t.Errorf("CleanupFrames() of missing dir failed: %v", err)
	}
}
