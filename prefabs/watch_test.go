package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want Change
		ok   bool
	}{
		{"prefabs/world.yaml", Change{ChangeWorld, "world.yaml"}, true},
		{"/tmp/x/tile.yaml", Change{ChangeTile, "tile.yaml"}, true},
		{"prefabs/scripts/tile_style.tengo", Change{ChangeScript, "tile_style.tengo"}, true},
		{"prefabs/scripts/OTHER.TENGO", Change{ChangeScript, "OTHER.TENGO"}, true},
		{"prefabs/other.yaml", Change{}, false},
		{"prefabs/tile.yaml~", Change{}, false},
		{"prefabs/notes.txt", Change{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := ClassifyChange(tc.path)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ClassifyChange(%q) = %+v, %v; want %+v, %v", tc.path, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestWatcherReportsSettledEdit(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherWithDebounce(20*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, TileSpecFile)
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("size: 40\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case c := <-w.Changes():
		if c.Kind != ChangeTile || c.Name != TileSpecFile {
			t.Fatalf("unexpected change %+v", c)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported")
	}

	// repeated writes settle into a single change
	time.Sleep(100 * time.Millisecond)
	changes, err := w.Poll()
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("expected no further changes, got %+v", changes)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
