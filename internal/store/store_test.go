package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tile-sandbox/internal/grid"
)

func TestDataDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir returned error: %v", err)
	}
	if want := filepath.Join(tmp, "tile-sandbox"); dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestDataDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := DataDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "tile-sandbox")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.Set(0, 0, 1)
	_ = g.Set(1, 1, 1)
	return g
}

func TestSaveWritesDump(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s, err := Open("", "alice")
	if err != nil {
		t.Fatal(err)
	}
	saved, err := s.Save(testGrid(t))
	if err != nil || !saved {
		t.Fatalf("Save = %v, %v", saved, err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("dump not created: %v", err)
	}
	if got := string(data); got != "tilemap\n tileSize 20\n1 0 \n0 1 \n" {
		t.Errorf("dump = %q", got)
	}
}

func TestSaveSkipsUnchanged(t *testing.T) {
	s, err := Open(t.TempDir(), "map")
	if err != nil {
		t.Fatal(err)
	}
	g := testGrid(t)
	if saved, _ := s.Save(g); !saved {
		t.Fatal("first save should write")
	}
	if saved, _ := s.Save(g); saved {
		t.Error("unchanged grid should not be written again")
	}
	_ = g.Set(0, 1, 3)
	if saved, _ := s.Save(g); !saved {
		t.Error("changed grid should be written")
	}

	hist, err := s.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 {
		t.Fatalf("history has %d records, want 2", len(hist))
	}
	if hist[1].Painted != 3 || hist[1].Cols != 2 || hist[1].Name != "map" {
		t.Errorf("last record = %+v", hist[1])
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir, "map")
	s.now = func() time.Time { return time.Unix(0, 0) }
	g := testGrid(t)
	if _, err := s.Save(g); err != nil {
		t.Fatal(err)
	}

	fresh, _ := Open(dir, "map")
	back, err := fresh.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(g) {
		t.Errorf("loaded %q, want %q", back.Serialize(), g.Serialize())
	}
	if saved, _ := fresh.Save(back); saved {
		t.Error("saving the grid just loaded should be skipped")
	}
}

func TestLoadMissing(t *testing.T) {
	s, _ := Open(t.TempDir(), "nothing")
	if _, err := s.Load(); !errors.Is(err, ErrNoSave) {
		t.Errorf("err = %v, want ErrNoSave", err)
	}
	hist, err := s.History()
	if err != nil || hist != nil {
		t.Errorf("History = %v, %v", hist, err)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir, "bad")
	if err := os.WriteFile(s.Path(), []byte("not a tilemap"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); !errors.Is(err, grid.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestOpenSanitizesName(t *testing.T) {
	s, _ := Open("/tmp/x", "../evil name")
	if got := filepath.Base(s.Path()); got != ".._evil_name.txt" {
		t.Errorf("path base = %q", got)
	}
	if filepath.Dir(s.Path()) != "/tmp/x" {
		t.Errorf("path escaped the store dir: %q", s.Path())
	}
}
