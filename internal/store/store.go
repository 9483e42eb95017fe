// Package store keeps tilemap dumps on disk.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"tile-sandbox/internal/grid"
)

const (
	appName     = "tile-sandbox"
	historyFile = "saves.jsonl"
)

// ErrNoSave is returned by Load when nothing was saved under the name yet.
var ErrNoSave = errors.New("store: no save")

// Record is one line of the save history.
type Record struct {
	Time     time.Time `json:"time"`
	Name     string    `json:"name"`
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	TileSize int       `json:"tile_size"`
	Painted  int       `json:"painted"`
	Checksum uint64    `json:"checksum"`
}

// Store writes <name>.txt tilemap dumps into one directory and appends a
// Record per write to saves.jsonl. A Store skips writes whose grid
// checksum matches the previous write.
type Store struct {
	dir   string
	name  string
	last  uint64
	saved bool
	now   func() time.Time
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Open returns a Store for name in dir. An empty dir means DataDir().
func Open(dir, name string) (*Store, error) {
	if dir == "" {
		d, err := DataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	name = unsafeName.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "tilemap"
	}
	return &Store{dir: dir, name: name, now: time.Now}, nil
}

// DataDir returns $XDG_DATA_HOME/tile-sandbox, defaulting to
// ~/.local/share/tile-sandbox.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("store: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}

// Dir returns the directory the Store writes to.
func (s *Store) Dir() string { return s.dir }

// Path returns the dump file path.
func (s *Store) Path() string { return filepath.Join(s.dir, s.name+".txt") }

// Save writes g's serialization. It reports false without touching the
// disk when g has not changed since the last successful Save.
func (s *Store) Save(g *grid.Grid) (bool, error) {
	sum := g.Checksum()
	if s.saved && sum == s.last {
		return false, nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return false, fmt.Errorf("store: %w", err)
	}
	if err := writeFile(s.Path(), []byte(g.Serialize())); err != nil {
		return false, err
	}
	s.last, s.saved = sum, true

	rec := Record{
		Time:     s.now().UTC(),
		Name:     s.name,
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		TileSize: g.TileSize(),
		Painted:  g.Painted(),
		Checksum: sum,
	}
	if err := s.appendHistory(rec); err != nil {
		return true, err
	}
	return true, nil
}

// Load parses the dump for this Store's name.
func (s *Store) Load() (*grid.Grid, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSave, s.Path())
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", s.Path(), err)
	}
	s.last, s.saved = g.Checksum(), true
	return g, nil
}

// History returns every Record in the directory, oldest first. Lines that
// do not decode are skipped.
func (s *Store) History() ([]Record, error) {
	f, err := os.Open(filepath.Join(s.dir, historyFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec Record
		if json.Unmarshal(sc.Bytes(), &rec) == nil {
			out = append(out, rec)
		}
	}
	return out, sc.Err()
}

func (s *Store) appendHistory(rec Record) error {
	f, err := os.OpenFile(filepath.Join(s.dir, historyFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store: history: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: history: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("store: history: %w", err)
	}
	return nil
}

// writeFile replaces path via a temp file and rename.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
