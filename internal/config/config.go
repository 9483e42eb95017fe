// Package config loads the sandbox settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tile-sandbox/internal/render"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Simulation modes.
const (
	ModeSandbox = "sandbox"
	ModeGravity = "gravity"
)

type Config struct {
	Mode    string        `yaml:"mode"`
	Screen  ScreenConfig  `yaml:"screen"`
	Grid    GridConfig    `yaml:"grid"`
	Panel   PanelConfig   `yaml:"panel"`
	Physics PhysicsConfig `yaml:"physics"`
	Log     LogConfig     `yaml:"log"`
	// SaveDir overrides where tilemap dumps go. Empty means the XDG data dir.
	SaveDir string `yaml:"save_dir"`
}

type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
	// CellWidth and CellHeight are the pixels one terminal cell stands for.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

type GridConfig struct {
	TileSize int      `yaml:"tile_size"`
	Show     bool     `yaml:"show"`
	Palette  []string `yaml:"palette"` // "#rrggbb" for values 1..n
}

type PanelConfig struct {
	Width    int     `yaml:"width"`
	FoldTime float64 `yaml:"fold_time"` // seconds
	Images   string  `yaml:"images"`    // directory listed by the image browser
}

type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	File     string `yaml:"file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode: ModeSandbox,
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			Title:      "Tile Sandbox",
			FPS:        60,
			CellWidth:  10,
			CellHeight: 20,
		},
		Grid:    GridConfig{TileSize: 20, Show: true},
		Panel:   PanelConfig{Width: 200, FoldTime: 0.25},
		Physics: PhysicsConfig{Gravity: 9.81, PixelsPerMeter: 40},
		Log:     LogConfig{Level: "info", Encoding: "console"},
	}
}

// Load reads a YAML file over the defaults. A missing path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and the palette syntax.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Mode == ModeSandbox || c.Mode == ModeGravity, "mode %q", c.Mode)
	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "fps %d", c.Screen.FPS)
	check(c.Screen.CellWidth > 0 && c.Screen.CellHeight > 0, "cell size %dx%d", c.Screen.CellWidth, c.Screen.CellHeight)
	check(c.Grid.TileSize > 0, "tile size %d", c.Grid.TileSize)
	check(c.Panel.Width >= 0 && c.Panel.Width < c.Screen.Width, "panel width %d", c.Panel.Width)
	check(c.Panel.FoldTime >= 0, "fold time %v", c.Panel.FoldTime)
	check(c.Physics.PixelsPerMeter > 0, "pixels per meter %v", c.Physics.PixelsPerMeter)
	for i, s := range c.Grid.Palette {
		_, err := ParseColor(s)
		check(err == nil, "palette[%d] %q", i, s)
	}
	return errors.Join(errs...)
}

// Palette returns the configured colors, or nil when none are set.
func (c Config) Palette() []render.Color {
	if len(c.Grid.Palette) == 0 {
		return nil
	}
	out := make([]render.Color, 0, len(c.Grid.Palette))
	for _, s := range c.Grid.Palette {
		col, err := ParseColor(s)
		if err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}

// ParseColor reads "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (render.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return render.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return render.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		n = n<<8 | 0xff
	}
	return render.Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
