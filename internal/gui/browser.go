package gui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
)

// ImageBrowser shows one image at a time from Paths with Prev / Next
// buttons. Selecting an image publishes EventImageSelect. An image that
// fails to load is shown as a "No Image" placeholder.
type ImageBrowser struct {
	Bounds Rect
	Paths  []string
	index  int
	tex    render.Texture
	loader render.TextureLoader
	log    *zap.Logger
	out    chan<- Event
}

// NewImageBrowser creates a browser. loader may be nil, in which case
// every image renders as the placeholder.
func NewImageBrowser(bounds Rect, loader render.TextureLoader, log *zap.Logger, out chan<- Event) *ImageBrowser {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageBrowser{Bounds: bounds, loader: loader, log: log, out: out}
}

// SetImages replaces the list and shows the first entry.
func (b *ImageBrowser) SetImages(paths []string) {
	b.Paths = slices.Clone(paths)
	b.index = 0
	b.load()
}

// AddImage appends path, loading it when it is the only one.
func (b *ImageBrowser) AddImage(path string) {
	b.Paths = append(b.Paths, path)
	if len(b.Paths) == 1 {
		b.load()
	}
}

// Current returns the selected path, or "" when the list is empty.
func (b *ImageBrowser) Current() string {
	if len(b.Paths) == 0 {
		return ""
	}
	return b.Paths[b.index]
}

// Texture returns the loaded texture, or nil.
func (b *ImageBrowser) Texture() render.Texture { return b.tex }

// Next selects the following image, wrapping around.
func (b *ImageBrowser) Next() { b.step(1) }

// Prev selects the previous image, wrapping around.
func (b *ImageBrowser) Prev() { b.step(-1) }

func (b *ImageBrowser) step(d int) {
	n := len(b.Paths)
	if n < 2 {
		return
	}
	b.index = ((b.index+d)%n + n) % n
	b.load()
	publish(b.out, Event{Kind: EventImageSelect, Path: b.Current()})
}

func (b *ImageBrowser) load() {
	b.Unload()
	path := b.Current()
	if path == "" || b.loader == nil {
		return
	}
	tex, err := b.loader.LoadTexture(path)
	if err != nil {
		b.log.Warn("image browser: load failed", zap.String("path", path), zap.Error(err))
		return
	}
	b.tex = tex
}

// Unload releases the current texture.
func (b *ImageBrowser) Unload() {
	if b.tex != nil && b.loader != nil {
		b.loader.UnloadTexture(b.tex)
	}
	b.tex = nil
}

func (b *ImageBrowser) navButtons(ox, oy int) (prev, next Rect) {
	r := b.Bounds.At(ox, oy)
	y := r.Y + r.H - NavButtonBottom
	prev = Rect{r.X + NavButtonMargin, y, NavButtonWidth, NavButtonHeight}
	next = Rect{r.X + r.W - NavButtonWidth - NavButtonMargin, y, NavButtonWidth, NavButtonHeight}
	return prev, next
}

func (b *ImageBrowser) Render(c render.Canvas, ox, oy int) {
	r := b.Bounds.At(ox, oy)
	c.FillRect(r.X, r.Y, r.W, r.H, render.LightGray)
	c.StrokeRect(r.X, r.Y, r.W, r.H, render.Black)

	if b.tex != nil {
		tw, th := b.tex.Size()
		if tw > 0 && th > 0 {
			// Fit inside the bounds keeping the aspect ratio.
			w, h := r.W, th*r.W/tw
			if h > r.H {
				w, h = tw*r.H/th, r.H
			}
			c.DrawTexture(b.tex, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
		}
	} else {
		const placeholder = "No Image"
		tw := TextWidth(placeholder, DefaultFontSize)
		c.Text(r.X+(r.W-tw)/2, r.Y+r.H/2-TextPadding, placeholder, DefaultFontSize, render.DarkGray)
	}

	if len(b.Paths) > 1 {
		prev, next := b.navButtons(ox, oy)
		for _, nb := range []struct {
			r    Rect
			text string
		}{{prev, "Prev"}, {next, "Next"}} {
			c.FillRect(nb.r.X, nb.r.Y, nb.r.W, nb.r.H, render.Blue)
			c.Text(nb.r.X+15, nb.r.Y+2, nb.text, 16, render.White)
		}
	}
}

func (b *ImageBrowser) HandleInput(in input.Input, ox, oy int) {
	if len(b.Paths) < 2 || !in.ButtonPressed(input.ButtonLeft) {
		return
	}
	x, y := in.Pointer()
	prev, next := b.navButtons(ox, oy)
	switch {
	case prev.Contains(x, y):
		b.Prev()
	case next.Contains(x, y):
		b.Next()
	}
}

// ListImages returns the .png and .jpg files in dir, sorted. A missing
// directory yields no images.
func ListImages(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
