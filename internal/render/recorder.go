package render

import "fmt"

// Op is one recorded draw request.
type Op struct {
	Kind       string // "clear", "fill", "stroke", "line", "text", "texture"
	X, Y, W, H int
	Text       string
	Color      Color
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text(%d,%d %q)", o.X, o.Y, o.Text)
	case "line":
		return fmt.Sprintf("line(%d,%d-%d,%d)", o.X, o.Y, o.W, o.H)
	}
	return fmt.Sprintf("%s(%d,%d %dx%d)", o.Kind, o.X, o.Y, o.W, o.H)
}

// Recorder is a Canvas that keeps every request in memory. Tests and
// headless runs use it in place of a real backend.
type Recorder struct {
	W, H     int
	Ops      []Op
	Frames   int
	Textures map[string]Size
}

// Size is a texture size known to the Recorder's loader.
type Size struct{ W, H int }

// NewRecorder returns a Recorder with the given pixel size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, Textures: make(map[string]Size)}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", W: r.W, H: r.H, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, Color: c})
}

// Line records the end point in W and H.
func (r *Recorder) Line(x0, y0, x1, y1 int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, W: x1, H: y1, Color: c})
}

func (r *Recorder) Text(x, y int, s string, size int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, H: size, Text: s, Color: c})
}

func (r *Recorder) DrawTexture(t Texture, x, y, w, h int) {
	r.Ops = append(r.Ops, Op{Kind: "texture", X: x, Y: y, W: w, H: h, Text: t.Path()})
}

func (r *Recorder) Present() { r.Frames++ }

// Reset forgets recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the ops of kind.
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

type recordedTexture struct {
	path string
	size Size
}

func (t recordedTexture) Path() string     { return t.path }
func (t recordedTexture) Size() (int, int) { return t.size.W, t.size.H }

// LoadTexture succeeds for paths registered in Textures.
func (r *Recorder) LoadTexture(path string) (Texture, error) {
	sz, ok := r.Textures[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceLoad, path)
	}
	return recordedTexture{path: path, size: sz}, nil
}

func (r *Recorder) UnloadTexture(Texture) {}
