// Package gui implements the editor side panel: a few immediate-mode
// widgets that report user actions as Events on a channel.
package gui

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
)

// Layout constants in pixels.
const (
	DefaultFontSize = 20
	MinFontSize     = 8
	LabelFontSize   = 18
	TextPadding     = 10
	CheckboxSize    = 20
	CheckboxSpacing = 30
	CheckPadding    = 4
	CheckSize       = 12
	TrackHeight     = 4
	HandleSize      = 16
	SliderLabelGap  = 20
	NavButtonWidth  = 60
	NavButtonHeight = 20
	NavButtonMargin = 10
	NavButtonBottom = 30
)

// Rect is a widget area relative to the panel origin.
type Rect struct {
	X, Y, W, H int
}

// At returns r moved by (ox, oy).
func (r Rect) At(ox, oy int) Rect { return Rect{r.X + ox, r.Y + oy, r.W, r.H} }

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Widget is one panel element. ox, oy is the panel origin on screen.
type Widget interface {
	Render(c render.Canvas, ox, oy int)
	HandleInput(in input.Input, ox, oy int)
}

// TextWidth estimates the pixel width of s at size: one column is half the
// font height.
func TextWidth(s string, size int) int {
	return runewidth.StringWidth(s) * size / 2
}

// FitFontSize shrinks size until s fits in maxWidth or MinFontSize is
// reached.
func FitFontSize(s string, maxWidth, size int) int {
	for size > MinFontSize && TextWidth(s, size) > maxWidth {
		size--
	}
	return size
}

// Label is static text.
type Label struct {
	Bounds   Rect
	Text     string
	Color    render.Color
	FontSize int
}

func (l *Label) Render(c render.Canvas, ox, oy int) {
	b := l.Bounds.At(ox, oy)
	c.Text(b.X, b.Y, l.Text, FitFontSize(l.Text, b.W, l.FontSize), l.Color)
}

func (*Label) HandleInput(input.Input, int, int) {}

// Button publishes Event when clicked.
type Button struct {
	Bounds  Rect
	Text    string
	Color   render.Color
	Event   Event
	out     chan<- Event
	hovered bool
	held    bool
}

// NewButton creates a button that sends ev on out.
func NewButton(bounds Rect, text string, color render.Color, ev Event, out chan<- Event) *Button {
	return &Button{Bounds: bounds, Text: text, Color: color, Event: ev, out: out}
}

func (b *Button) Render(c render.Canvas, ox, oy int) {
	r := b.Bounds.At(ox, oy)
	col := b.Color
	switch {
	case b.held:
		col = render.DarkGray
	case b.hovered:
		col = render.Gray
	}
	c.FillRect(r.X, r.Y, r.W, r.H, col)
	c.StrokeRect(r.X, r.Y, r.W, r.H, render.Black)
	size := FitFontSize(b.Text, r.W-TextPadding, DefaultFontSize)
	tw := TextWidth(b.Text, size)
	c.Text(r.X+(r.W-tw)/2, r.Y+(r.H-size)/2, b.Text, size, render.Black)
}

func (b *Button) HandleInput(in input.Input, ox, oy int) {
	x, y := in.Pointer()
	b.hovered = b.Bounds.At(ox, oy).Contains(x, y)
	b.held = b.hovered && in.ButtonDown(input.ButtonLeft)
	if b.hovered && in.ButtonPressed(input.ButtonLeft) {
		publish(b.out, b.Event)
	}
}

// Checkbox toggles Checked on click and publishes EventGridToggle.
type Checkbox struct {
	Bounds  Rect
	Text    string
	Checked bool
	out     chan<- Event
}

// NewCheckbox creates a checkbox that reports changes on out.
func NewCheckbox(bounds Rect, text string, checked bool, out chan<- Event) *Checkbox {
	return &Checkbox{Bounds: bounds, Text: text, Checked: checked, out: out}
}

func (cb *Checkbox) box(ox, oy int) Rect {
	b := cb.Bounds.At(ox, oy)
	return Rect{b.X, b.Y, CheckboxSize, CheckboxSize}
}

func (cb *Checkbox) Render(c render.Canvas, ox, oy int) {
	box := cb.box(ox, oy)
	c.FillRect(box.X, box.Y, box.W, box.H, render.White)
	c.StrokeRect(box.X, box.Y, box.W, box.H, render.Black)
	if cb.Checked {
		c.FillRect(box.X+CheckPadding, box.Y+CheckPadding, CheckSize, CheckSize, render.Green)
	}
	b := cb.Bounds.At(ox, oy)
	size := FitFontSize(cb.Text, b.W-CheckboxSpacing, LabelFontSize)
	c.Text(b.X+CheckboxSpacing, b.Y+2, cb.Text, size, render.Black)
}

func (cb *Checkbox) HandleInput(in input.Input, ox, oy int) {
	x, y := in.Pointer()
	if in.ButtonPressed(input.ButtonLeft) && cb.box(ox, oy).Contains(x, y) {
		cb.Checked = !cb.Checked
		publish(cb.out, Event{Kind: EventGridToggle, On: cb.Checked})
	}
}

// Slider picks an integer in [Min, Max] by dragging along its track. It
// publishes EventBrushSize whenever the integer value changes.
type Slider struct {
	Bounds   Rect
	Text     string
	Min, Max int
	value    int
	dragging bool
	out      chan<- Event
}

// NewSlider creates a slider starting at value.
func NewSlider(bounds Rect, text string, lo, hi, value int, out chan<- Event) *Slider {
	s := &Slider{Bounds: bounds, Text: text, Min: lo, Max: hi, out: out}
	s.SetValue(value)
	return s
}

// Value returns the current value.
func (s *Slider) Value() int { return s.value }

// SetValue clamps v into range without publishing.
func (s *Slider) SetValue(v int) { s.value = min(max(v, s.Min), s.Max) }

func (s *Slider) Render(c render.Canvas, ox, oy int) {
	b := s.Bounds.At(ox, oy)
	trackY := b.Y + b.H/2
	c.FillRect(b.X, trackY-TrackHeight/2, b.W, TrackHeight, render.DarkGray)

	hx := b.X
	if s.Max > s.Min {
		hx += (s.value - s.Min) * (b.W - HandleSize) / (s.Max - s.Min)
	}
	col := render.Gray
	if s.dragging {
		col = render.Blue
	}
	c.FillRect(hx, trackY-HandleSize/2, HandleSize, HandleSize, col)
	c.StrokeRect(hx, trackY-HandleSize/2, HandleSize, HandleSize, render.Black)

	label := s.Text + " " + strconv.Itoa(s.value)
	c.Text(b.X, b.Y-SliderLabelGap, label, FitFontSize(label, b.W, LabelFontSize), render.Black)
}

func (s *Slider) HandleInput(in input.Input, ox, oy int) {
	b := s.Bounds.At(ox, oy)
	x, y := in.Pointer()
	if in.ButtonPressed(input.ButtonLeft) && b.Contains(x, y) {
		s.dragging = true
	}
	if !in.ButtonDown(input.ButtonLeft) {
		s.dragging = false
	}
	if !s.dragging || b.W <= 0 {
		return
	}
	rel := min(max(x-b.X, 0), b.W-1)
	v := s.Min + rel*(s.Max-s.Min+1)/b.W
	if v != s.value {
		s.SetValue(v)
		publish(s.out, Event{Kind: EventBrushSize, Value: s.value})
	}
}
