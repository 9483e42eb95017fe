package gui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
)

// Brush size range offered by the panel slider.
const (
	MinBrushSize = 1
	MaxBrushSize = 10
)

// FoldTab is how much of a folded panel stays on screen.
const FoldTab = 16

// Options configures a Panel.
type Options struct {
	X, Y, W, H int
	Background render.Color
	ShowGrid   bool
	FoldTime   float32 // seconds
	Loader     render.TextureLoader
	Images     []string
	Log        *zap.Logger
}

// Panel is the editor side panel. Its widgets report through the channel
// returned by Events; the owner drains it once per frame.
type Panel struct {
	x, y, w, h int
	bg         render.Color
	widgets    []Widget
	events     chan Event

	slider   *Slider
	checkbox *Checkbox
	browser  *ImageBrowser

	folded   bool
	slide    float32 // pixels pushed off screen
	foldTime float32
	tween    *gween.Tween
}

// NewPanel lays out the title, brush slider, clear and save buttons, grid
// checkbox and image browser.
func NewPanel(o Options) *Panel {
	if o.Background == (render.Color{}) {
		o.Background = render.LightGray
	}
	p := &Panel{
		x: o.X, y: o.Y, w: o.W, h: o.H,
		bg:       o.Background,
		events:   make(chan Event, 32),
		foldTime: o.FoldTime,
	}
	inner := o.W - 2*TextPadding
	y := 20
	p.add(&Label{Bounds: Rect{TextPadding, y, inner, 30}, Text: "Tile Editor", Color: render.Black, FontSize: 24})
	y += 60
	p.slider = NewSlider(Rect{TextPadding, y, inner, 20}, "Brush Size:", MinBrushSize, MaxBrushSize, MinBrushSize, p.events)
	p.add(p.slider)
	y += 40
	p.add(NewButton(Rect{TextPadding, y, inner, 30}, "Clear All", render.Red, Event{Kind: EventClear}, p.events))
	y += 40
	p.add(NewButton(Rect{TextPadding, y, inner, 30}, "Save", render.Green, Event{Kind: EventSave}, p.events))
	y += 40
	p.checkbox = NewCheckbox(Rect{TextPadding, y, inner, 25}, "Show Grid", o.ShowGrid, p.events)
	p.add(p.checkbox)
	y += 35
	p.browser = NewImageBrowser(Rect{TextPadding, y, inner, 150}, o.Loader, o.Log, p.events)
	p.browser.SetImages(o.Images)
	p.add(p.browser)
	return p
}

func (p *Panel) add(w Widget) { p.widgets = append(p.widgets, w) }

// Events is the channel widgets publish on.
func (p *Panel) Events() <-chan Event { return p.events }

// Origin returns the panel's current top-left corner, including the fold
// slide.
func (p *Panel) Origin() (int, int) { return p.x + int(p.slide), p.y }

// Width returns the panel width.
func (p *Panel) Width() int { return p.w }

// Contains reports whether (x, y) is over the visible part of the panel.
func (p *Panel) Contains(x, y int) bool {
	ox, oy := p.Origin()
	return Rect{ox, oy, p.w - int(p.slide), p.h}.Contains(x, y)
}

// Folded reports whether the panel is folded or folding.
func (p *Panel) Folded() bool { return p.folded }

// Animating reports whether a fold tween is running.
func (p *Panel) Animating() bool { return p.tween != nil }

// ToggleFold slides the panel out of view or back in.
func (p *Panel) ToggleFold() {
	p.folded = !p.folded
	target := float32(0)
	if p.folded {
		target = float32(p.w - FoldTab)
	}
	if p.foldTime <= 0 {
		p.slide, p.tween = target, nil
		return
	}
	p.tween = gween.New(p.slide, target, p.foldTime, ease.OutCubic)
}

// SetShowGrid syncs the checkbox with a grid toggle made elsewhere.
func (p *Panel) SetShowGrid(on bool) { p.checkbox.Checked = on }

// BrushSize returns the slider value.
func (p *Panel) BrushSize() int { return p.slider.Value() }

// Browser returns the image browser.
func (p *Panel) Browser() *ImageBrowser { return p.browser }

// Move places the panel, e.g. after a resize.
func (p *Panel) Move(x, y, h int) { p.x, p.y, p.h = x, y, h }

// Update advances the fold animation.
func (p *Panel) Update(dt float64) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(float32(dt))
	p.slide = v
	if done {
		p.tween = nil
	}
}

// HandleInput forwards input to the widgets. A folded panel ignores input.
func (p *Panel) HandleInput(in input.Input) {
	if p.folded || p.tween != nil {
		return
	}
	ox, oy := p.Origin()
	for _, w := range p.widgets {
		w.HandleInput(in, ox, oy)
	}
}

// Render draws the background and every widget.
func (p *Panel) Render(c render.Canvas) {
	ox, oy := p.Origin()
	c.FillRect(ox, oy, p.w, p.h, p.bg)
	c.StrokeRect(ox, oy, p.w, p.h, render.Black)
	if p.folded && p.tween == nil {
		c.Text(ox+2, oy+p.h/2, "<", 16, render.Black)
		return
	}
	for _, w := range p.widgets {
		w.Render(c, ox, oy)
	}
}

// Close releases the browser texture.
func (p *Panel) Close() { p.browser.Unload() }
