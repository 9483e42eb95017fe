package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
)

// click runs one frame with the left button pressed at (x, y), then one
// frame with it released.
func click(p *Panel, s *input.State, x, y int) {
	s.Advance()
	s.SetPointer(x, y)
	s.SetButton(input.ButtonLeft, true)
	p.HandleInput(s)
	s.Advance()
	s.SetButton(input.ButtonLeft, false)
	p.HandleInput(s)
}

func drain(p *Panel) []Event {
	var out []Event
	for {
		select {
		case ev := <-p.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

func newTestPanel() *Panel {
	return NewPanel(Options{X: 600, W: 200, H: 600, ShowGrid: true})
}

func TestPanelButtons(t *testing.T) {
	p := newTestPanel()
	s := input.NewState()

	// Clear button: y 120..150, save button: y 160..190.
	click(p, s, 650, 130)
	click(p, s, 650, 170)
	assert.Equal(t, []Event{{Kind: EventClear}, {Kind: EventSave}}, drain(p))
}

func TestPanelCheckbox(t *testing.T) {
	p := newTestPanel()
	s := input.NewState()
	click(p, s, 615, 205)
	assert.Equal(t, []Event{{Kind: EventGridToggle, On: false}}, drain(p))
	click(p, s, 615, 205)
	assert.Equal(t, []Event{{Kind: EventGridToggle, On: true}}, drain(p))
}

func TestPanelSliderDrag(t *testing.T) {
	p := newTestPanel()
	s := input.NewState()

	s.Advance()
	s.SetPointer(610, 90)
	s.SetButton(input.ButtonLeft, true)
	p.HandleInput(s)
	assert.Empty(t, drain(p), "value unchanged at the left end")

	s.Advance()
	s.SetPointer(900, 90)
	p.HandleInput(s)
	assert.Equal(t, []Event{{Kind: EventBrushSize, Value: MaxBrushSize}}, drain(p))
	assert.Equal(t, MaxBrushSize, p.BrushSize())

	s.Advance()
	s.SetButton(input.ButtonLeft, false)
	s.SetPointer(610, 90)
	p.HandleInput(s)
	assert.Empty(t, drain(p), "released slider stops tracking")
}

func TestPanelIgnoresInputOutside(t *testing.T) {
	p := newTestPanel()
	s := input.NewState()
	click(p, s, 100, 130)
	assert.Empty(t, drain(p))
	assert.False(t, p.Contains(100, 130))
	assert.True(t, p.Contains(650, 130))
}

func TestPanelFold(t *testing.T) {
	p := NewPanel(Options{X: 600, W: 200, H: 600, FoldTime: 0.5})
	p.ToggleFold()
	require.True(t, p.Animating())

	s := input.NewState()
	click(p, s, 650, 130)
	assert.Empty(t, drain(p), "no input while animating")

	for range 10 {
		p.Update(0.1)
	}
	assert.False(t, p.Animating())
	x, _ := p.Origin()
	assert.Equal(t, 600+200-FoldTab, x)
	assert.False(t, p.Contains(650, 130))

	rec := render.NewRecorder(800, 600)
	p.Render(rec)
	assert.Equal(t, []render.Op{{Kind: "text", X: x + 2, Y: 300, H: 16, Text: "<", Color: render.Black}}, rec.Filter("text"))

	p.ToggleFold()
	for range 10 {
		p.Update(0.1)
	}
	x, _ = p.Origin()
	assert.Equal(t, 600, x)
}

func TestPanelFoldInstant(t *testing.T) {
	p := newTestPanel()
	p.ToggleFold()
	assert.False(t, p.Animating())
	assert.True(t, p.Folded())
}

func TestPanelRender(t *testing.T) {
	p := newTestPanel()
	rec := render.NewRecorder(800, 600)
	p.Render(rec)

	fills := rec.Filter("fill")
	require.NotEmpty(t, fills)
	assert.Equal(t, render.Op{Kind: "fill", X: 600, Y: 0, W: 200, H: 600, Color: render.LightGray}, fills[0])

	var texts []string
	for _, op := range rec.Filter("text") {
		texts = append(texts, op.Text)
	}
	assert.Contains(t, texts, "Tile Editor")
	assert.Contains(t, texts, "Brush Size: 1")
	assert.Contains(t, texts, "No Image")
}

func TestImageBrowser(t *testing.T) {
	rec := render.NewRecorder(800, 600)
	rec.Textures["a.png"] = render.Size{W: 40, H: 20}
	rec.Textures["c.png"] = render.Size{W: 10, H: 10}

	ch := make(chan Event, 4)
	b := NewImageBrowser(Rect{0, 0, 180, 150}, rec, nil, ch)
	b.SetImages([]string{"a.png", "b.png", "c.png"})
	require.NotNil(t, b.Texture())

	b.Next()
	assert.Equal(t, "b.png", b.Current())
	assert.Nil(t, b.Texture(), "missing image falls back to the placeholder")
	b.Prev()
	b.Prev()
	assert.Equal(t, "c.png", b.Current())
	assert.Equal(t, Event{Kind: EventImageSelect, Path: "b.png"}, <-ch)
	assert.Equal(t, Event{Kind: EventImageSelect, Path: "a.png"}, <-ch)
	assert.Equal(t, Event{Kind: EventImageSelect, Path: "c.png"}, <-ch)

	rec.Reset()
	b.Render(rec, 0, 0)
	tex := rec.Filter("texture")
	require.Len(t, tex, 1)
	assert.Equal(t, render.Op{Kind: "texture", X: 15, Y: 0, W: 150, H: 150, Text: "c.png"}, tex[0])
}

func TestFitFontSize(t *testing.T) {
	assert.Equal(t, 20, FitFontSize("abc", 100, 20))
	assert.Equal(t, 10, FitFontSize("abcdefghij", 50, 20))
	assert.Equal(t, MinFontSize, FitFontSize("a very long label indeed", 10, 20))
}
