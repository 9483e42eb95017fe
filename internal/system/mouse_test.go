package system

import (
	"testing"

	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/render"
)

func TestHoverSelectsOnClick(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	_ = ecs.Emplace(r, e, component.Rect{X: 10, Y: 10, W: 20, H: 20})
	_ = ecs.Emplace(r, e, component.MouseInteractible{})
	_ = ecs.Emplace(r, e, component.Drawable{Tint: render.Gray, DefaultTint: render.Gray})

	var h Hover
	if h.OnUpdate(r, 0) {
		t.Error("no pointer context: nothing to do")
	}

	p := ecs.SetContext(r, component.Pointer{X: 15, Y: 15})
	h.OnUpdate(r, 0)
	mi := ecs.MustGet[component.MouseInteractible](r, e)
	if !mi.Hovered || mi.Selected {
		t.Fatalf("hover only: %+v", mi)
	}

	p.Clicked, p.Down = true, true
	if !h.OnUpdate(r, 0) {
		t.Error("click should report a change")
	}
	if !mi.Selected || ecs.MustGet[component.Drawable](r, e).Tint != SelectedTint {
		t.Fatalf("after click: %+v", mi)
	}

	p.Clicked = false
	h.OnUpdate(r, 0)
	if !mi.Selected {
		t.Error("selection is sticky until the next click")
	}

	p.X, p.Clicked = 100, true
	h.OnUpdate(r, 0)
	if mi.Hovered || !mi.Selected {
		t.Errorf("click elsewhere: %+v", mi)
	}
}

func TestHoverDrag(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	_ = ecs.Emplace(r, e, component.Rect{X: 0, Y: 0, W: 10, H: 10})
	_ = ecs.Emplace(r, e, component.Draggable{})

	var h Hover
	p := ecs.SetContext(r, component.Pointer{X: 5, Y: 5})
	h.OnUpdate(r, 0)

	p.Down, p.Clicked = true, true
	h.OnUpdate(r, 0)
	if !ecs.MustGet[component.Draggable](r, e).Dragged {
		t.Fatal("click inside should start a drag")
	}

	p.Clicked = false
	p.X, p.Y = 25, 15
	h.OnUpdate(r, 0)
	rect := ecs.MustGet[component.Rect](r, e)
	if rect.X != 20 || rect.Y != 10 {
		t.Errorf("rect at (%v,%v), want (20,10)", rect.X, rect.Y)
	}

	p.Down = false
	p.X = 90
	h.OnUpdate(r, 0)
	if rect.X != 20 || ecs.MustGet[component.Draggable](r, e).Dragged {
		t.Error("release should end the drag")
	}
}
