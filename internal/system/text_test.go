package system

import (
	"testing"

	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/render"
)

func TestTextSyncAddsDrawable(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	_ = ecs.Emplace(r, e, component.Text{Content: "hi", Color: render.Red})

	var ts TextSync
	if !ts.OnUpdate(r, 0) {
		t.Fatal("expected a Drawable to be added")
	}
	d, err := ecs.Get[component.Drawable](r, e)
	if err != nil {
		t.Fatal(err)
	}
	if d.Tint != render.Red || d.DefaultTint != render.Red {
		t.Errorf("drawable=%+v", d)
	}
	if ts.OnUpdate(r, 0) {
		t.Error("second tick should find nothing to do")
	}
}

func TestTextSyncToggle(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	_ = ecs.Emplace(r, e, component.Text{Content: "hi"})

	var ts TextSync
	ts.Toggle()
	if ts.Enabled() || ts.OnUpdate(r, 0) || ecs.Has[component.Drawable](r, e) {
		t.Fatal("disabled system must not run")
	}
	ts.Toggle()
	if !ts.OnUpdate(r, 0) {
		t.Error("re-enabled system should run")
	}
}
