package ecs

import (
	"errors"
	"testing"
)

// stub components used only in tests
type testComp struct{ val int }

type otherComp struct{}

type tagComp struct{}

func TestCreateEntity(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	if e == Null {
		t.Fatal("expected non-null entity")
	}
	if !r.Valid(e) {
		t.Fatal("expected entity to be valid after creation")
	}
	if r.Alive() != 1 {
		t.Fatalf("Alive() = %d; want 1", r.Alive())
	}
}

func TestEmplaceAndGetComponent(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	if err := Emplace(r, e, testComp{val: 42}); err != nil {
		t.Fatalf("Emplace: %v", err)
	}

	c, err := Get[testComp](r, e)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.val != 42 {
		t.Fatalf("expected val=42, got %d", c.val)
	}
}

func TestEmplaceOverwrites(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	_ = Emplace(r, e, testComp{val: 1})
	_ = Emplace(r, e, testComp{val: 2})

	if n := Count[testComp](r); n != 1 {
		t.Fatalf("Count = %d; want 1 after overwrite", n)
	}
	if got := MustGet[testComp](r, e).val; got != 2 {
		t.Fatalf("val = %d; want 2", got)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	_ = Emplace(r, e, testComp{val: 7})
	_ = Emplace(r, e, otherComp{})
	if err := r.Destroy(e); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	if r.Valid(e) {
		t.Fatal("entity should not be valid after Destroy")
	}
	if Count[testComp](r) != 0 || Count[otherComp](r) != 0 {
		t.Fatal("storages should be empty after Destroy")
	}
	if _, err := Get[testComp](r, e); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Destroy: err = %v; want ErrNotFound", err)
	}
}

func TestDestroyTwiceIsStale(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	_ = r.Destroy(e)
	if err := r.Destroy(e); !errors.Is(err, ErrStaleEntity) {
		t.Fatalf("second Destroy: err = %v; want ErrStaleEntity", err)
	}
}

func TestRecycledIDGetsNewVersion(t *testing.T) {
	r := NewRegistry()
	old := r.Create()
	_ = Emplace(r, old, testComp{val: 1})
	_ = r.Destroy(old)

	fresh := r.Create()
	if fresh.ID() != old.ID() {
		t.Fatalf("expected ID %d to be recycled, got %d", old.ID(), fresh.ID())
	}
	if fresh == old {
		t.Fatal("recycled handle must differ from the stale one")
	}
	if r.Valid(old) {
		t.Fatal("stale handle must not be valid")
	}
	_ = Emplace(r, fresh, testComp{val: 2})
	if Has[testComp](r, old) {
		t.Fatal("stale handle must not see the new entity's components")
	}
	if err := Emplace(r, old, testComp{val: 3}); !errors.Is(err, ErrStaleEntity) {
		t.Fatalf("Emplace on stale handle: err = %v; want ErrStaleEntity", err)
	}
}

func TestRemoveComponent(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	_ = Emplace(r, e, testComp{val: 5})

	if !Remove[testComp](r, e) {
		t.Fatal("Remove should report true for a present component")
	}
	if Has[testComp](r, e) {
		t.Fatal("component should be gone after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	// Removing a component type that was never added must not panic.
	if Remove[otherComp](r, e) {
		t.Fatal("Remove of a never-added type should report false")
	}
}

func TestHasComponent(t *testing.T) {
	r := NewRegistry()
	e := r.Create()

	if Has[testComp](r, e) {
		t.Fatal("Has should return false before Emplace")
	}
	_ = Emplace(r, e, testComp{val: 1})
	if !Has[testComp](r, e) {
		t.Fatal("Has should return true after Emplace")
	}
	Remove[testComp](r, e)
	if Has[testComp](r, e) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestPatchMutatesInPlace(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	_ = Emplace(r, e, testComp{val: 1})
	if err := Patch(r, e, func(c *testComp) { c.val += 10 }); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if got := MustGet[testComp](r, e).val; got != 11 {
		t.Fatalf("val = %d; want 11", got)
	}
	if err := Patch(r, e, func(*otherComp) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Patch on missing component: err = %v; want ErrNotFound", err)
	}
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet should panic when the component is missing")
		}
	}()
	MustGet[testComp](r, e)
}

func TestComponentsListsTypes(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	_ = Emplace(r, e, testComp{})
	_ = Emplace(r, e, tagComp{})

	got := r.Components(e)
	if len(got) != 2 {
		t.Fatalf("Components = %v; want 2 entries", got)
	}
	if got[0] != TypeOf[testComp]() || got[1] != TypeOf[tagComp]() {
		t.Fatalf("Components = %v; want [testComp tagComp] in creation order", got)
	}
}

func TestClearResetsEverything(t *testing.T) {
	r := NewRegistry()
	a := r.Create()
	b := r.Create()
	_ = Emplace(r, a, testComp{})
	_ = Emplace(r, b, otherComp{})
	SetContext(r, testComp{val: 3})

	r.Clear()

	if r.Alive() != 0 {
		t.Fatalf("Alive() = %d after Clear; want 0", r.Alive())
	}
	if r.Valid(a) || r.Valid(b) {
		t.Fatal("handles must be invalid after Clear")
	}
	if Count[testComp](r) != 0 || Count[otherComp](r) != 0 {
		t.Fatal("storages must be empty after Clear")
	}
	if HasContext[testComp](r) {
		t.Fatal("context must be empty after Clear")
	}
	if e := r.Create(); !r.Valid(e) {
		t.Fatal("registry must be usable after Clear")
	}
}

func TestEntityString(t *testing.T) {
	if Null.String() != "null" {
		t.Errorf("Null.String() = %q", Null.String())
	}
	if got := newEntity(3, 2).String(); got != "3.2" {
		t.Errorf("String() = %q; want 3.2", got)
	}
}
