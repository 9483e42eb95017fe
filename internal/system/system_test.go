package system

import (
	"testing"

	"tile-sandbox/internal/ecs"
)

type recordSys struct {
	name    string
	log     *[]string
	changed bool
	dts     []float64
}

func (s *recordSys) OnUpdate(_ *ecs.Registry, dt float64) bool {
	*s.log = append(*s.log, s.name)
	s.dts = append(s.dts, dt)
	return s.changed
}

func TestSchedulerOrderAndDelta(t *testing.T) {
	var calls []string
	a := &recordSys{name: "a", log: &calls}
	b := &recordSys{name: "b", log: &calls, changed: true}
	c := &recordSys{name: "c", log: &calls}

	s := NewScheduler(nil)
	s.Add(a, b, nil, c)
	if s.Len() != 3 {
		t.Fatalf("Len=%d, want 3", s.Len())
	}
	r := ecs.NewRegistry()
	if !s.Tick(r, 0.25) {
		t.Error("Tick should report the change from b")
	}
	s.Tick(r, 0.5)

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls=%v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls=%v, want %v", calls, want)
		}
	}
	for _, sys := range []*recordSys{a, b, c} {
		if sys.dts[0] != 0.25 || sys.dts[1] != 0.5 {
			t.Errorf("%s got dts %v", sys.name, sys.dts)
		}
	}
}

func TestSchedulerNoChange(t *testing.T) {
	var calls []string
	s := NewScheduler(nil)
	s.Add(&recordSys{name: "a", log: &calls})
	if s.Tick(ecs.NewRegistry(), 1) {
		t.Error("no system changed anything")
	}
	s.Clear()
	if s.Len() != 0 || len(s.Systems()) != 0 {
		t.Error("Clear left systems behind")
	}
}

func TestFuncAdapter(t *testing.T) {
	n := 0
	s := NewScheduler(nil)
	s.Add(Func(func(*ecs.Registry, float64) bool { n++; return true }))
	s.Tick(ecs.NewRegistry(), 0)
	if n != 1 {
		t.Errorf("Func called %d times", n)
	}
}
