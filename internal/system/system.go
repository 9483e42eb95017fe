// Package system holds the per-tick behaviors that run over an
// ecs.Registry and the Scheduler that runs them.
package system

import (
	"fmt"

	"go.uber.org/zap"

	"tile-sandbox/internal/ecs"
)

// System is one unit of per-tick behavior. OnUpdate reports whether it
// changed anything observable; the Scheduler does not act on it.
type System interface {
	OnUpdate(r *ecs.Registry, dt float64) bool
}

// Func adapts a function to System.
type Func func(r *ecs.Registry, dt float64) bool

func (f Func) OnUpdate(r *ecs.Registry, dt float64) bool { return f(r, dt) }

// Scheduler runs systems in registration order. Systems must not add
// systems to the Scheduler that is ticking them.
type Scheduler struct {
	systems []System
	log     *zap.Logger
}

// NewScheduler returns an empty Scheduler. log may be nil.
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// Add appends systems to the pipeline.
func (s *Scheduler) Add(systems ...System) {
	for _, sys := range systems {
		if sys == nil {
			continue
		}
		s.systems = append(s.systems, sys)
		s.log.Debug("system added", zap.String("system", fmt.Sprintf("%T", sys)), zap.Int("position", len(s.systems)))
	}
}

// Tick calls every system once with the same dt. It reports whether any
// system reported a change.
func (s *Scheduler) Tick(r *ecs.Registry, dt float64) bool {
	changed := false
	for _, sys := range s.systems {
		if sys.OnUpdate(r, dt) {
			changed = true
		}
	}
	return changed
}

// Len returns the number of systems.
func (s *Scheduler) Len() int { return len(s.systems) }

// Systems returns the pipeline in order.
func (s *Scheduler) Systems() []System {
	out := make([]System, len(s.systems))
	copy(out, s.systems)
	return out
}

// Clear removes every system.
func (s *Scheduler) Clear() {
	clear(s.systems)
	s.systems = s.systems[:0]
}
