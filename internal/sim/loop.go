// Package sim runs simulations: the frame loop and the two simulations it
// hosts, the tile editor sandbox and the gravity game.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
)

// Simulation is driven by a Loop once per frame: HandleInput, then Update,
// then Render.
type Simulation interface {
	// Init builds the initial state for a width × height pixel canvas.
	Init(width, height int) error
	HandleInput(in input.Input)
	Update(dt float64)
	// Render draws the current state. It must not advance the simulation.
	Render(c render.Canvas)
	// Cleanup releases entities and loaded resources.
	Cleanup()
	// Done reports that the simulation asked to stop.
	Done() bool
}

// Frame is the backend side of a tick: Poll refreshes the input snapshot
// and Closed reports the backend's stop signal (window closed, session
// ended).
type Frame interface {
	Poll()
	Closed() bool
}

// State is the lifecycle of a Loop.
type State uint8

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", s)
}

// maxStep caps the measured frame time so a stall does not launch bodies
// through platforms.
const maxStep = 0.1

// Loop drives one Simulation against one backend.
type Loop struct {
	sim    Simulation
	frame  Frame
	in     input.Input
	canvas render.Canvas
	log    *zap.Logger

	state     State
	fps       int
	fixed     float64
	now       func() time.Time
	last      time.Time
	closeOnce sync.Once
}

// Option configures a Loop.
type Option func(*Loop)

// WithFPS sets the target frame rate for Run.
func WithFPS(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.fps = fps
		}
	}
}

// WithFixedStep makes every tick report dt instead of the measured time.
func WithFixedStep(dt float64) Option {
	return func(l *Loop) { l.fixed = dt }
}

// WithLogger sets the loop logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoop creates a Loop in StateUninitialized.
func NewLoop(s Simulation, frame Frame, in input.Input, c render.Canvas, opts ...Option) *Loop {
	l := &Loop{
		sim:    s,
		frame:  frame,
		in:     in,
		canvas: c,
		log:    zap.NewNop(),
		fps:    60,
		now:    time.Now,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Init initializes the simulation and enters StateRunning. Calling it again
// is a no-op.
func (l *Loop) Init() error {
	if l.state != StateUninitialized {
		return nil
	}
	w, h := l.canvas.Size()
	if err := l.sim.Init(w, h); err != nil {
		l.state = StateStopped
		return fmt.Errorf("sim: init: %w", err)
	}
	l.state = StateRunning
	l.last = l.now()
	l.log.Info("simulation running", zap.Int("width", w), zap.Int("height", h))
	return nil
}

// Update polls input and advances the simulation by one tick. It returns
// false once the loop has stopped.
func (l *Loop) Update() bool {
	if l.state != StateRunning {
		return false
	}
	l.frame.Poll()
	if l.frame.Closed() || l.sim.Done() {
		l.Close()
		return false
	}
	dt := l.step()
	l.sim.HandleInput(l.in)
	if l.sim.Done() {
		l.Close()
		return false
	}
	l.sim.Update(dt)
	return true
}

func (l *Loop) step() float64 {
	if l.fixed > 0 {
		return l.fixed
	}
	now := l.now()
	dt := now.Sub(l.last).Seconds()
	l.last = now
	return min(max(dt, 0), maxStep)
}

// Render draws the simulation on c.
func (l *Loop) Render(c render.Canvas) {
	if l.state != StateRunning {
		return
	}
	l.sim.Render(c)
}

// Step runs one full tick (Update, Render, Present) on the loop canvas.
func (l *Loop) Step() bool {
	if !l.Update() {
		return false
	}
	l.Render(l.canvas)
	l.canvas.Present()
	return true
}

// Run initializes if needed and steps at the target frame rate until the
// simulation or backend stops or ctx is done. The simulation is cleaned up
// before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Init(); err != nil {
		return err
	}
	defer l.Close()

	ticker := time.NewTicker(time.Second / time.Duration(l.fps))
	defer ticker.Stop()
	for {
		if !l.Step() {
			return nil
		}
		select {
		case <-ctx.Done():
			l.log.Info("simulation cancelled", zap.Error(context.Cause(ctx)))
			return nil
		case <-ticker.C:
		}
	}
}

// Close cleans up the simulation once and enters StateStopped. A frame
// with a Close method is closed as well.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		if l.state == StateRunning {
			l.sim.Cleanup()
			l.log.Info("simulation stopped")
		}
		if c, ok := l.frame.(interface{ Close() }); ok {
			c.Close()
		}
		l.state = StateStopped
	})
}
