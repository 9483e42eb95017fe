package sim

import (
	"go.uber.org/zap"

	"tile-sandbox/internal/component"
	"tile-sandbox/internal/config"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/factory"
	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/system"
)

// Gravity game tuning.
const (
	DropVelocity     = 9.0
	PlatformVelocity = 2.0
	SpacingStep      = 5
	MinSpacing       = 5
	HintText         = "Press SPACE to drop the box"
	spriteSize       = 64
)

// Gravity is the physics toy: a box hangs until SPACE drops it onto a
// platform that then starts to slide.
type Gravity struct {
	cfg  config.Config
	deps Deps
	log  *zap.Logger

	reg      *ecs.Registry
	sched    *system.Scheduler
	textSync *system.TextSync
	box      ecs.Entity
	platform ecs.Entity

	width, height int
	spacing       int
	showGrid      bool
	paused        bool
	done          bool
}

// NewGravity creates an uninitialized gravity game.
func NewGravity(cfg config.Config, deps Deps) *Gravity {
	return &Gravity{cfg: cfg, deps: deps, log: deps.logger().Named("gravity")}
}

func (g *Gravity) Init(width, height int) error {
	g.width, g.height = width, height
	g.spacing = g.clampSpacing(g.cfg.Grid.TileSize)
	g.showGrid = g.cfg.Grid.Show
	g.paused, g.done = false, false

	g.reg = ecs.NewRegistry()
	g.sched = system.NewScheduler(g.log)
	g.textSync = &system.TextSync{}
	ppm := g.cfg.Physics.PixelsPerMeter
	if ppm <= 0 {
		ppm = system.DefaultPixelsPerMeter
	}
	g.sched.Add(
		system.Physics{},
		system.Motion{PixelsPerMeter: ppm},
		&system.Collision{},
		&system.Hover{},
		g.textSync,
	)
	g.populate()
	g.log.Info("gravity initialized", zap.Int("systems", g.sched.Len()), zap.Int("entities", g.reg.Alive()))
	return nil
}

func (g *Gravity) populate() {
	gravity := g.cfg.Physics.Gravity
	if gravity == 0 {
		gravity = component.DefaultGravity
	}
	ecs.SetContext(g.reg, component.Gravity{Value: gravity})
	ecs.SetContext(g.reg, component.Pointer{})

	g.box = factory.NewBox(g.reg, float64(min(600, g.width-factory.BoxSize)), 0)
	g.platform = factory.NewPlatform(g.reg, 0, float64(g.height-20), factory.PlatformWidth, 20)
	factory.NewLabel(g.reg, HintText, 10, 10, 20, render.DarkGray)

	if g.deps.Loader != nil && len(g.deps.Images) > 0 {
		rect := component.Rect{X: 10, Y: 40, W: spriteSize, H: spriteSize}
		if _, err := factory.NewSprite(g.reg, g.deps.Loader, g.deps.Images[0], rect); err != nil {
			g.log.Warn("sprite not loaded", zap.Error(err))
		}
	}
}

func (g *Gravity) Done() bool { return g.done }

// Registry exposes the game's entities.
func (g *Gravity) Registry() *ecs.Registry { return g.reg }

// Box returns the droppable box.
func (g *Gravity) Box() ecs.Entity { return g.box }

// Platform returns the platform the box lands on.
func (g *Gravity) Platform() ecs.Entity { return g.platform }

// Spacing returns the background grid spacing in pixels.
func (g *Gravity) Spacing() int { return g.spacing }

// ShowGrid reports whether the background grid is drawn.
func (g *Gravity) ShowGrid() bool { return g.showGrid }

// Paused reports whether systems are suspended.
func (g *Gravity) Paused() bool { return g.paused }

func (g *Gravity) maxSpacing() int { return max(MinSpacing, g.width/4) }

func (g *Gravity) clampSpacing(v int) int {
	return min(max(v, MinSpacing), g.maxSpacing())
}

func (g *Gravity) HandleInput(in input.Input) {
	x, y := in.Pointer()
	ecs.SetContext(g.reg, component.Pointer{
		X:        float64(x),
		Y:        float64(y),
		Down:     in.ButtonDown(input.ButtonLeft),
		Clicked:  in.ButtonPressed(input.ButtonLeft),
		Released: in.ButtonReleased(input.ButtonLeft),
	})

	switch {
	case in.KeyPressed(input.KeyEscape), in.KeyPressed('q'):
		g.done = true
		return
	case in.KeyPressed('r'):
		g.reset()
		return
	}
	if in.KeyPressed(input.KeySpace) {
		g.drop()
	}
	if in.KeyPressed('g') {
		g.showGrid = !g.showGrid
	}
	if in.KeyPressed('p') {
		g.paused = !g.paused
		g.log.Debug("pause toggled", zap.Bool("paused", g.paused))
	}
	if in.KeyPressed('t') {
		g.textSync.Toggle()
	}
	if in.KeyPressed(input.KeyLeft) {
		g.spacing = g.clampSpacing(g.spacing - SpacingStep)
	}
	if in.KeyPressed(input.KeyRight) {
		g.spacing = g.clampSpacing(g.spacing + SpacingStep)
	}
}

// drop releases every droppable that has not fallen yet and sets every
// other body moving. Grounded is left to the collision system.
func (g *Gravity) drop() {
	n := 0
	boxes := g.reg.View(ecs.TypeOf[component.Droppable](), ecs.TypeOf[component.RigidBody]())
	for _, e := range boxes.Entities() {
		d := ecs.MustGet[component.Droppable](g.reg, e)
		if d.Dropped {
			continue
		}
		d.Dropped = true
		ecs.MustGet[component.RigidBody](g.reg, e).Velocity.Y = DropVelocity
		ecs.Remove[component.Held](g.reg, e)
		n++
	}
	if n == 0 {
		return
	}
	statics := g.reg.View(ecs.TypeOf[component.RigidBody]()).Without(ecs.TypeOf[component.Droppable]())
	for e := range statics.All() {
		ecs.MustGet[component.RigidBody](g.reg, e).Velocity.X = PlatformVelocity
	}
	g.log.Info("box dropped", zap.Int("count", n))
}

func (g *Gravity) reset() {
	g.unload()
	g.reg.Clear()
	g.populate()
	g.paused = false
	g.log.Info("gravity reset")
}

func (g *Gravity) Update(dt float64) {
	if g.paused {
		return
	}
	g.sched.Tick(g.reg, dt)
}

func (g *Gravity) Render(c render.Canvas) {
	w, h := c.Size()
	c.Clear(render.SkyBlue)
	if g.showGrid && g.spacing > 0 {
		for x := 0; x <= w; x += g.spacing {
			c.Line(x, 0, x, h, render.LightGray)
		}
		for y := 0; y <= h; y += g.spacing {
			c.Line(0, y, w, y, render.LightGray)
		}
	}
	drawBodies(c, g.reg)
	drawLabels(c, g.reg)
	if g.paused {
		c.Text(w/2-30, h/2, "PAUSED", 30, render.Black)
	}
}

func (g *Gravity) unload() {
	if g.deps.Loader != nil {
		factory.Unload(g.reg, g.deps.Loader)
	}
}

func (g *Gravity) Cleanup() {
	if g.reg == nil {
		return
	}
	g.unload()
	g.reg.Clear()
	g.sched.Clear()
	g.log.Info("gravity cleaned up")
}

// New builds the simulation named by cfg.Mode.
func New(cfg config.Config, deps Deps) Simulation {
	if cfg.Mode == config.ModeGravity {
		return NewGravity(cfg, deps)
	}
	return NewSandbox(cfg, deps)
}
