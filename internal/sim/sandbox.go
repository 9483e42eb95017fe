package sim

import (
	"fmt"

	"go.uber.org/zap"

	"tile-sandbox/internal/component"
	"tile-sandbox/internal/config"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/factory"
	"tile-sandbox/internal/grid"
	"tile-sandbox/internal/gui"
	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/system"
)

// Sandbox is the tile editor: a grid painted with the mouse plus a side
// panel of tools.
type Sandbox struct {
	cfg  config.Config
	deps Deps
	log  *zap.Logger

	grid    *grid.Grid
	palette grid.Palette
	panel   *gui.Panel

	reg      *ecs.Registry
	sched    *system.Scheduler
	textSync *system.TextSync
	status   ecs.Entity

	width, height int
	brushSize     int
	paintValue    int
	showGrid      bool
	full          bool
	image         string
	done          bool
	elapsed       float64
	lastReport    float64
}

// NewSandbox creates an uninitialized Sandbox.
func NewSandbox(cfg config.Config, deps Deps) *Sandbox {
	return &Sandbox{cfg: cfg, deps: deps, log: deps.logger().Named("sandbox")}
}

func (s *Sandbox) Init(width, height int) error {
	s.width, s.height = width, height
	panelW := min(s.cfg.Panel.Width, width/2)
	g, err := grid.Fit(width-panelW, height, s.cfg.Grid.TileSize)
	if err != nil {
		return fmt.Errorf("sandbox: %w", err)
	}
	s.grid = g
	if s.deps.Store != nil {
		if saved, err := s.deps.Store.Load(); err == nil {
			if saved.Rows() == g.Rows() && saved.Cols() == g.Cols() && saved.TileSize() == g.TileSize() {
				s.grid = saved
				s.log.Info("restored tilemap", zap.String("path", s.deps.Store.Path()), zap.Int("painted", saved.Painted()))
			}
		}
	}

	s.palette = grid.DefaultPalette()
	if colors := s.cfg.Palette(); len(colors) > 0 {
		s.palette.Colors = colors
	}
	s.brushSize = gui.MinBrushSize
	s.paintValue = 1
	s.showGrid = s.cfg.Grid.Show
	s.done, s.full = false, false

	s.panel = gui.NewPanel(gui.Options{
		X: width - panelW, W: panelW, H: height,
		ShowGrid: s.showGrid,
		FoldTime: float32(s.cfg.Panel.FoldTime),
		Loader:   s.deps.Loader,
		Images:   s.deps.Images,
		Log:      s.log,
	})
	s.image = s.panel.Browser().Current()

	s.reg = ecs.NewRegistry()
	s.sched = system.NewScheduler(s.log)
	s.textSync = &system.TextSync{}
	s.sched.Add(s.textSync)
	s.status = factory.NewLabel(s.reg, "", 4, height-18, 16, render.DarkGray)

	s.log.Info("sandbox initialized",
		zap.Int("rows", s.grid.Rows()), zap.Int("cols", s.grid.Cols()),
		zap.Int("tile_size", s.grid.TileSize()))
	return nil
}

func (s *Sandbox) Done() bool { return s.done }

// Grid exposes the tile grid.
func (s *Sandbox) Grid() *grid.Grid { return s.grid }

// BrushSize returns the current brush side length.
func (s *Sandbox) BrushSize() int { return s.brushSize }

// PaintValue returns the value left clicks paint.
func (s *Sandbox) PaintValue() int { return s.paintValue }

// ShowGrid reports whether grid lines are drawn.
func (s *Sandbox) ShowGrid() bool { return s.showGrid }

// Panel exposes the side panel.
func (s *Sandbox) Panel() *gui.Panel { return s.panel }

func (s *Sandbox) HandleInput(in input.Input) {
	if in.KeyPressed(input.KeyEscape) || in.KeyPressed('q') {
		s.done = true
		return
	}
	if in.KeyPressed('g') {
		s.setShowGrid(!s.showGrid)
	}
	if in.KeyPressed(input.KeyTab) {
		s.panel.ToggleFold()
	}
	for k := input.Key('1'); k <= '9'; k++ {
		if v := int(k - '0'); v <= s.palette.Len() && in.KeyPressed(k) {
			s.paintValue = v
		}
	}
	if in.KeyPressed('c') {
		s.clear()
	}
	if in.KeyPressed('s') {
		s.save()
	}
	if in.KeyPressed('p') {
		s.log.Info("tilemap", zap.String("serialized", s.grid.Serialize()))
	}
	if in.KeyDown('t') {
		s.fillNext()
	}

	x, y := in.Pointer()
	if s.panel.Contains(x, y) {
		s.panel.HandleInput(in)
	} else if row, col, ok := s.grid.CellAt(x, y); ok {
		switch {
		case in.ButtonDown(input.ButtonLeft):
			s.grid.ApplyBrush(row, col, s.brushSize, s.paintValue)
		case in.ButtonDown(input.ButtonRight):
			s.grid.ApplyBrush(row, col, s.brushSize, grid.Empty)
		}
	}
	s.drainPanel()
}

func (s *Sandbox) drainPanel() {
	for {
		select {
		case ev := <-s.panel.Events():
			s.log.Debug("panel event", zap.Stringer("kind", ev.Kind))
			switch ev.Kind {
			case gui.EventBrushSize:
				s.brushSize = ev.Value
			case gui.EventClear:
				s.clear()
			case gui.EventSave:
				s.save()
			case gui.EventGridToggle:
				s.showGrid = ev.On
			case gui.EventImageSelect:
				s.image = ev.Path
			}
		default:
			return
		}
	}
}

func (s *Sandbox) setShowGrid(on bool) {
	s.showGrid = on
	s.panel.SetShowGrid(on)
}

func (s *Sandbox) fillNext() {
	if s.full {
		return
	}
	if !s.grid.FillFirstEmpty(s.paintValue) {
		s.full = true
		s.log.Info("tilemap full")
	}
}

func (s *Sandbox) clear() {
	s.grid.Clear()
	s.full = false
	s.log.Info("tilemap cleared")
}

func (s *Sandbox) save() {
	if s.deps.Store == nil {
		s.log.Info("saving tilemap", zap.String("serialized", s.grid.Serialize()))
		return
	}
	saved, err := s.deps.Store.Save(s.grid)
	switch {
	case err != nil:
		s.log.Error("save failed", zap.Error(err))
	case saved:
		s.log.Info("tilemap saved", zap.String("path", s.deps.Store.Path()))
	default:
		s.log.Debug("tilemap unchanged, save skipped")
	}
}

func (s *Sandbox) Update(dt float64) {
	s.panel.Update(dt)
	if t, err := ecs.Get[component.Text](s.reg, s.status); err == nil {
		t.Content = fmt.Sprintf("brush %d  paint %d  tiles %d/%d", s.brushSize, s.paintValue, s.grid.Painted(), s.grid.Len())
		if s.image != "" {
			t.Content += "  image " + s.image
		}
	}
	s.sched.Tick(s.reg, dt)

	s.elapsed += dt
	if s.elapsed-s.lastReport > 1 {
		s.lastReport = s.elapsed
		s.log.Debug("sandbox tick", zap.Float64("dt", dt))
	}
}

func (s *Sandbox) Render(c render.Canvas) {
	if w, h := c.Size(); w != s.width || h != s.height {
		s.width, s.height = w, h
		s.panel.Move(w-s.panel.Width(), 0, h)
	}
	c.Clear(render.RayWhite)
	s.grid.Draw(c, s.palette, 0, 0, s.showGrid)
	drawLabels(c, s.reg)
	s.panel.Render(c)
}

func (s *Sandbox) Cleanup() {
	if s.panel != nil {
		s.panel.Close()
	}
	if s.reg != nil {
		s.reg.Clear()
	}
	if s.sched != nil {
		s.sched.Clear()
	}
	s.log.Info("sandbox cleaned up")
}
