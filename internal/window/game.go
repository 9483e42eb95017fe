package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/sim"
)

// Game adapts a sim.Loop to ebiten.Game: Update ticks the loop and Draw
// renders it.
type Game struct {
	loop   *sim.Loop
	canvas *Canvas
}

// Run opens a window sized by cfg and runs s until it stops or the
// window closes.
func Run(cfg config.Config, s sim.Simulation, log *zap.Logger) error {
	canvas := NewCanvas(cfg.Screen.Width, cfg.Screen.Height)
	in := NewInput()
	loop := sim.NewLoop(s, in, in, canvas, sim.WithLogger(log), sim.WithFixedStep(1/float64(cfg.Screen.FPS)))
	if err := loop.Init(); err != nil {
		return err
	}
	defer loop.Close()

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Screen.FPS)
	return ebiten.RunGame(&Game{loop: loop, canvas: canvas})
}

func (g *Game) Update() error {
	if !g.loop.Update() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.begin(screen)
	defer g.canvas.end()
	g.loop.Render(g.canvas)
}

func (g *Game) Layout(int, int) (int, int) {
	return g.canvas.Size()
}
