// Package term runs a simulation on a tcell screen, local or remote.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/input"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/sim"
)

// NewScreen creates and initializes the local terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// Run drives s on an initialized screen until the simulation stops, the
// screen goes away or ctx is done. The screen is finalized on return.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config, s sim.Simulation, log *zap.Logger) error {
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	canvas := render.NewTerminal(screen, cfg.Screen.CellWidth, cfg.Screen.CellHeight)
	in := input.NewTerminal(screen, canvas)
	loop := sim.NewLoop(s, in, in, canvas, sim.WithFPS(cfg.Screen.FPS), sim.WithLogger(log))
	return loop.Run(ctx)
}
