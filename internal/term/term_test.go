package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/logging"
	"tile-sandbox/internal/sim"
)

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)

	cfg := config.Default()
	s := sim.NewSandbox(cfg, sim.Deps{Log: logging.Nop()})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(50 * time.Millisecond)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()
	require.NoError(t, Run(ctx, screen, cfg, s, logging.Nop()))
	assert.True(t, s.Done(), "sandbox should have seen the quit key")
	assert.NoError(t, ctx.Err(), "run should end before the timeout")
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	cfg := config.Default()
	cfg.Mode = config.ModeGravity
	s := sim.New(cfg, sim.Deps{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, Run(ctx, screen, cfg, s, nil))
	assert.False(t, s.Done())
}
