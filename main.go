// tile-sandbox runs the tile editor or the gravity game in the local
// terminal. Each terminal cell stands for a block of pixels, so the mouse
// paints tiles directly.
//
//	go build -o tile-sandbox .
//	./tile-sandbox [-config sandbox.yaml] [-mode gravity] [-profile cpu]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/logging"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/sim"
	"tile-sandbox/internal/store"
	"tile-sandbox/internal/term"
)

func main() {
	cfgFile := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "", "simulation: sandbox or gravity (overrides config)")
	prof := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fatal(err)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fatal(fmt.Errorf("unknown profile %q", *prof))
	}

	// The screen owns stdout and stderr, so logs go to a file.
	if cfg.Log.File == "" {
		if dir, err := store.DataDir(); err == nil {
			cfg.Log.File = filepath.Join(dir, "sandbox.log")
		}
	}
	log, err := logging.Open(cfg.Log.Level, cfg.Log.Encoding, cfg.Log.File)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = log.Sync() }()

	screen, err := term.NewScreen()
	if err != nil {
		log.Error("terminal unavailable", zap.Error(err))
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := sim.New(cfg, sim.NewDeps(cfg, "tilemap", render.FileTextures{}, log))
	if err := term.Run(ctx, screen, cfg, s, log); err != nil {
		log.Error("simulation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
