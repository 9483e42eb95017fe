// tile-sandbox-window runs the simulations in a desktop window.
//
//	go build -o tile-sandbox-window ./cmd/window
//	./tile-sandbox-window [-config sandbox.yaml] [-mode gravity]
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/logging"
	"tile-sandbox/internal/sim"
	"tile-sandbox/internal/window"
)

func main() {
	cfgFile := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "", "simulation: sandbox or gravity (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err == nil && *mode != "" {
		cfg.Mode = *mode
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.Open(cfg.Log.Level, cfg.Log.Encoding, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	s := sim.New(cfg, sim.NewDeps(cfg, "tilemap", window.Textures{}, log))
	if err := window.Run(cfg, s, log); err != nil {
		log.Error("window failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
