// survivors is a terminal platformer where weapons and enemies are composed
// from data files. Build:
//
//	go build -o survivors .
//
// Usage:
//
//	./survivors [-assets dir] [-seed n] [-tps 60] [-log survivors.log]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"survivors/assets"
	"survivors/internal/game"
	"survivors/internal/logging"
	"survivors/internal/sim"
	"survivors/internal/telemetry"
)

func main() {
	assetsDir := flag.String("assets", "", "Directory of definition files (embedded data if empty)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	tps := flag.Int("tps", 60, "Simulation ticks per second")
	logPath := flag.String("log", "survivors.log", "Log file; the terminal is owned by the game")
	flag.Parse()

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log := logging.WithRun(logging.New(logging.Options{Output: f}))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log = log.WithField("seed", *seed)

	s := sim.New(sim.Options{
		Assets:  assets.Open(*assetsDir),
		Seed:    *seed,
		Log:     log,
		Metrics: telemetry.New(),
	})
	if err := s.Warm(); err != nil {
		sim.ReportConfigError(log, err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	runLogDir, err := game.RunLogDir()
	if err != nil {
		log.WithError(err).Warn("run log disabled")
	}
	g, err := game.New(game.Options{Sim: s, TPS: *tps, Seed: *seed, RunLogDir: runLogDir, Log: log})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := g.Run(ctx); err != nil {
		sim.ReportConfigError(log, err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
