// simulate runs the game headless for a fixed span of simulated time with a
// scripted player that always takes the first powerup offered, then prints a
// run summary and the gathered metrics. Build:
//
//	go build -o simulate ./cmd/simulate
//
// Usage:
//
//	./simulate [-assets dir] [-seed 1] [-tps 60] [-duration 2m]
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"survivors/assets"
	"survivors/internal/component"
	"survivors/internal/logging"
	"survivors/internal/sim"
	"survivors/internal/system"
	"survivors/internal/telemetry"
)

func main() {
	assetsDir := flag.String("assets", "", "Directory of definition files (embedded data if empty)")
	seed := flag.Int64("seed", 1, "Random seed")
	tps := flag.Int("tps", 60, "Simulation ticks per second")
	duration := flag.Duration("duration", 2*time.Minute, "Simulated time to run")
	flag.Parse()

	log := logging.WithRun(logging.New(logging.Options{}))
	sum, err := run(config{
		Assets:   assets.Open(*assetsDir),
		Seed:     *seed,
		TPS:      *tps,
		Duration: *duration,
		Log:      log,
	})
	if err != nil {
		sim.ReportConfigError(log, err)
		os.Exit(1)
	}
	sum.write(os.Stdout)
}

type config struct {
	Assets   fs.FS
	Seed     int64
	TPS      int
	Duration time.Duration
	Log      *logrus.Entry
}

// summary is what a finished run reports.
type summary struct {
	Survived time.Duration
	Dead     bool
	Wave     int
	Kills    int
	Level    uint32
	Weapons  []string
	Samples  []telemetry.Sample
}

// run plays one scripted session. The only error is an unusable
// configuration.
func run(cfg config) (summary, error) {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	m := telemetry.New()
	s := sim.New(sim.Options{Assets: cfg.Assets, Seed: cfg.Seed, Log: cfg.Log, Metrics: m})
	if err := s.Warm(); err != nil {
		return summary{}, err
	}

	dt := time.Second / time.Duration(cfg.TPS)
	for tick := 0; s.Res.Elapsed < cfg.Duration && !s.Dead(); tick++ {
		if s.Offer() != nil {
			if _, err := s.Choose(0); err != nil {
				cfg.Log.WithError(err).Warn("scripted choice rejected")
			}
		}
		s.Res.Input = script(tick, cfg.TPS)
		if err := s.Step(dt); err != nil {
			return summary{}, err
		}
	}

	sum := summary{
		Survived: s.Res.Elapsed,
		Dead:     s.Dead(),
		Wave:     s.Res.Waves.Wave,
		Kills:    s.Res.Kills,
	}
	if x, ok := s.World.Get(system.Player(s.World), component.CExperience).(component.Experience); ok {
		sum.Level = x.Level
	}
	for _, id := range s.Res.Inventory.IDs() {
		e, _ := s.Res.Inventory.Get(id)
		sum.Weapons = append(sum.Weapons, fmt.Sprintf("%s Lv%d", id, e.Level))
	}
	samples, err := m.Gather()
	if err != nil {
		cfg.Log.WithError(err).Warn("metrics not gathered")
	}
	sum.Samples = samples
	return sum, nil
}

// script paces back and forth in two-second strides, hops every second and
// a half, and swaps weapon slot every five seconds.
func script(tick, tps int) system.Input {
	return system.Input{
		Right:      (tick/(2*tps))%2 == 0,
		Left:       (tick/(2*tps))%2 == 1,
		Jump:       tick%(3*tps/2) == 0,
		ToggleSlot: tick > 0 && tick%(5*tps) == 0,
	}
}

func (s summary) write(w io.Writer) {
	outcome := "survived"
	if s.Dead {
		outcome = "died"
	}
	fmt.Fprintf(w, "%s after %s\n", outcome, s.Survived.Round(time.Second))
	fmt.Fprintf(w, "wave %d  level %d  kills %d\n", s.Wave, s.Level, s.Kills)
	for _, wpn := range s.Weapons {
		fmt.Fprintf(w, "  %s\n", wpn)
	}
	fmt.Fprintln(w, "metrics:")
	for _, smp := range s.Samples {
		fmt.Fprintf(w, "  %-60s %g\n", smp.Name, smp.Value)
	}
}
