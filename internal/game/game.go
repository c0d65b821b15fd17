// Package game runs the terminal session: it feeds key presses to the
// simulation at a fixed tick rate, draws every tick, and pauses on the
// level-up menu and the death screen.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"survivors/internal/component"
	"survivors/internal/powerup"
	"survivors/internal/render"
	"survivors/internal/sim"
	"survivors/internal/system"
)

// Session states.
const (
	StatePlaying = "playing"
	StateLevelUp = "levelup"
	StateDead    = "dead"
)

// Session events.
const (
	eventLevelUp = "levelup"
	eventChoose  = "choose"
	eventDie     = "die"
)

// Options configures a Game.
type Options struct {
	// Screen defaults to the process terminal.
	Screen tcell.Screen
	Sim    *sim.Sim
	TPS    int
	Seed   int64
	// RunLogDir receives runs.jsonl on death. Empty disables the run log.
	RunLogDir string
	Log       *logrus.Entry
}

// Game is the top-level orchestrator.
type Game struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	sim       *sim.Sim
	state     *fsm.FSM
	controls  controls
	selected  int
	tick      time.Duration
	seed      int64
	runLogDir string
	log       *logrus.Entry
}

// New creates a Game, initializing the terminal when opts.Screen is nil.
func New(opts Options) (*Game, error) {
	if opts.Sim == nil {
		return nil, errors.New("game needs a simulation")
	}
	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return nil, fmt.Errorf("init screen: %w", err)
		}
		screen = s
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	g := &Game{
		screen:    screen,
		renderer:  render.NewRenderer(screen),
		sim:       opts.Sim,
		tick:      time.Second / time.Duration(tps),
		seed:      opts.Seed,
		runLogDir: opts.RunLogDir,
		log:       log.WithField("component", "game"),
	}
	g.state = fsm.NewFSM(StatePlaying,
		fsm.Events{
			{Name: eventLevelUp, Src: []string{StatePlaying}, Dst: StateLevelUp},
			{Name: eventChoose, Src: []string{StateLevelUp}, Dst: StatePlaying},
			{Name: eventDie, Src: []string{StatePlaying, StateLevelUp}, Dst: StateDead},
		},
		fsm.Callbacks{
			"enter_" + StateLevelUp: func(_ context.Context, _ *fsm.Event) {
				g.selected = 0
			},
			"enter_" + StateDead: func(_ context.Context, _ *fsm.Event) {
				g.finishRun()
			},
		},
	)
	return g, nil
}

// State returns the current session state.
func (g *Game) State() string { return g.state.Current() }

// Run polls input and advances the session until the player quits, ctx is
// cancelled, or the configuration turns out to be unusable.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if g.handleEvent(ctx, ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			if err := g.update(ctx, now); err != nil {
				return err
			}
			g.draw()
		}
	}
}

// handleEvent reacts to one terminal event and reports whether the player
// asked to quit.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		action := keyToAction(ev)
		if action == ActionQuit {
			return true
		}
		switch g.state.Current() {
		case StatePlaying:
			g.controls.press(action, now)
		case StateLevelUp:
			if i, ok := menuDigit(ev); ok {
				g.choose(ctx, i)
				break
			}
			g.navigate(ctx, menuAction(action))
		case StateDead:
			return action == ActionConfirm
		}
	}
	return false
}

// navigate moves the menu cursor or confirms the highlighted option.
func (g *Game) navigate(ctx context.Context, a Action) {
	n := len(g.sim.Offer())
	if n == 0 {
		return
	}
	switch a {
	case ActionMenuUp:
		g.selected = (g.selected + n - 1) % n
	case ActionMenuDown:
		g.selected = (g.selected + 1) % n
	case ActionConfirm:
		g.choose(ctx, g.selected)
	}
}

// choose applies option i and resumes play. Out-of-range picks are ignored.
func (g *Game) choose(ctx context.Context, i int) {
	if i < 0 || i >= len(g.sim.Offer()) {
		return
	}
	if _, err := g.sim.Choose(i); err != nil {
		g.log.WithError(err).Warn("powerup not applied")
		return
	}
	g.event(ctx, eventChoose)
}

// update advances the simulation one tick while playing and moves the
// session to the menu or the death screen when the world asks for it.
func (g *Game) update(ctx context.Context, now time.Time) error {
	if g.state.Current() != StatePlaying {
		return nil
	}
	g.sim.Res.Input = g.controls.input(now)
	if err := g.sim.Step(g.tick); err != nil {
		return err
	}
	switch {
	case g.sim.Dead():
		g.event(ctx, eventDie)
	case g.sim.Offer() != nil:
		g.event(ctx, eventLevelUp)
	}
	return nil
}

func (g *Game) event(ctx context.Context, name string) {
	if err := g.state.Event(ctx, name); err != nil {
		g.log.WithError(err).WithField("event", name).Debug("session transition skipped")
	}
}

// draw renders the world, the overlay for the current state, and the HUD.
func (g *Game) draw() {
	w := g.sim.World
	if t, ok := w.Get(system.Player(w), component.CTransform).(component.Transform); ok {
		g.renderer.CenterOn(t.Pos)
	}
	g.renderer.DrawFrame(w)

	s := g.status()
	switch g.state.Current() {
	case StateLevelUp:
		g.renderer.DrawLevelUp(g.options(), g.selected)
	case StateDead:
		g.renderer.DrawGameOver(s.Kills, s.Wave, s.Elapsed, s.Level)
	}
	g.renderer.DrawHUD(s)
}

func (g *Game) options() []render.Option {
	res := g.sim.Res
	offer := g.sim.Offer()
	opts := make([]render.Option, len(offer))
	for i, p := range offer {
		title, detail := powerup.Label(p, res.Inventory, res.Weapons)
		opts[i] = render.Option{Title: title, Detail: detail}
	}
	return opts
}

// status collects what the HUD shows from the player's components.
func (g *Game) status() render.Status {
	w, res := g.sim.World, g.sim.Res
	s := render.Status{
		Wave:    res.Waves.Wave,
		Kills:   res.Kills,
		Slot:    res.Slot.String(),
		Elapsed: res.Elapsed,
	}
	player := system.Player(w)
	if d, ok := w.Get(player, component.CDamageable).(component.Damageable); ok {
		s.Health, s.MaxHealth = max(d.Health, 0), d.MaxHealth
	}
	if e, ok := w.Get(player, component.CEnergy).(component.Energy); ok {
		s.Energy, s.MaxEnergy = e.Current, e.Max
	}
	if x, ok := w.Get(player, component.CExperience).(component.Experience); ok {
		s.Level, s.XP, s.NextLevel = x.Level, x.XP, x.NextLevel
	}
	for _, id := range res.Inventory.IDs() {
		e, _ := res.Inventory.Get(id)
		name := id
		if res.Weapons != nil {
			if def, ok := res.Weapons.Resolve(id); ok {
				name = def.Name
			}
		}
		s.Weapons = append(s.Weapons, fmt.Sprintf("%s Lv%d", name, e.Level))
	}
	return s
}

// finishRun logs the summary and appends it to the run log.
func (g *Game) finishRun() {
	res := g.sim.Res
	run, _ := g.log.Data["run"].(string)
	entry := RunLog{
		Run:     run,
		Seed:    g.seed,
		Seconds: res.Elapsed.Seconds(),
		Wave:    res.Waves.Wave,
		Kills:   res.Kills,
		Weapons: make(map[string]int),
	}
	if x, ok := g.sim.World.Get(system.Player(g.sim.World), component.CExperience).(component.Experience); ok {
		entry.Level = x.Level
	}
	for _, id := range res.Inventory.IDs() {
		e, _ := res.Inventory.Get(id)
		entry.Weapons[id] = int(e.Level)
	}
	g.log.WithFields(logrus.Fields{
		"survived": res.Elapsed.Round(time.Second).String(),
		"wave":     entry.Wave,
		"kills":    entry.Kills,
		"level":    entry.Level,
	}).Info("run over")

	if g.runLogDir == "" {
		return
	}
	if err := SaveRunLog(g.runLogDir, entry); err != nil {
		g.log.WithError(err).Warn("run log not saved")
	}
}
