// Package sim runs the game headless on a manual clock. It drives the same
// systems as the world scene with scripted input, which makes long soak runs
// and seeded regressions possible without a window or audio device.
package sim

import (
	"context"
	"log"
	"time"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/clock"
	"github.com/automoto/shadowblade/shared/leveldata"
	"github.com/automoto/shadowblade/systems"
	"github.com/automoto/shadowblade/systems/factory"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a headless run.
type Options struct {
	Mode    components.GameMode
	Seed    int64
	Ticks   int
	Layouts map[string]*leveldata.StageLayout

	// Realtime paces ticks at the configured rate instead of running flat out.
	Realtime bool
}

// Report summarises a finished run.
type Report struct {
	Ticks   int
	Score   int
	Stage   int
	Spawned int
	Deaths  int
	RunOver bool
	Victory bool
}

// GameLoop owns one simulated world.
type GameLoop struct {
	ecs      *ecs.ECS
	clock    *clock.Manual
	pilot    *autopilot
	opts     Options
	tickRate int
	ticks    int
	deaths   int
}

// NewGameLoop builds the world: session, arena, door and player.
func NewGameLoop(opts Options) *GameLoop {
	e := ecs.NewECS(donburi.NewWorld())
	clk := clock.NewManual(100)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePowerUps))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStage))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDialogue))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.UpdateAudio)

	sessionEntry := factory.CreateSession(e, factory.SessionOptions{
		Clock:   clk,
		Seed:    opts.Seed,
		Mode:    opts.Mode,
		Layouts: opts.Layouts,
	})
	session := components.Session.Get(sessionEntry)
	layout := systems.StageLayout(session)
	session.Layout = layout

	factory.CreateSpace(e,
		max(layout.MapWidth, cfg.C.Width),
		max(layout.MapHeight, cfg.C.Height),
		16, 16,
	)
	factory.CreateDoor(e, layout.Door)
	factory.CreatePlayer(e, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)

	return &GameLoop{
		ecs:      e,
		clock:    clk,
		pilot:    newAutopilot(opts.Seed),
		opts:     opts,
		tickRate: cfg.C.TPS,
	}
}

// ECS exposes the world for inspection in tests.
func (g *GameLoop) ECS() *ecs.ECS {
	return g.ecs
}

// Run steps until the tick budget is spent, the run ends or ctx is done.
func (g *GameLoop) Run(ctx context.Context) Report {
	var pace <-chan time.Time
	if g.opts.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	log.Printf("Simulation started: mode=%v seed=%d ticks=%d", g.opts.Mode, g.opts.Seed, g.opts.Ticks)

	for g.opts.Ticks <= 0 || g.ticks < g.opts.Ticks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return g.Report()
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return g.Report()
		}

		g.Step()
		if systems.IsRunOver(g.ecs) {
			break
		}
	}

	report := g.Report()
	log.Printf("Simulation finished after %d ticks: stage=%d score=%d deaths=%d", report.Ticks, report.Stage, report.Score, report.Deaths)
	return report
}

// Step advances the world by one tick.
func (g *GameLoop) Step() {
	g.clock.Advance(1 / float64(g.tickRate))
	g.ticks++

	// A dead pilot is revived once the game over screen would have shown.
	if systems.IsGameOverShowing(g.ecs) {
		g.deaths++
		systems.RevivePlayer(g.ecs)
	}

	g.pilot.drive(g.ecs, g.ticks)
	g.ecs.Update()
}

// Report snapshots the run so far.
func (g *GameLoop) Report() Report {
	r := Report{Ticks: g.ticks, Deaths: g.deaths}
	if session := systems.GetSession(g.ecs); session != nil {
		r.Stage = session.Stage
		r.RunOver = session.RunOver
		r.Victory = session.Victory
	}
	if spawner := systems.GetSpawner(g.ecs); spawner != nil {
		r.Spawned = spawner.Spawned
	}
	if entry, ok := tags.Player.First(g.ecs.World); ok {
		r.Score = components.Player.Get(entry).Score
	}
	return r
}
