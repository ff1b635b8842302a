// Command soak plays the game headless with an autopilot and prints a run
// report. It is used to check balance changes and long-run stability.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/shadowblade/assets"
	"github.com/automoto/shadowblade/components"
	"github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/sim"
)

func main() {
	ticks := flag.Int("ticks", 60*60*10, "Ticks to simulate (0 = until the run ends)")
	seed := flag.Int64("seed", 1, "Random seed")
	mode := flag.String("mode", "story", "Game mode: story or endless")
	balancePath := flag.String("balance", "", "Optional balance YAML applied before the run")
	realtime := flag.Bool("realtime", false, "Pace ticks at the game's tick rate")
	verbose := flag.Bool("v", false, "Log gameplay events")
	flag.Parse()

	config.Debug.LogEvents = *verbose

	if *balancePath != "" {
		balance, err := config.LoadBalance(*balancePath)
		if err != nil {
			log.Fatalf("Failed to load balance: %v", err)
		}
		balance.Apply()
	}

	layouts, err := assets.LoadStages()
	if err != nil {
		log.Printf("Warning: failed to load stages, using default layout: %v", err)
	}

	opts := sim.Options{
		Seed:     *seed,
		Ticks:    *ticks,
		Layouts:  layouts,
		Realtime: *realtime,
	}
	switch *mode {
	case "story":
		opts.Mode = components.ModeStory
	case "endless":
		opts.Mode = components.ModeEndless
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := sim.NewGameLoop(opts).Run(ctx)
	log.Printf("ticks=%d stage=%d score=%d spawned=%d deaths=%d run_over=%t victory=%t",
		report.Ticks, report.Stage, report.Score, report.Spawned, report.Deaths, report.RunOver, report.Victory)
}
