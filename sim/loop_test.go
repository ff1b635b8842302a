package sim

import (
	"context"
	"testing"

	"github.com/automoto/shadowblade/components"
)

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Mode: components.ModeStory, Seed: 7, Ticks: 3000}

	first := NewGameLoop(opts).Run(context.Background())
	second := NewGameLoop(opts).Run(context.Background())

	if first != second {
		t.Errorf("same seed diverged:\n%+v\n%+v", first, second)
	}
}

func TestRunSpawnsEnemies(t *testing.T) {
	tests := []struct {
		name string
		mode components.GameMode
	}{
		{"story", components.ModeStory},
		{"endless", components.ModeEndless},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewGameLoop(Options{Mode: tt.mode, Seed: 1, Ticks: 6000}).Run(context.Background())

			if report.Ticks == 0 {
				t.Fatal("no ticks ran")
			}
			if report.Spawned == 0 {
				t.Error("nothing spawned")
			}
			if report.Stage < 1 {
				t.Errorf("stage = %d, want at least 1", report.Stage)
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := NewGameLoop(Options{Seed: 1, Ticks: 1000}).Run(ctx)

	if report.Ticks != 0 {
		t.Errorf("ticks = %d, want 0", report.Ticks)
	}
}
