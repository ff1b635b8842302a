package systems

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/micmeter"
	"github.com/yohamta/donburi/ecs"
)

type failingMeter struct{}

func (failingMeter) Peak(context.Context, time.Duration) (float64, error) {
	return 0, errors.New("device busy")
}

// waitForScream polls until the measurement lands.
func waitForScream(t *testing.T, e *ecs.ECS, g *components.GameOverData) bool {
	t.Helper()
	for i := 0; i < 1000; i++ {
		revived := PollScream(e, g)
		if !g.Listening {
			return revived
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("scream measurement never finished")
	return false
}

func TestScreamToContinue(t *testing.T) {
	tests := []struct {
		name        string
		meter       micmeter.Meter
		wantRevived bool
		wantMessage string
	}{
		{"loud enough", micmeter.Fixed{Value: cfg.GameOver.ScreamThreshold + 5}, true, ""},
		{"too quiet", micmeter.Fixed{Value: 100}, false, "Louder!"},
		{"meter error", failingMeter{}, false, "Microphone unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, clk := newTestWorld(t)
			playerEntry := addPlayer(e)
			DamagePlayer(e, playerEntry, 10)
			clk.Advance(cfg.Player.DeathScreenDelay)
			if !IsGameOverShowing(e) {
				t.Fatal("game over not showing")
			}

			g := GetOrCreateGameOver(e)
			StartScream(g, tt.meter)
			if !g.Listening {
				t.Fatal("not listening")
			}

			if got := waitForScream(t, e, g); got != tt.wantRevived {
				t.Errorf("revived = %v, want %v", got, tt.wantRevived)
			}
			if !strings.HasPrefix(g.Message, tt.wantMessage) {
				t.Errorf("message = %q, want prefix %q", g.Message, tt.wantMessage)
			}
			if IsPlayerDead(e) == tt.wantRevived {
				t.Errorf("dead = %v after scream", IsPlayerDead(e))
			}
		})
	}
}

func TestScreamWithoutMicrophone(t *testing.T) {
	e, _ := newTestWorld(t)
	g := GetOrCreateGameOver(e)

	StartScream(g, nil)

	if g.Listening {
		t.Error("listening without a meter")
	}
	if g.Message != "No microphone found" {
		t.Errorf("message = %q", g.Message)
	}
}

func TestGameOverWaitsForDeathDelay(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	DamagePlayer(e, playerEntry, 10)

	clk.Advance(cfg.Player.DeathScreenDelay / 2)
	if IsGameOverShowing(e) {
		t.Error("game over shown before the delay")
	}
	clk.Advance(cfg.Player.DeathScreenDelay)
	if !IsGameOverShowing(e) {
		t.Error("game over not shown after the delay")
	}
}

func TestWithGameplayChecksSkipsWhenDead(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	DamagePlayer(e, playerEntry, 10)
	clk.Advance(cfg.Player.DeathScreenDelay)
	system(e)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
