package sim

import (
	"math"
	"math/rand"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/automoto/shadowblade/systems"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	strikeRange     = 40.0 // centre distance at which the pilot swings
	confirmInterval = 30   // ticks between dialogue confirms
	jitterChance    = 0.1  // chance per tick of a random step, to break stalemates
)

// autopilot hunts the nearest enemy and heads for the door once it opens.
// It turns invisible when hurt and confirms dialogue on a fixed interval.
type autopilot struct {
	rng *rand.Rand
}

func newAutopilot(seed int64) *autopilot {
	return &autopilot{rng: rand.New(rand.NewSource(seed + 1))}
}

func (a *autopilot) drive(e *ecs.ECS, tick int) {
	session := systems.GetSession(e)
	playerEntry, ok := tags.Player.First(e.World)
	if session == nil || !ok {
		systems.SetScriptedInput(e, 0, 0)
		return
	}

	if session.InCutscene {
		if tick%confirmInterval == 0 {
			systems.SetScriptedInput(e, 0, 0, cfg.ActionConfirm)
		} else {
			systems.SetScriptedInput(e, 0, 0)
		}
		return
	}

	player := components.Player.Get(playerEntry)
	px, py := components.Object.Get(playerEntry).Center()
	var actions []cfg.ActionID

	health := components.Health.Get(playerEntry)
	if health.Current <= health.Max/2 && player.Mana >= cfg.Player.InvisibilityCost && tick%2 == 0 {
		actions = append(actions, cfg.ActionInvisibility)
	}

	var tx, ty float64
	hasTarget := false
	if session.DoorOpen {
		if door, ok := tags.Door.First(e.World); ok {
			tx, ty = components.Object.Get(door).Center()
			hasTarget = true
		}
	} else if target := nearestEnemy(e, px, py); target != nil {
		tx, ty = components.Object.Get(target).Center()
		hasTarget = true
		if _, _, dist := gamemath.Direction(px, py, tx, ty); dist <= strikeRange && tick%2 == 0 {
			actions = append(actions, cfg.ActionAttack)
		}
	}

	var mx, my float64
	if hasTarget {
		mx, my, _ = gamemath.Direction(px, py, tx, ty)
	}
	if a.rng.Float64() < jitterChance {
		mx, my = a.rng.Float64()*2-1, a.rng.Float64()*2-1
	}
	systems.SetScriptedInput(e, snap(mx), snap(my), actions...)
}

// nearestEnemy returns the closest living enemy, or nil.
func nearestEnemy(e *ecs.ECS, px, py float64) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).IsDead {
			return
		}
		ex, ey := components.Object.Get(entry).Center()
		if _, _, d := gamemath.Direction(px, py, ex, ey); d < bestDist {
			best, bestDist = entry, d
		}
	})
	return best
}

// snap turns a direction component into a digital stick value.
func snap(v float64) float64 {
	switch {
	case v > 0.3:
		return 1
	case v < -0.3:
		return -1
	}
	return 0
}
