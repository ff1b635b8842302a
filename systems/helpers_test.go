package systems

import (
	"testing"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/clock"
	"github.com/automoto/shadowblade/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

// newTestWorld builds a story-mode world on a manual clock with the default
// arena, a door and no player.
func newTestWorld(t *testing.T) (*ecs.ECS, *clock.Manual) {
	t.Helper()
	return newTestWorldMode(t, components.ModeStory)
}

func newTestWorldMode(t *testing.T, mode components.GameMode) (*ecs.ECS, *clock.Manual) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clk := clock.NewManual(100)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateSession(e, factory.SessionOptions{Clock: clk, Seed: 1, Mode: mode})
	session := GetSession(e)
	session.Layout = DefaultLayout()
	factory.CreateDoor(e, session.Layout.Door)
	return e, clk
}

func addPlayer(e *ecs.ECS) *donburi.Entry {
	spawn := DefaultLayout().PlayerSpawn
	return factory.CreatePlayer(e, spawn.X, spawn.Y)
}

// addEnemyNear places kind so its centre is dx pixels right of the player's.
func addEnemyNear(e *ecs.ECS, playerEntry *donburi.Entry, kind cfg.EnemyKind, dx float64) *donburi.Entry {
	px, py := components.Object.Get(playerEntry).Center()
	et := cfg.EnemyType(kind)
	return factory.CreateEnemy(e, kind, px+dx-et.CollisionWidth/2, py-et.CollisionHeight/2)
}

// addEnemyFar places kind in the arena's top-left corner, well away from
// the player.
func addEnemyFar(e *ecs.ECS, kind cfg.EnemyKind) *donburi.Entry {
	zone := DefaultLayout().PlayZone
	return factory.CreateEnemy(e, kind, zone.X, zone.Y)
}

func pressConfirm(e *ecs.ECS) {
	SetScriptedInput(e, 0, 0, cfg.ActionConfirm)
	UpdateDialogue(e)
	SetScriptedInput(e, 0, 0)
	UpdateDialogue(e)
}
