package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi/ecs"
)

// IsPlayerDead reports whether the player is in the terminal Dead state.
func IsPlayerDead(e *ecs.ECS) bool {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	return components.Player.Get(entry).State == cfg.StateDead
}

// IsGameOverShowing reports whether the player has been dead long enough
// for the game over screen to take over.
func IsGameOverShowing(e *ecs.ECS) bool {
	entry, ok := tags.Player.First(e.World)
	session := GetSession(e)
	if !ok || session == nil {
		return false
	}
	player := components.Player.Get(entry)
	return player.State == cfg.StateDead && session.Now()-player.DeadAt >= cfg.Player.DeathScreenDelay
}

// IsRunOver reports whether the run has ended in victory.
func IsRunOver(e *ecs.ECS) bool {
	session := GetSession(e)
	return session != nil && session.RunOver
}

// WithGameplayChecks wraps a gameplay system so it does not run while the
// game is paused or over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) || IsGameOverShowing(e) || IsRunOver(e) {
			return
		}
		system(e)
	}
}
