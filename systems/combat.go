package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DamageEnemy applies amount to an enemy. Regular enemies are staggered and
// knocked back away from the player; the boss only loses health. Damage to
// an enemy that is already dead is ignored, so a kill scores once.
func DamageEnemy(e *ecs.ECS, entry *donburi.Entry, amount int) {
	enemy := components.Enemy.Get(entry)
	if enemy.IsDead {
		return
	}
	session := GetSession(e)
	now := session.Now()
	enemyType := cfg.EnemyType(enemy.Kind)

	if !enemyType.IsBoss {
		anim := components.Animation.Get(entry)
		enemy.State = cfg.StateStaggered
		enemy.Speed = 0
		anim.Speed = 0
		anim.SetAnimation(cfg.StateStaggered)
		enemy.StaggerStart = now

		enemy.KnockbackX, enemy.KnockbackY = 0, 0
		if playerEntry, ok := tags.Player.First(e.World); ok {
			px, py := components.Object.Get(playerEntry).Center()
			ex, ey := components.Object.Get(entry).Center()
			enemy.KnockbackX, enemy.KnockbackY, _ = gamemath.Direction(px, py, ex, ey)
		}
		enemy.KnockbackRemaining = enemyType.KnockbackDistance
	}

	health := components.Health.Get(entry)
	health.Current -= amount
	PlaySFX(e, cfg.SoundEnemyHit, 0.6)

	if health.Depleted() {
		killEnemy(e, entry, enemy, enemyType)
	}
}

func killEnemy(e *ecs.ECS, entry *donburi.Entry, enemy *components.EnemyData, enemyType cfg.EnemyTypeConfig) {
	enemy.IsDead = true
	enemy.State = cfg.StateDying
	enemy.DeathFrame = 0
	enemy.Speed = 0
	enemy.Confused = false

	if playerEntry, ok := tags.Player.First(e.World); ok {
		EnemyKilled(playerEntry, enemyType.ScoreValue)
	}

	anim := components.Animation.Get(entry)
	if enemyType.IsBoss {
		anim.Speed = 1
		anim.ResetAnimation(cfg.StateDying)
		PlaySFX(e, cfg.SoundBossDeath, 1)
		StartBossOutro(e)
		return
	}

	// The explosion replaces the kind's own frames, one per tick.
	*anim = components.NewAnimationData("explosion", 1)
	anim.SetAnimation(cfg.StateDying)
	PlaySFX(e, cfg.SoundExplosion, 0.8)
}

// DamagePlayer applies amount unless the player is invulnerable or dead.
// It reports whether health changed.
func DamagePlayer(e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	player := components.Player.Get(entry)
	session := GetSession(e)
	now := session.Now()
	if player.State == cfg.StateDead || player.IsInvulnerable(now) {
		return false
	}

	health := components.Health.Get(entry)
	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	PlayGroup(e, cfg.GroupPlayerHurts, 0.2, 0)

	if health.Depleted() {
		killPlayer(e, entry, player, now)
		return true
	}

	player.Invulnerable = true
	player.IFrameStart = now
	return true
}

func killPlayer(e *ecs.ECS, entry *donburi.Entry, player *components.PlayerData, now float64) {
	player.State = cfg.StateDead
	player.DeadAt = now
	player.Attacking = false
	player.Invisible = false
	player.Invulnerable = false
	player.Opacity = 1
	components.Animation.Get(entry).SetAnimation(cfg.StateDead)
	PlayGroup(e, cfg.GroupPlayerDeath, 0.4, 0)
	logEvent("Player died with score %d", player.Score)
}

// HealPlayer adds amount to the player's health. When clamp is set the
// result is capped at the maximum.
func HealPlayer(entry *donburi.Entry, amount int, clamp bool) {
	health := components.Health.Get(entry)
	health.Current += amount
	if clamp && health.Current > health.Max {
		health.Current = health.Max
	}
}

// EnemyKilled credits a kill: score always, and one mana point below the cap.
func EnemyKilled(entry *donburi.Entry, points int) {
	player := components.Player.Get(entry)
	player.Score += points
	if player.Mana < cfg.Player.MaxMana {
		player.Mana++
	}
}
