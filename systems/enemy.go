package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs one tick of every enemy's state machine. Contact damage
// from the player's attack is resolved first; the AI only acts if the enemy
// is not staggered afterwards.
func UpdateEnemies(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	now := session.Now()
	playerEntry, hasPlayer := tags.Player.First(ecs.World)

	var finished []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		anim := components.Animation.Get(e)

		if enemy.IsDead {
			if advanceEnemyDeath(e, enemy, anim) {
				finished = append(finished, e)
			}
			return
		}

		// Scripted dialogue freezes combat; the boss faces the arena entrance.
		if session.InCutscene {
			if e.HasComponent(tags.Boss) {
				enemy.Facing = cfg.FacingLeft
			}
			setEnemyState(enemy, anim, cfg.StateIdle)
			enemy.Confused = false
			anim.Update()
			return
		}

		if !hasPlayer {
			anim.Update()
			return
		}

		checkPlayerContact(ecs, e, enemy, playerEntry, now)
		if enemy.IsDead {
			return
		}

		if enemy.State == cfg.StateStaggered {
			if updateStagger(e, enemy, anim, now) {
				updateEnemyAI(ecs, e, enemy, anim, playerEntry, now)
			}
		} else {
			updateEnemyAI(ecs, e, enemy, anim, playerEntry, now)
		}
		anim.Update()
	})

	for _, e := range finished {
		RemoveEntity(ecs, e)
	}
}

// checkPlayerContact hurts the enemy when the attacking player overlaps it.
// An enemy can be hit at most once per ContactDamageInterval and not while
// it is already staggered.
func checkPlayerContact(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, playerEntry *donburi.Entry, now float64) {
	player := components.Player.Get(playerEntry)
	if !player.Attacking || player.State != cfg.StateAttack {
		return
	}
	if enemy.State == cfg.StateStaggered {
		return
	}
	if now-enemy.LastDamageTime < cfg.Enemy.ContactDamageInterval {
		return
	}
	if !components.Object.Get(e).Rect().Intersects(components.Object.Get(playerEntry).Rect()) {
		return
	}
	DamageEnemy(ecs, e, player.Strength)
	enemy.LastDamageTime = now
}

// updateStagger applies knockback and reports whether the stagger ended
// this tick.
func updateStagger(e *donburi.Entry, enemy *components.EnemyData, anim *components.AnimationData, now float64) bool {
	enemyType := cfg.EnemyType(enemy.Kind)
	obj := components.Object.Get(e)

	if enemy.KnockbackRemaining > 0 {
		obj.MoveTo(
			obj.X+enemy.KnockbackX*enemyType.KnockbackSpeed,
			obj.Y+enemy.KnockbackY*enemyType.KnockbackSpeed,
		)
		enemy.KnockbackRemaining -= enemyType.KnockbackSpeed
	}

	if now-enemy.StaggerStart < enemyType.StaggerDuration {
		return false
	}

	enemy.Speed = enemy.DefaultSpeed
	anim.Speed = enemy.DefaultAnimationSpeed
	enemy.KnockbackRemaining = 0
	setEnemyState(enemy, anim, cfg.StateIdle)
	return true
}

func updateEnemyAI(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, anim *components.AnimationData, playerEntry *donburi.Entry, now float64) {
	player := components.Player.Get(playerEntry)

	// An invisible player cannot be perceived: stand still, confused.
	if player.Invisible {
		enemy.Confused = true
		setEnemyState(enemy, anim, cfg.StateIdle)
		return
	}
	enemy.Confused = false

	obj := components.Object.Get(e)
	ex, ey := obj.Center()
	px, py := components.Object.Get(playerEntry).Center()
	dx, dy, dist := gamemath.Direction(ex, ey, px, py)

	if px < ex {
		enemy.Facing = cfg.FacingLeft
	} else {
		enemy.Facing = cfg.FacingRight
	}

	moved := false
	if dist > cfg.Enemy.StopDistance && enemy.Speed > 0 {
		obj.MoveTo(obj.X+dx*enemy.Speed, obj.Y+dy*enemy.Speed)
		moved = true
	}

	if enemy.State == cfg.StateAttack && anim.Finished() {
		setEnemyState(enemy, anim, cfg.StateIdle)
	}

	// Damage lands when the attack starts, not on a particular frame.
	if dist <= cfg.Enemy.AttackRadius && enemy.State != cfg.StateAttack &&
		now-enemy.LastAttackTime >= cfg.Enemy.AttackCooldown {
		enemy.State = cfg.StateAttack
		anim.ResetAnimation(cfg.StateAttack)
		enemy.LastAttackTime = now
		DamagePlayer(ecs, playerEntry, cfg.EnemyType(enemy.Kind).AttackPoints)
		return
	}

	if enemy.State == cfg.StateAttack {
		return
	}
	if moved {
		setEnemyState(enemy, anim, cfg.StateWalk)
	} else {
		setEnemyState(enemy, anim, cfg.StateIdle)
	}
}

// advanceEnemyDeath plays one tick of the death sequence and reports
// whether the enemy should now be removed. Regular enemies explode for a
// fixed number of ticks; the boss holds its last frame until the closing
// dialogue removes it.
func advanceEnemyDeath(e *donburi.Entry, enemy *components.EnemyData, anim *components.AnimationData) bool {
	if e.HasComponent(tags.Boss) {
		if !anim.Finished() {
			enemy.DeathFrame++
			anim.Update()
		}
		return false
	}
	enemy.DeathFrame++
	anim.Update()
	return enemy.DeathFrame >= cfg.Enemy.ExplosionFrames
}

func setEnemyState(enemy *components.EnemyData, anim *components.AnimationData, state cfg.StateID) {
	enemy.State = state
	anim.SetAnimation(state)
}
