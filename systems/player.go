package systems

import (
	"math"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	session := GetSession(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if session == nil || !ok {
		return
	}
	now := session.Now()

	player := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	expirePlayerTimers(player, now)

	if player.State == cfg.StateDead {
		anim.SetAnimation(cfg.StateDead)
		anim.Update()
		player.Opacity = 1
		return
	}

	if session.InCutscene {
		player.Moving = false
		player.Attacking = false
		setPlayerState(player, anim, cfg.StateIdle)
		anim.Update()
		player.Opacity = playerOpacity(player, now)
		return
	}

	input := GetOrCreateInput(ecs)
	if input.JustPressed(cfg.ActionInvisibility) {
		TryInvisibility(ecs, playerEntry)
	}
	if input.JustPressed(cfg.ActionAttack) {
		TryAttack(ecs, playerEntry)
	}
	movePlayer(session, playerEntry, player, input.MoveX, input.MoveY)

	anim.Update()
	if player.Attacking && anim.CurrentSheet == cfg.StateAttack && anim.Finished() {
		player.Attacking = false
	}

	setPlayerState(player, anim, resolvePlayerState(player))
	if player.State == cfg.StateWalk {
		PlayGroup(ecs, cfg.GroupFootstepStone, cfg.Sound.FootstepVolume, cfg.Sound.FootstepInterval)
	}
	player.Opacity = playerOpacity(player, now)
}

// expirePlayerTimers ends invisibility, damage amplification and iframes
// whose deadlines have passed. Durations are compared against the clock,
// never counted down.
func expirePlayerTimers(player *components.PlayerData, now float64) {
	if player.Invisible && now-player.InvisibleStart >= cfg.Player.InvisibilityDuration {
		player.Invisible = false
	}
	if player.StrengthBonus > 0 && now-player.DamageAmpStart >= player.DamageAmpLength {
		player.Strength -= player.StrengthBonus
		player.StrengthBonus = 0
	}
	if player.Invulnerable && now-player.IFrameStart >= player.IFrameDuration {
		player.Invulnerable = false
		player.IFrameDuration = cfg.Player.IFrameDuration
	}
}

// resolvePlayerState applies the priority Dead > Attack > Invisible > Walk > Idle.
func resolvePlayerState(player *components.PlayerData) cfg.StateID {
	switch {
	case player.State == cfg.StateDead:
		return cfg.StateDead
	case player.Attacking:
		return cfg.StateAttack
	case player.Invisible:
		return cfg.StateInvisible
	case player.Moving:
		return cfg.StateWalk
	default:
		return cfg.StateIdle
	}
}

func setPlayerState(player *components.PlayerData, anim *components.AnimationData, state cfg.StateID) {
	player.State = state
	anim.SetAnimation(state)
}

func movePlayer(session *components.SessionData, entry *donburi.Entry, player *components.PlayerData, moveX, moveY float64) {
	player.Moving = moveX != 0 || moveY != 0
	if !player.Moving {
		return
	}
	if moveX < 0 {
		player.Facing = cfg.FacingLeft
	} else if moveX > 0 {
		player.Facing = cfg.FacingRight
	}

	obj := components.Object.Get(entry)
	r := obj.Rect()
	r.X += moveX * cfg.Player.Speed
	r.Y += moveY * cfg.Player.Speed
	r = gamemath.ClampRect(r, playZone(session))
	obj.MoveTo(r.X, r.Y)
}

// TryAttack starts an attack if the player is free to swing. A refused
// attack is silently dropped.
func TryAttack(ecs *ecs.ECS, entry *donburi.Entry) bool {
	player := components.Player.Get(entry)
	now := GetSession(ecs).Now()
	if player.State == cfg.StateDead || player.Attacking || player.Invisible {
		return false
	}
	if now-player.LastAttackTime < cfg.Player.AttackCooldown {
		return false
	}

	player.Attacking = true
	player.LastAttackTime = now
	player.State = cfg.StateAttack
	components.Animation.Get(entry).ResetAnimation(cfg.StateAttack)
	PlayGroup(ecs, cfg.GroupSwordSwings, 0.2, 0)
	return true
}

// TryInvisibility spends mana to turn invisible. Without enough mana, or
// while already invisible, nothing happens.
func TryInvisibility(ecs *ecs.ECS, entry *donburi.Entry) bool {
	player := components.Player.Get(entry)
	if player.State == cfg.StateDead || player.Invisible || player.Mana < cfg.Player.InvisibilityCost {
		return false
	}

	player.Mana -= cfg.Player.InvisibilityCost
	player.Invisible = true
	player.InvisibleStart = GetSession(ecs).Now()
	PlaySFX(ecs, cfg.SoundVanish, 0.5)
	return true
}

// playerOpacity is the draw alpha: nearly transparent while invisible and
// blinking while iframes are active.
func playerOpacity(player *components.PlayerData, now float64) float64 {
	if player.Invisible {
		return cfg.Player.InvisibleAlpha
	}
	if player.IsInvulnerable(now) {
		phase := int(math.Floor((now - player.IFrameStart) / cfg.Player.BlinkInterval))
		if phase%2 == 0 {
			return cfg.Player.BlinkAlpha
		}
	}
	return 1
}

// RevivePlayer brings a dead player back at the stage spawn with full health.
// It is a reset, not a heal: score and mana are kept.
func RevivePlayer(ecs *ecs.ECS) {
	session := GetSession(ecs)
	entry, ok := tags.Player.First(ecs.World)
	if session == nil || !ok {
		return
	}
	player := components.Player.Get(entry)
	health := components.Health.Get(entry)
	health.Current = health.Max

	player.State = cfg.StateIdle
	player.Attacking = false
	player.Invisible = false
	player.Invulnerable = false
	player.IFrameDuration = cfg.Player.IFrameDuration
	player.Opacity = 1
	components.Animation.Get(entry).ResetAnimation(cfg.StateIdle)

	placePlayerAtSpawn(session, entry)

	// The wave restarts gently
	RemoveAllEnemies(ecs)
	spawner := GetSpawner(ecs)
	spawner.Delay = cfg.Spawner.InitialDelay
	spawner.LastSpawnTime = session.Now()
	if !session.InCutscene && !session.StageCleared {
		session.Spawnable = true
	}
	logEvent("Player revived on stage %d", session.Stage)
}

func placePlayerAtSpawn(session *components.SessionData, entry *donburi.Entry) {
	if session.Layout == nil {
		session.Layout = DefaultLayout()
	}
	obj := components.Object.Get(entry)
	spawn := session.Layout.PlayerSpawn
	obj.MoveTo(spawn.X-obj.W/2, spawn.Y-obj.H/2)
}
