package systems

import (
	"math"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/systems/factory"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi/ecs"
)

// SpawnSide is the screen edge an enemy enters from.
type SpawnSide int

const (
	SideTop SpawnSide = iota
	SideBottom
	SideLeft
	SideRight
)

// UpdateSpawner creates enemies on the ramping schedule and power-ups while
// the player is invisible.
func UpdateSpawner(ecs *ecs.ECS) {
	session := GetSession(ecs)
	spawner := GetSpawner(ecs)
	if session == nil || spawner == nil {
		return
	}
	now := session.Now()

	if session.Spawnable && now-spawner.LastSpawnTime >= spawner.Delay {
		kinds := SpawnableKinds(session)
		if len(kinds) > 0 {
			kind := kinds[session.Rand.Intn(len(kinds))]
			side := SpawnSide(session.Rand.Intn(4))
			x, y := spawnPosition(session, kind, side)
			factory.CreateEnemy(ecs, kind, x, y)
			spawner.Spawned++
		}
		spawner.LastSpawnTime = now
		if rampActive(session) {
			spawner.Delay = math.Max(spawner.Delay-cfg.Spawner.DelayStep, cfg.Spawner.MinDelay)
		}
	}

	spawnPowerUp(ecs, session, spawner, now)
}

// SpawnableKinds is the enemy pool for the current stage.
func SpawnableKinds(session *components.SessionData) []cfg.EnemyKind {
	if session.Mode == components.ModeEndless {
		return cfg.Stages.EndlessKinds
	}
	stage, ok := cfg.Stage(session.Stage)
	if !ok {
		return nil
	}
	return stage.Kinds
}

func rampActive(session *components.SessionData) bool {
	if session.Mode == components.ModeEndless {
		return true
	}
	stage, ok := cfg.Stage(session.Stage)
	return ok && stage.Ramp
}

// spawnPosition picks a point just outside the play zone on side, spread
// uniformly along that edge.
func spawnPosition(session *components.SessionData, kind cfg.EnemyKind, side SpawnSide) (float64, float64) {
	zone := playZone(session)
	et := cfg.EnemyType(kind)
	margin := cfg.Spawner.EdgeMargin
	along := func(lo, length, size float64) float64 {
		span := math.Max(length-size, 0)
		return lo + session.Rand.Float64()*span
	}

	switch side {
	case SideTop:
		return along(zone.X, zone.W, et.CollisionWidth), zone.Y - margin - et.CollisionHeight
	case SideBottom:
		return along(zone.X, zone.W, et.CollisionWidth), zone.Bottom() + margin
	case SideLeft:
		return zone.X - margin - et.CollisionWidth, along(zone.Y, zone.H, et.CollisionHeight)
	default:
		return zone.Right() + margin, along(zone.Y, zone.H, et.CollisionHeight)
	}
}

// spawnPowerUp places one pickup inside the play zone while the player is
// invisible, at most one at a time and no more often than SpawnCooldown.
// Hearts are only offered below full health.
func spawnPowerUp(ecs *ecs.ECS, session *components.SessionData, spawner *components.SpawnerData, now float64) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Invisible {
		return
	}
	if _, exists := tags.PowerUp.First(ecs.World); exists {
		return
	}
	if now-spawner.LastPowerUpSpawn < cfg.PowerUp.SpawnCooldown {
		return
	}

	pool := []cfg.PowerUpKind{cfg.PowerUpDamageAmp, cfg.PowerUpInvulnerability}
	if health := components.Health.Get(playerEntry); health.Current < health.Max {
		pool = append(pool, cfg.PowerUpHeart)
	}
	kind := pool[session.Rand.Intn(len(pool))]

	zone := playZone(session)
	size := cfg.PowerUp.Size
	x := zone.X + session.Rand.Float64()*math.Max(zone.W-size, 0)
	y := zone.Y + session.Rand.Float64()*math.Max(zone.H-size, 0)
	factory.CreatePowerUp(ecs, kind, x, y)
	spawner.LastPowerUpSpawn = now
}

// ResetSpawnRamp returns the scheduler to its initial delay.
func ResetSpawnRamp(spawner *components.SpawnerData, now float64) {
	spawner.Delay = cfg.Spawner.InitialDelay
	spawner.LastSpawnTime = now
}
