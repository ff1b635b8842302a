package factory

import (
	"math"

	"github.com/automoto/shadowblade/archetypes"
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of kind with its top-left corner at (x, y).
// The kind set is closed; an unknown kind panics.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	enemyType := cfg.EnemyType(kind)

	var enemy *donburi.Entry
	if enemyType.IsBoss {
		enemy = archetypes.Enemy.Spawn(ecs, tags.Boss)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	w, h := enemyType.CollisionWidth, enemyType.CollisionHeight
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:                  kind,
		State:                 cfg.StateIdle,
		Facing:                cfg.FacingLeft,
		Speed:                 enemyType.Speed,
		DefaultSpeed:          enemyType.Speed,
		DefaultAnimationSpeed: enemyType.AnimationSpeed,
		LastAttackTime:        math.Inf(-1),
		LastDamageTime:        math.Inf(-1),
	})

	// Set health from config
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	anim := components.NewAnimationData(enemyType.SpriteSheetKey, enemyType.AnimationSpeed)
	anim.SetAnimation(cfg.StateIdle)
	components.Animation.SetValue(enemy, anim)

	return enemy
}
