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

// CreatePlayer spawns the player centred on (cx, cy).
func CreatePlayer(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing:         cfg.FacingRight,
		State:          cfg.StateIdle,
		Mana:           cfg.Player.StartingMana,
		Strength:       cfg.Player.AttackStrength,
		LastAttackTime: math.Inf(-1),
		IFrameDuration: cfg.Player.IFrameDuration,
		Opacity:        1,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.MaxHealth,
	})

	anim := components.NewAnimationData("player", cfg.Player.AnimationSpeed)
	anim.SetAnimation(cfg.StateIdle)
	components.Animation.SetValue(player, anim)

	return player
}
