package factory

import (
	"github.com/automoto/shadowblade/archetypes"
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePowerUp(ecs *ecs.ECS, kind cfg.PowerUpKind, x, y float64) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(ecs)

	size := cfg.PowerUp.Size
	obj := resolv.NewObject(x, y, size, size, tags.ResolvPowerUp)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = powerUp
	components.Object.SetValue(powerUp, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.PowerUp.SetValue(powerUp, components.PowerUpData{Kind: kind})

	anim := components.NewAnimationData(kind.SheetKey(), cfg.PowerUp.AnimationSpeed)
	anim.SetAnimation(cfg.StateIdle)
	components.Animation.SetValue(powerUp, anim)

	return powerUp
}
