package factory

import (
	"github.com/automoto/shadowblade/archetypes"
	"github.com/automoto/shadowblade/components"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/automoto/shadowblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor creates the stage exit region, closed.
func CreateDoor(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = door
	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.Door.SetValue(door, components.DoorData{})

	addToSpace(ecs, obj)

	return door
}
