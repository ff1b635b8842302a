package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DoorData is the stage exit. It is only passable while Open.
type DoorData struct {
	Open  bool
	Fade  *gween.Tween
	Alpha float32
}

var Door = donburi.NewComponentType[DoorData]()
