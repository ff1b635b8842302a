package components

import (
	"github.com/automoto/shadowblade/config"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Kind     config.PowerUpKind
	Consumed bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
