package components

import (
	cfg "github.com/automoto/shadowblade/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all
// actions, merged across keyboard, mouse and every gamepad.
// JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Requested movement, each axis in [-1, 1]
	MoveX, MoveY float64
}

func (d *InputData) Pressed(action cfg.ActionID) bool {
	return d.Current[action]
}

func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

// Press marks action as held for this tick. Used by scripted input.
func (d *InputData) Press(action cfg.ActionID) {
	d.Current[action] = true
}

// Advance moves the current snapshot to Previous and clears Current.
func (d *InputData) Advance() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
	d.MoveX, d.MoveY = 0, 0
}

var Input = donburi.NewComponentType[InputData]()
