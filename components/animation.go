package components

import (
	"github.com/automoto/shadowblade/assets/animations"
	"github.com/automoto/shadowblade/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	SheetKey         string
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation

	// Speed is the fraction of a frame advanced per tick. The owner sets it
	// to 0 to freeze playback, e.g. while staggered.
	Speed float64
}

// NewAnimationData builds one animation per state from the sheet's definitions.
func NewAnimationData(sheetKey string, speed float64) AnimationData {
	defs := config.CharacterAnimations[sheetKey]
	anims := make(map[config.StateID]*animations.Animation, len(defs))
	for state, def := range defs {
		anims[state] = animations.NewAnimation(def.Frames, def.Loop)
	}
	return AnimationData{
		SheetKey:     sheetKey,
		Animations:   anims,
		CurrentSheet: config.StateNone,
		Speed:        speed,
	}
}

// SetAnimation switches to state, restarting it. Staying in the same state
// keeps the running animation. States without frames keep the previous strip.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state {
		return
	}
	a.CurrentSheet = state
	if anim, ok := a.Animations[state]; ok {
		a.CurrentAnimation = anim
		anim.Restart()
	}
}

// ResetAnimation re-enters state from frame 0 even if it is already current.
func (a *AnimationData) ResetAnimation(state config.StateID) {
	a.CurrentSheet = config.StateNone
	a.SetAnimation(state)
}

func (a *AnimationData) Update() {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Update(a.Speed)
	}
}

// Finished reports whether the current non-looping animation is done.
func (a *AnimationData) Finished() bool {
	return a.CurrentAnimation != nil && a.CurrentAnimation.Finished()
}

func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
