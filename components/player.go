package components

import (
	"github.com/automoto/shadowblade/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing config.Facing
	State  config.StateID
	Score  int
	Mana   int

	// Attack
	Strength       int
	Attacking      bool
	LastAttackTime float64

	// Damage amplification power-up
	StrengthBonus   int
	DamageAmpStart  float64
	DamageAmpLength float64

	// Invisibility
	Invisible      bool
	InvisibleStart float64

	// Iframes
	Invulnerable   bool
	IFrameStart    float64
	IFrameDuration float64

	Moving  bool
	Opacity float64
	DeadAt  float64
}

// InvisibleRemaining returns the seconds left on the invisibility window.
func (p *PlayerData) InvisibleRemaining(now float64) float64 {
	if !p.Invisible {
		return 0
	}
	left := config.Player.InvisibilityDuration - (now - p.InvisibleStart)
	if left < 0 {
		return 0
	}
	return left
}

// IsInvulnerable reports an active iframe window.
func (p *PlayerData) IsInvulnerable(now float64) bool {
	return p.Invulnerable && now-p.IFrameStart < p.IFrameDuration
}

var Player = donburi.NewComponentType[PlayerData]()
