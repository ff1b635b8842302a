package components

import (
	"github.com/automoto/shadowblade/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind   config.EnemyKind
	State  config.StateID
	Facing config.Facing

	// Speed is zero while staggered; DefaultSpeed is the kind's table value.
	Speed        float64
	DefaultSpeed float64

	DefaultAnimationSpeed float64

	// Combat
	LastAttackTime float64
	LastDamageTime float64

	// Stagger and knockback
	StaggerStart       float64
	KnockbackX         float64
	KnockbackY         float64
	KnockbackRemaining float64

	// Death
	IsDead     bool
	DeathFrame int // ticks spent in the death sequence

	// Confused is set while the player is invisible; drawn as a marker.
	Confused bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
