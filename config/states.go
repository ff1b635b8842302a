package config

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	LayerActors
	LayerHUD
)

// StateID identifies an actor state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1

	StateIdle
	StateWalk
	StateAttack
	StateStaggered
	StateDying
	StateInvisible
	StateDead
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateIdle:      "idle",
	StateWalk:      "walk",
	StateAttack:    "attack",
	StateStaggered: "staggered",
	StateDying:     "dying",
	StateInvisible: "invisible",
	StateDead:      "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Facing is the horizontal direction an actor looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns -1 for left and 1 for right, for sprite flipping.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "L"
	}
	return "R"
}

// EnemyKind is the closed set of enemy types.
type EnemyKind int

const (
	KindPawn EnemyKind = iota
	KindGoblin
	KindScout
	KindTNT
	KindArcher
	KindLancier
	KindBoss
)

var enemyKindNames = []string{"pawn", "goblin", "scout", "tnt", "archer", "lancier", "boss"}

func (k EnemyKind) String() string {
	if k >= 0 && int(k) < len(enemyKindNames) {
		return enemyKindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseEnemyKind maps a lower-case kind name to its EnemyKind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range enemyKindNames {
		if n == name {
			return EnemyKind(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown enemy kind %q", name)
}

// PowerUpKind is the set of pickups spawned while the player is invisible.
type PowerUpKind int

const (
	PowerUpDamageAmp PowerUpKind = iota
	PowerUpInvulnerability
	PowerUpHeart
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpDamageAmp:
		return "damageAmp"
	case PowerUpInvulnerability:
		return "invulnerability"
	case PowerUpHeart:
		return "heart"
	}
	return fmt.Sprintf("powerup(%d)", int(k))
}

// SheetKey is the animation set used to draw the pickup.
func (k PowerUpKind) SheetKey() string {
	return "powerup_" + k.String()
}
