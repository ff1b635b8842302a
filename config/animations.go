package config

// AnimationDef describes one animation strip. Playback speed belongs to the
// actor so it can be frozen or slowed without touching the definition.
type AnimationDef struct {
	Frames int
	Loop   bool
}

// CharacterAnimations maps a sprite sheet key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		StateIdle:      {Frames: 8, Loop: true},
		StateWalk:      {Frames: 6, Loop: true},
		StateAttack:    {Frames: 4, Loop: false},
		StateInvisible: {Frames: 8, Loop: true},
		StateDead:      {Frames: 6, Loop: true},
	},
	"pawn": {
		StateIdle:   {Frames: 6, Loop: true},
		StateWalk:   {Frames: 6, Loop: true},
		StateAttack: {Frames: 6, Loop: false},
	},
	"goblin": {
		StateIdle:   {Frames: 7, Loop: true},
		StateWalk:   {Frames: 6, Loop: true},
		StateAttack: {Frames: 6, Loop: false},
	},
	"scout": {
		StateIdle:   {Frames: 8, Loop: true},
		StateWalk:   {Frames: 8, Loop: true},
		StateAttack: {Frames: 3, Loop: false},
	},
	"tnt": {
		StateIdle:   {Frames: 6, Loop: true},
		StateWalk:   {Frames: 6, Loop: true},
		StateAttack: {Frames: 7, Loop: false},
	},
	"archer": {
		StateIdle:   {Frames: 6, Loop: true},
		StateWalk:   {Frames: 6, Loop: true},
		StateAttack: {Frames: 8, Loop: false},
	},
	"lancier": {
		StateIdle:   {Frames: 12, Loop: true},
		StateWalk:   {Frames: 6, Loop: true},
		StateAttack: {Frames: 3, Loop: false},
	},
	"boss": {
		StateIdle:   {Frames: 12, Loop: true},
		StateWalk:   {Frames: 8, Loop: true},
		StateAttack: {Frames: 6, Loop: false},
		StateDying:  {Frames: 10, Loop: false},
	},
	"explosion": {
		StateDying: {Frames: 11, Loop: false},
	},
	"powerup_damageAmp": {
		StateIdle: {Frames: 8, Loop: true},
	},
	"powerup_invulnerability": {
		StateIdle: {Frames: 8, Loop: true},
	},
	"powerup_heart": {
		StateIdle: {Frames: 6, Loop: true},
	},
}
