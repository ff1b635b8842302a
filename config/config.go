package config

import (
	"fmt"
	"image/color"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // pixels per tick at full stick / key press

	// Combat
	Health         int
	MaxHealth      int
	AttackStrength int     // base damage dealt on contact while attacking
	AttackCooldown float64 // seconds between accepted attacks
	IFrameDuration float64 // seconds of invulnerability after a hit

	// Invisibility
	InvisibilityDuration float64
	InvisibilityCost     int
	StartingMana         int
	MaxMana              int

	// Visual
	AnimationSpeed float64 // fraction of a frame advanced per tick
	BlinkInterval  float64 // seconds between opacity toggles while invulnerable
	BlinkAlpha     float64
	InvisibleAlpha float64

	// Seconds between the death transition and the game over screen
	DeathScreenDelay float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string
	Health int
	Speed  float64

	// Combat
	AttackPoints      int
	StaggerDuration   float64 // seconds
	KnockbackDistance float64 // pixels travelled while staggered
	KnockbackSpeed    float64 // pixels per tick while knocked back
	ScoreValue        int

	// Bosses are never staggered and die through a cutscene
	IsBoss bool

	AnimationSpeed float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	TintColor      color.RGBA
	SpriteSheetKey string
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	// AI behavior constants
	StopDistance          float64 // enemies stop closing in below this distance
	AttackRadius          float64
	AttackCooldown        float64 // seconds between attacks, all kinds
	ContactDamageInterval float64 // seconds between hits an enemy can take from contact

	ExplosionFrames int     // ticks the explosion plays before removal
	MarkerOffset    float64 // confused marker height above the enemy
}

// SpawnerConfig contains the enemy wave scheduler values
type SpawnerConfig struct {
	InitialDelay float64
	DelayStep    float64 // subtracted after every spawn
	MinDelay     float64
	EdgeMargin   float64 // distance outside the screen edge where enemies appear
}

// PowerUpConfig contains power-up pickup values
type PowerUpConfig struct {
	Size           float64
	AnimationSpeed float64
	SpawnCooldown  float64 // seconds between power-up spawns
	DespawnBelow   float64 // remaining invisibility under which a power-up vanishes
	BaseDuration   float64 // buff duration before the invisibility extension
	DamageBonus    int
	HeartHealth    int
}

// StageConfig describes one stage of a story run
type StageConfig struct {
	Index     int
	Threshold int // cumulative score that clears the previous stage
	Kinds     []EnemyKind
	Ramp      bool // whether each spawn shortens the spawn delay
	Boss      bool
	Terminal  bool // reaching this stage ends the run
	Layout    string
	Tint      color.RGBA
}

// StagesConfig contains stage progression values
type StagesConfig struct {
	List             []StageConfig
	EndlessLayout    string
	EndlessKinds     []EnemyKind
	ClearBonusHealth int
	BannerSeconds    float32
	DoorFadeSeconds  float32
}

// DialogueLine is one line of scripted dialogue
type DialogueLine struct {
	Speaker string
	Text    string
}

// DialogueConfig contains the scripted boss dialogue
type DialogueConfig struct {
	BossIntro []DialogueLine
	BossOutro []DialogueLine
	BoxColor  color.RGBA
	TextColor color.RGBA
	BoxHeight float64
	SlideIn   float32
}

// HUDConfig contains heads-up display values
type HUDConfig struct {
	BackgroundColor color.RGBA
	HeartColor      color.RGBA
	ManaColor       color.RGBA
	EmptyColor      color.RGBA
	TextColor       color.RGBA
	BannerColor     color.RGBA
	Margin          float64
	PipSize         float64
	PipGap          float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string

	// Scream to continue
	ScreamSeconds   float64
	ScreamThreshold float64
}

// CreditsConfig contains the credits screen values
type CreditsConfig struct {
	Lines       []string
	ScrollSpeed float64
	TextColor   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	HUDHeight int
	TPS       int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var PowerUp PowerUpConfig
var Stages StagesConfig
var Dialogue DialogueConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Credits CreditsConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to game
	Endless     bool   // Start in endless mode when skipping the menu
	LogEvents   bool   // Log stage and run events
	DrawHitbox  bool   // Outline collision rectangles
	BalancePath string // Optional YAML balance override file
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gold         = color.RGBA{R: 230, G: 190, B: 60, A: 255}
)

// EnemyType returns the stat tuple for kind. The kind set is closed, so an
// unknown kind is a programming error.
func EnemyType(kind EnemyKind) EnemyTypeConfig {
	t, ok := Enemy.Types[kind]
	if !ok {
		panic(fmt.Sprintf("config: unknown enemy kind %d", int(kind)))
	}
	return t
}

// Stage returns the configuration for a stage index.
func Stage(index int) (StageConfig, bool) {
	for _, s := range Stages.List {
		if s.Index == index {
			return s, true
		}
	}
	return StageConfig{}, false
}

// FinalStage returns the terminal stage index.
func FinalStage() int {
	final := 0
	for _, s := range Stages.List {
		if s.Terminal && (final == 0 || s.Index < final) {
			final = s.Index
		}
	}
	return final
}

// BossStage returns the stage index that hosts the boss, or 0 if none does.
func BossStage() int {
	for _, s := range Stages.List {
		if s.Boss {
			return s.Index
		}
	}
	return 0
}

func init() {
	C = &Config{
		Width:     1024,
		Height:    700,
		HUDHeight: 80,
		TPS:       60,
	}

	// Player Config
	Player = PlayerConfig{
		Speed: 5,

		Health:         4,
		MaxHealth:      4,
		AttackStrength: 1,
		AttackCooldown: 0.65,
		IFrameDuration: 1,

		InvisibilityDuration: 2,
		InvisibilityCost:     4,
		StartingMana:         4,
		MaxMana:              4,

		AnimationSpeed: 0.15,
		BlinkInterval:  0.25,
		BlinkAlpha:     100.0 / 255.0,
		InvisibleAlpha: 10.0 / 255.0,

		DeathScreenDelay: 1.5,

		CollisionWidth:  40,
		CollisionHeight: 52,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		StopDistance:          35,
		AttackRadius:          50,
		AttackCooldown:        1,
		ContactDamageInterval: 0.5,
		ExplosionFrames:       11,
		MarkerOffset:          20,
		Types: map[EnemyKind]EnemyTypeConfig{
			KindPawn: {
				Name: "Pawn", Health: 1, Speed: 2,
				AttackPoints: 1, StaggerDuration: 0.3, KnockbackDistance: 50, KnockbackSpeed: 5,
				ScoreValue: 100, AnimationSpeed: 0.15,
				CollisionWidth: 36, CollisionHeight: 44,
				TintColor: color.RGBA{R: 110, G: 150, B: 230, A: 255}, SpriteSheetKey: "pawn",
			},
			KindGoblin: {
				Name: "Goblin", Health: 2, Speed: 4,
				AttackPoints: 1, StaggerDuration: 0.5, KnockbackDistance: 100, KnockbackSpeed: 5,
				ScoreValue: 150, AnimationSpeed: 0.15,
				CollisionWidth: 36, CollisionHeight: 40,
				TintColor: color.RGBA{R: 90, G: 190, B: 80, A: 255}, SpriteSheetKey: "goblin",
			},
			KindScout: {
				Name: "Scout", Health: 1, Speed: 7,
				AttackPoints: 1, StaggerDuration: 0.5, KnockbackDistance: 250, KnockbackSpeed: 100,
				ScoreValue: 100, AnimationSpeed: 0.15,
				CollisionWidth: 30, CollisionHeight: 36,
				TintColor: color.RGBA{R: 220, G: 210, B: 90, A: 255}, SpriteSheetKey: "scout",
			},
			KindTNT: {
				Name: "TNT", Health: 3, Speed: 2.5,
				AttackPoints: 2, StaggerDuration: 0.4, KnockbackDistance: 60, KnockbackSpeed: 10,
				ScoreValue: 150, AnimationSpeed: 0.15,
				CollisionWidth: 40, CollisionHeight: 44,
				TintColor: color.RGBA{R: 230, G: 120, B: 60, A: 255}, SpriteSheetKey: "tnt",
			},
			KindArcher: {
				Name: "Archer", Health: 2, Speed: 2,
				AttackPoints: 2, StaggerDuration: 0.5, KnockbackDistance: 50, KnockbackSpeed: 10,
				ScoreValue: 150, AnimationSpeed: 0.15,
				CollisionWidth: 34, CollisionHeight: 46,
				TintColor: color.RGBA{R: 170, G: 110, B: 210, A: 255}, SpriteSheetKey: "archer",
			},
			KindLancier: {
				Name: "Lancier", Health: 3, Speed: 1.5,
				AttackPoints: 1, StaggerDuration: 0.2, KnockbackDistance: 40, KnockbackSpeed: 5,
				ScoreValue: 200, AnimationSpeed: 0.15,
				CollisionWidth: 40, CollisionHeight: 50,
				TintColor: color.RGBA{R: 200, G: 200, B: 210, A: 255}, SpriteSheetKey: "lancier",
			},
			KindBoss: {
				Name: "Warlord", Health: 50, Speed: 4,
				AttackPoints: 2, StaggerDuration: 0.5, KnockbackDistance: 10, KnockbackSpeed: 3,
				ScoreValue: 5000, IsBoss: true, AnimationSpeed: 0.05,
				CollisionWidth: 110, CollisionHeight: 130,
				TintColor: color.RGBA{R: 200, G: 40, B: 40, A: 255}, SpriteSheetKey: "boss",
			},
		},
	}

	// Spawner Config
	Spawner = SpawnerConfig{
		InitialDelay: 3,
		DelayStep:    0.1,
		MinDelay:     0.8,
		EdgeMargin:   20,
	}

	// PowerUp Config
	PowerUp = PowerUpConfig{
		Size:           50,
		AnimationSpeed: 0.1,
		SpawnCooldown:  2,
		DespawnBelow:   0.5,
		BaseDuration:   2,
		DamageBonus:    1,
		HeartHealth:    1,
	}

	// Stage Config
	Stages = StagesConfig{
		List: []StageConfig{
			{Index: 1, Kinds: []EnemyKind{KindPawn, KindGoblin}, Ramp: true,
				Layout: "stages/stage1.tmx", Tint: color.RGBA{R: 58, G: 84, B: 52, A: 255}},
			{Index: 2, Threshold: 1500, Kinds: []EnemyKind{KindPawn, KindGoblin, KindScout, KindLancier}, Ramp: true,
				Layout: "stages/stage2.tmx", Tint: color.RGBA{R: 92, G: 74, B: 48, A: 255}},
			{Index: 3, Threshold: 3500, Kinds: []EnemyKind{KindGoblin, KindScout, KindTNT, KindArcher, KindLancier}, Ramp: true,
				Layout: "stages/stage3.tmx", Tint: color.RGBA{R: 70, G: 66, B: 78, A: 255}},
			{Index: 4, Threshold: 6000, Kinds: []EnemyKind{KindGoblin, KindTNT, KindArcher, KindLancier}, Boss: true,
				Layout: "stages/stage4.tmx", Tint: color.RGBA{R: 60, G: 28, B: 32, A: 255}},
			{Index: 5, Terminal: true},
		},
		EndlessLayout:    "stages/endless.tmx",
		EndlessKinds:     []EnemyKind{KindPawn, KindGoblin, KindScout, KindTNT, KindArcher, KindLancier},
		ClearBonusHealth: 1,
		BannerSeconds:    2.5,
		DoorFadeSeconds:  0.6,
	}

	// Dialogue Config
	Dialogue = DialogueConfig{
		BossIntro: []DialogueLine{
			{Speaker: "Warlord", Text: "So the shadow finally crawls into my hall."},
			{Speaker: "Hero", Text: "Your goblins are scattered. Only you remain."},
			{Speaker: "Warlord", Text: "Then come. My blade has waited long enough."},
		},
		BossOutro: []DialogueLine{
			{Speaker: "Warlord", Text: "Impossible... bested by a shadow..."},
			{Speaker: "Hero", Text: "The valley is free. It is over."},
		},
		BoxColor:  color.RGBA{R: 0, G: 0, B: 0, A: 210},
		TextColor: White,
		BoxHeight: 110,
		SlideIn:   0.25,
	}

	// HUD Config
	HUD = HUDConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 28, A: 255},
		HeartColor:      color.RGBA{R: 220, G: 40, B: 60, A: 255},
		ManaColor:       color.RGBA{R: 70, G: 140, B: 255, A: 255},
		EmptyColor:      color.RGBA{R: 60, G: 60, B: 70, A: 255},
		TextColor:       White,
		BannerColor:     Gold,
		Margin:          16,
		PipSize:         18,
		PipGap:          6,
	}

	// Game Over Config
	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            220,
		MenuStartY:        320,
		MenuItemHeight:    24,
		MenuItemGap:       14,
		MenuOptions:       []string{"Scream to continue", "Retry", "Main menu"},
		ScreamSeconds:     5,
		ScreamThreshold:   130,
	}

	// Credits Config
	Credits = CreditsConfig{
		Lines: []string{
			"SHADOWBLADE",
			"",
			"The valley is free.",
			"",
			"Design & Code",
			"The Shadowblade team",
			"",
			"Built with Ebitengine and donburi",
			"",
			"Thanks for playing!",
		},
		ScrollSpeed: 0.6,
		TextColor:   White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
