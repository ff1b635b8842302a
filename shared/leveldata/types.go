// Package leveldata parses the stage layout files authored in Tiled.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

import "github.com/automoto/shadowblade/shared/gamemath"

// StageLayout holds the regions of one arena stage.
type StageLayout struct {
	Name        string
	MapWidth    int
	MapHeight   int
	PlayZone    gamemath.Rect // player movement boundary, excludes the HUD strip
	Door        gamemath.Rect // exit region, only active once the stage is cleared
	PlayerSpawn Point
	BossSpawn   *Point // nil when the stage has no boss
}

// Point is a spawn location.
type Point struct {
	X, Y float64
}
