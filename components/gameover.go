package components

import (
	"github.com/automoto/shadowblade/shared/micmeter"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverScream GameOverOption = iota
	GameOverRetry
	GameOverMenu
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption

	// Scream to continue
	Listening bool
	Pending   <-chan micmeter.Result
	LastPeak  float64
	Message   string
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
