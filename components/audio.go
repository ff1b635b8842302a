package components

import (
	cfg "github.com/automoto/shadowblade/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// QueuedSound is a sound effect waiting for the audio system.
type QueuedSound struct {
	ID     cfg.SoundID
	Volume float64
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []QueuedSound

	// Session time of the last cue played from each group
	LastGroupPlay map[cfg.SoundGroupID]float64
}

var Audio = donburi.NewComponentType[AudioData]()
