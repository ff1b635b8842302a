package systems

import (
	"sync"

	"github.com/automoto/shadowblade/assets"
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXBank      *assets.SFXBank
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioEnabled       bool
	audioInitOnce      sync.Once
)

// EnableAudio opens the audio device on first use. Until it is called, cues
// are queued and dropped, which keeps headless runs silent.
func EnableAudio() {
	audioEnabled = true
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	if !audioEnabled {
		return
	}
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFXBank = assets.NewSFXBank(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every cue at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	if globalSFXBank != nil {
		globalSFXBank.Preload()
	}
}

// UpdateAudio plays the cues queued during this tick.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, q := range audioData.PendingSFX {
		playSFX(q)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(q components.QueuedSound) {
	if globalAudioContext == nil || globalMuted || globalSFXVolume <= 0 {
		return
	}
	pcm, err := globalSFXBank.PCM(q.ID)
	if err != nil {
		return
	}

	volume := globalSFXVolume * q.Volume
	if mult, ok := cfg.Sound.VolumeMultipliers[q.ID]; ok {
		volume *= mult
	}
	if volume > 1 {
		volume = 1
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect at the given volume (0.0 - 1.0)
func PlaySFX(e *ecs.ECS, sound cfg.SoundID, volume float64) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.QueuedSound{ID: sound, Volume: volume})
}

// PlayGroup queues a random cue from group. A group played less than
// minInterval seconds ago on the session clock stays quiet.
func PlayGroup(e *ecs.ECS, group cfg.SoundGroupID, volume, minInterval float64) {
	ids := cfg.Sound.Groups[group]
	if len(ids) == 0 {
		return
	}
	audioData := GetOrCreateAudio(e)

	pick := 0
	if session := GetSession(e); session != nil {
		now := session.Now()
		if last, ok := audioData.LastGroupPlay[group]; ok && now-last < minInterval {
			return
		}
		audioData.LastGroupPlay[group] = now
		if session.Rand != nil {
			pick = session.Rand.Intn(len(ids))
		}
	}
	PlaySFX(e, ids[pick], volume)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if e != nil {
		GetOrCreateAudio(e).SFXVolume = volume
	}
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

func SetMuted(muted bool) {
	globalMuted = muted
}

func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		initGlobalAudio()
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:       globalAudioContext,
			SFXVolume:     globalSFXVolume,
			Muted:         globalMuted,
			PendingSFX:    make([]components.QueuedSound, 0, 8),
			LastGroupPlay: make(map[cfg.SoundGroupID]float64),
		})
	}
	return components.Audio.Get(entry)
}
