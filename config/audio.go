package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwordSwing1
	SoundSwordSwing2
	SoundSwordSwing3
	SoundPlayerHurt1
	SoundPlayerHurt2
	SoundPlayerDeath
	SoundEnemyHit
	SoundExplosion
	SoundBossDeath
	// Movement sounds
	SoundFootstep1
	SoundFootstep2
	SoundFootstep3
	SoundVanish
	// Progression sounds
	SoundPowerUp
	SoundDoorOpen
	SoundStageEnter
	SoundDialogue
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// SoundGroupID names a set of interchangeable sounds picked at random.
type SoundGroupID int

const (
	GroupSwordSwings SoundGroupID = iota
	GroupPlayerHurts
	GroupFootstepStone
	GroupPlayerDeath
)

// Waveform selects the oscillator used to synthesize a cue.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ToneSpec describes a synthesized sound effect.
type ToneSpec struct {
	Wave     Waveform
	Freq     float64 // start frequency in Hz
	FreqEnd  float64 // end frequency for sweeps, 0 keeps Freq
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones             map[SoundID]ToneSpec
	Groups            map[SoundGroupID][]SoundID
	VolumeMultipliers map[SoundID]float64
	FootstepInterval  float64 // seconds between footstep cues
	FootstepVolume    float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundSwordSwing1:  {Wave: WaveNoise, Duration: 110 * ms, Attack: 5 * ms, Release: 90 * ms},
			SoundSwordSwing2:  {Wave: WaveNoise, Duration: 140 * ms, Attack: 10 * ms, Release: 110 * ms},
			SoundSwordSwing3:  {Wave: WaveSaw, Freq: 900, FreqEnd: 300, Duration: 120 * ms, Attack: 5 * ms, Release: 80 * ms},
			SoundPlayerHurt1:  {Wave: WaveSquare, Freq: 220, FreqEnd: 140, Duration: 180 * ms, Attack: 5 * ms, Release: 120 * ms},
			SoundPlayerHurt2:  {Wave: WaveSquare, Freq: 196, FreqEnd: 110, Duration: 200 * ms, Attack: 5 * ms, Release: 140 * ms},
			SoundPlayerDeath:  {Wave: WaveSaw, Freq: 330, FreqEnd: 55, Duration: 900 * ms, Attack: 10 * ms, Release: 500 * ms},
			SoundEnemyHit:     {Wave: WaveSquare, Freq: 160, Duration: 70 * ms, Attack: 2 * ms, Release: 50 * ms},
			SoundExplosion:    {Wave: WaveNoise, Duration: 350 * ms, Attack: 5 * ms, Release: 300 * ms},
			SoundBossDeath:    {Wave: WaveNoise, Duration: 1200 * ms, Attack: 20 * ms, Release: 900 * ms},
			SoundFootstep1:    {Wave: WaveNoise, Duration: 40 * ms, Attack: 2 * ms, Release: 30 * ms},
			SoundFootstep2:    {Wave: WaveNoise, Duration: 45 * ms, Attack: 2 * ms, Release: 35 * ms},
			SoundFootstep3:    {Wave: WaveSine, Freq: 90, Duration: 50 * ms, Attack: 2 * ms, Release: 40 * ms},
			SoundVanish:       {Wave: WaveSine, Freq: 880, FreqEnd: 220, Duration: 300 * ms, Attack: 20 * ms, Release: 200 * ms},
			SoundPowerUp:      {Wave: WaveSine, Freq: 523, FreqEnd: 1046, Duration: 250 * ms, Attack: 10 * ms, Release: 120 * ms},
			SoundDoorOpen:     {Wave: WaveSaw, Freq: 110, FreqEnd: 165, Duration: 600 * ms, Attack: 50 * ms, Release: 300 * ms},
			SoundStageEnter:   {Wave: WaveSine, Freq: 392, FreqEnd: 784, Duration: 400 * ms, Attack: 20 * ms, Release: 200 * ms},
			SoundDialogue:     {Wave: WaveSquare, Freq: 660, Duration: 40 * ms, Attack: 2 * ms, Release: 30 * ms},
			SoundMenuNavigate: {Wave: WaveSine, Freq: 740, Duration: 50 * ms, Attack: 2 * ms, Release: 40 * ms},
			SoundMenuSelect:   {Wave: WaveSine, Freq: 988, Duration: 90 * ms, Attack: 2 * ms, Release: 70 * ms},
		},
		Groups: map[SoundGroupID][]SoundID{
			GroupSwordSwings:   {SoundSwordSwing1, SoundSwordSwing2, SoundSwordSwing3},
			GroupPlayerHurts:   {SoundPlayerHurt1, SoundPlayerHurt2},
			GroupFootstepStone: {SoundFootstep1, SoundFootstep2, SoundFootstep3},
			GroupPlayerDeath:   {SoundPlayerDeath},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 0.7,
			SoundBossDeath: 1.2,
			SoundFootstep1: 0.5,
			SoundFootstep2: 0.5,
			SoundFootstep3: 0.5,
		},
		FootstepInterval: 0.4,
		FootstepVolume:   0.2,
	}
}
