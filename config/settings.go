package config

// SettingsMenuConfig contains options screen configuration
type SettingsMenuConfig struct {
	VolumeSteps        []float64
	DefaultVolumeIndex int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 3,
	}
}

// NextVolumeStep cycles to the volume step after current, wrapping to mute.
func NextVolumeStep(current float64) float64 {
	steps := SettingsMenu.VolumeSteps
	for i, v := range steps {
		if v > current+1e-9 {
			return steps[i]
		}
	}
	return steps[0]
}
