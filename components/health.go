package components

import "github.com/yohamta/donburi"

// HealthData is shared by the player and enemies. Only the damage and heal
// helpers in systems mutate it.
type HealthData struct {
	Current int
	Max     int
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
