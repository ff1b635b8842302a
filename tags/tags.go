package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Boss    = donburi.NewTag().SetName("Boss")
	PowerUp = donburi.NewTag().SetName("PowerUp")
	Door    = donburi.NewTag().SetName("Door")
)

// Resolv tags for overlap checks
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvPowerUp = "PowerUp"
	ResolvDoor    = "door"
)
