package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps animates pickups, despawns them once the invisibility window
// that produced them is nearly over, and applies the one the player touches.
func UpdatePowerUps(ecs *ecs.ECS) {
	session := GetSession(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if session == nil || !ok {
		return
	}
	now := session.Now()
	player := components.Player.Get(playerEntry)
	remaining := player.InvisibleRemaining(now)

	var gone []*donburi.Entry
	tags.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		if remaining < cfg.PowerUp.DespawnBelow {
			gone = append(gone, e)
			return
		}
		components.Animation.Get(e).Update()
	})

	if len(gone) == 0 {
		for _, e := range touchedPowerUps(playerEntry) {
			ApplyPowerUp(ecs, playerEntry, e)
			gone = append(gone, e)
		}
	}

	for _, e := range gone {
		RemoveEntity(ecs, e)
	}
}

// touchedPowerUps narrows candidates with the collision space, then confirms
// each with an exact rectangle test.
func touchedPowerUps(playerEntry *donburi.Entry) []*donburi.Entry {
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Space == nil {
		return nil
	}
	check := playerObj.Check(0, 0, tags.ResolvPowerUp)
	if check == nil {
		return nil
	}
	var touched []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvPowerUp) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if components.Object.Get(entry).Rect().Intersects(playerObj.Rect()) {
			touched = append(touched, entry)
		}
	}
	return touched
}

// ApplyPowerUp grants the pickup's effect once. Timed buffs last the base
// duration plus whatever invisibility time is left.
func ApplyPowerUp(ecs *ecs.ECS, playerEntry, powerUpEntry *donburi.Entry) {
	pu := components.PowerUp.Get(powerUpEntry)
	if pu.Consumed {
		return
	}
	pu.Consumed = true

	now := GetSession(ecs).Now()
	player := components.Player.Get(playerEntry)
	duration := cfg.PowerUp.BaseDuration + player.InvisibleRemaining(now)

	switch pu.Kind {
	case cfg.PowerUpDamageAmp:
		player.Strength += cfg.PowerUp.DamageBonus
		player.StrengthBonus += cfg.PowerUp.DamageBonus
		player.DamageAmpStart = now
		player.DamageAmpLength = duration
	case cfg.PowerUpInvulnerability:
		player.IFrameDuration = duration
		player.IFrameStart = now
		player.Invulnerable = true
	case cfg.PowerUpHeart:
		// Unclamped: the spawner stops offering hearts at full health.
		HealPlayer(playerEntry, cfg.PowerUp.HeartHealth, false)
	}
	PlaySFX(ecs, cfg.SoundPowerUp, 0.3)
}
