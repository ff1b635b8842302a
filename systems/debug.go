package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box and prints scheduler state when
// hitbox drawing is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitbox {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvPowerUp) {
				c = color.RGBA{0, 255, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	session := GetSession(ecs)
	spawner := GetSpawner(ecs)
	if session == nil || spawner == nil {
		return
	}
	zone := playZone(session)
	vector.StrokeRect(screen, float32(zone.X), float32(zone.Y), float32(zone.W), float32(zone.H), 1, cfg.Magenta, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"t=%.1f enemies=%d delay=%.2f spawned=%d spawnable=%v cutscene=%v",
		session.Now(), CountEnemies(ecs), spawner.Delay, spawner.Spawned, session.Spawnable, session.InCutscene,
	), 8, screen.Bounds().Dy()-16)
}
