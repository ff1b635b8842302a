package systems

import (
	"log"
	"path"
	"strings"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/automoto/shadowblade/shared/leveldata"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the run state, or nil outside a game world.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetSpawner returns the wave scheduler state stored next to the session.
func GetSpawner(e *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Spawner.Get(entry)
}

func getDialogue(e *ecs.ECS) *components.DialogueData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Dialogue.Get(entry)
}

func getBanner(e *ecs.ECS) *components.BannerData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Banner.Get(entry)
}

// RemoveEntity deletes entry from the world and the collision space.
// Removing an entry twice is a no-op.
func RemoveEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	e.World.Remove(entry.Entity())
}

// RemoveAllEnemies clears every enemy, the boss included.
func RemoveAllEnemies(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		RemoveEntity(e, entry)
	}
}

// CountEnemies returns the number of live and dying enemies.
func CountEnemies(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// DefaultLayout is the arena used when no stage file is loaded: the screen
// minus the HUD strip and side margins.
func DefaultLayout() *leveldata.StageLayout {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	hud := float64(cfg.C.HUDHeight)
	zone := gamemath.Rect{X: 40, Y: hud + 20, W: w - 80, H: h - hud - 40}
	return &leveldata.StageLayout{
		Name:        "Arena",
		MapWidth:    cfg.C.Width,
		MapHeight:   cfg.C.Height,
		PlayZone:    zone,
		Door:        gamemath.Rect{X: zone.X + zone.W/2 - 40, Y: zone.Y, W: 80, H: 48},
		PlayerSpawn: leveldata.Point{X: zone.X + zone.W/2, Y: zone.Y + zone.H/2},
	}
}

// layoutFor resolves a stage table path such as "stages/stage2.tmx" to a
// loaded layout, falling back to DefaultLayout.
func layoutFor(s *components.SessionData, stagePath string) *leveldata.StageLayout {
	if stagePath != "" && s.Layouts != nil {
		stem := strings.TrimSuffix(path.Base(stagePath), ".tmx")
		if l, ok := s.Layouts[stem]; ok {
			return l
		}
	}
	return DefaultLayout()
}

// playZone returns the current movement boundary.
func playZone(s *components.SessionData) gamemath.Rect {
	if s.Layout == nil {
		s.Layout = DefaultLayout()
	}
	return s.Layout.PlayZone
}

func logEvent(format string, args ...any) {
	if cfg.Debug.LogEvents {
		log.Printf(format, args...)
	}
}

// StageLayout returns the layout for the session's current stage, or the
// endless arena in endless mode.
func StageLayout(s *components.SessionData) *leveldata.StageLayout {
	if s.Mode == components.ModeEndless {
		return layoutFor(s, cfg.Stages.EndlessLayout)
	}
	stage, _ := cfg.Stage(s.Stage)
	return layoutFor(s, stage.Layout)
}
