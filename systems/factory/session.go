package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/shadowblade/archetypes"
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/clock"
	"github.com/automoto/shadowblade/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionOptions configures a new run.
type SessionOptions struct {
	Clock   clock.Clock
	Seed    int64
	Mode    components.GameMode
	Layouts map[string]*leveldata.StageLayout
}

// CreateSession spawns the singleton that owns run state. Spawning starts
// enabled on stage 1.
func CreateSession(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	components.Session.SetValue(session, components.SessionData{
		Clock:     opts.Clock,
		Rand:      rand.New(rand.NewSource(opts.Seed)),
		Mode:      opts.Mode,
		Stage:     1,
		Spawnable: true,
		Layouts:   opts.Layouts,
	})
	components.Spawner.SetValue(session, components.SpawnerData{
		LastSpawnTime:    opts.Clock.Now(),
		Delay:            cfg.Spawner.InitialDelay,
		LastPowerUpSpawn: math.Inf(-1),
	})
	components.Dialogue.SetValue(session, components.DialogueData{})
	components.Banner.SetValue(session, components.BannerData{})

	return session
}
