package components

import (
	"math/rand"

	"github.com/automoto/shadowblade/shared/clock"
	"github.com/automoto/shadowblade/shared/leveldata"
	"github.com/yohamta/donburi"
)

// GameMode selects between the staged story run and endless play.
type GameMode int

const (
	ModeStory GameMode = iota
	ModeEndless
)

func (m GameMode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "story"
}

// SessionData owns the per-run flags every system reads. It lives on a
// singleton entry together with SpawnerData.
type SessionData struct {
	Clock clock.Clock
	Rand  *rand.Rand
	Mode  GameMode

	Stage        int
	StageCleared bool
	DoorOpen     bool
	Spawnable    bool
	InCutscene   bool
	BossDefeated bool

	RunOver bool
	Victory bool

	// Stage layouts keyed by their path in the stage table
	Layouts map[string]*leveldata.StageLayout
	Layout  *leveldata.StageLayout
}

func (s *SessionData) Now() float64 {
	return s.Clock.Now()
}

var Session = donburi.NewComponentType[SessionData]()

// SpawnerData is the wave scheduler state.
type SpawnerData struct {
	LastSpawnTime    float64
	Delay            float64
	LastPowerUpSpawn float64
	Spawned          int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
