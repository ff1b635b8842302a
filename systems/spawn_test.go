package systems

import (
	"math"
	"testing"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/tags"
	"github.com/yohamta/donburi"
)

func TestSpawnDelayRampsToFloor(t *testing.T) {
	e, clk := newTestWorld(t)
	spawner := GetSpawner(e)

	for i := 0; i < 50; i++ {
		clk.Advance(spawner.Delay + 0.001)
		UpdateSpawner(e)
	}

	if spawner.Spawned != 50 {
		t.Errorf("spawned = %d, want 50", spawner.Spawned)
	}
	if spawner.Delay != cfg.Spawner.MinDelay {
		t.Errorf("delay = %v, want %v", spawner.Delay, cfg.Spawner.MinDelay)
	}
	if n := CountEnemies(e); n != 50 {
		t.Errorf("enemies = %d, want 50", n)
	}
}

func TestSpawnWaitsForDelay(t *testing.T) {
	e, clk := newTestWorld(t)
	spawner := GetSpawner(e)

	clk.Advance(cfg.Spawner.InitialDelay - 0.1)
	UpdateSpawner(e)
	if spawner.Spawned != 0 {
		t.Fatalf("spawned early")
	}

	clk.Advance(0.2)
	UpdateSpawner(e)
	if spawner.Spawned != 1 {
		t.Errorf("spawned = %d, want 1", spawner.Spawned)
	}
	if math.Abs(spawner.Delay-(cfg.Spawner.InitialDelay-cfg.Spawner.DelayStep)) > 1e-9 {
		t.Errorf("delay = %v", spawner.Delay)
	}
}

func TestSpawnerIdleWhenNotSpawnable(t *testing.T) {
	e, clk := newTestWorld(t)
	GetSession(e).Spawnable = false

	clk.Advance(10)
	UpdateSpawner(e)

	if n := CountEnemies(e); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
}

func TestSpawnedKindsMatchStage(t *testing.T) {
	tests := []struct {
		name  string
		mode  components.GameMode
		stage int
	}{
		{"stage 1", components.ModeStory, 1},
		{"stage 2", components.ModeStory, 2},
		{"stage 3", components.ModeStory, 3},
		{"endless", components.ModeEndless, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, clk := newTestWorldMode(t, tt.mode)
			GetSession(e).Stage = tt.stage
			allowed := map[cfg.EnemyKind]bool{}
			for _, k := range SpawnableKinds(GetSession(e)) {
				allowed[k] = true
			}
			if len(allowed) == 0 {
				t.Fatal("no spawnable kinds")
			}

			spawner := GetSpawner(e)
			for i := 0; i < 40; i++ {
				clk.Advance(spawner.Delay + 0.001)
				UpdateSpawner(e)
			}

			tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
				kind := components.Enemy.Get(entry).Kind
				if !allowed[kind] {
					t.Errorf("spawned %v on %s", kind, tt.name)
				}
			})
		})
	}
}

func TestSpawnPositionOutsidePlayZone(t *testing.T) {
	e, _ := newTestWorld(t)
	session := GetSession(e)
	zone := playZone(session)

	for _, side := range []SpawnSide{SideTop, SideBottom, SideLeft, SideRight} {
		for i := 0; i < 20; i++ {
			x, y := spawnPosition(session, cfg.KindGoblin, side)
			et := cfg.EnemyType(cfg.KindGoblin)
			inside := x+et.CollisionWidth > zone.X && x < zone.Right() &&
				y+et.CollisionHeight > zone.Y && y < zone.Bottom()
			if inside {
				t.Fatalf("side %d: spawn (%v, %v) overlaps the play zone", side, x, y)
			}
		}
	}
}

func TestBossStageRampStaysFlat(t *testing.T) {
	e, clk := newTestWorld(t)
	session := GetSession(e)
	session.Stage = cfg.BossStage()
	spawner := GetSpawner(e)

	for i := 0; i < 5; i++ {
		clk.Advance(spawner.Delay + 0.001)
		UpdateSpawner(e)
	}

	if spawner.Delay != cfg.Spawner.InitialDelay {
		t.Errorf("delay = %v, want %v", spawner.Delay, cfg.Spawner.InitialDelay)
	}
}

func TestPowerUpSpawnsOnlyWhileInvisible(t *testing.T) {
	e, clk := newTestWorld(t)
	GetSession(e).Spawnable = false
	playerEntry := addPlayer(e)

	UpdateSpawner(e)
	if _, ok := tags.PowerUp.First(e.World); ok {
		t.Fatal("power-up spawned while visible")
	}

	TryInvisibility(e, playerEntry)
	UpdateSpawner(e)
	if _, ok := tags.PowerUp.First(e.World); !ok {
		t.Fatal("no power-up while invisible")
	}

	// One at a time.
	clk.Advance(cfg.PowerUp.SpawnCooldown)
	UpdateSpawner(e)
	n := 0
	tags.PowerUp.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Errorf("power-ups = %d, want 1", n)
	}
}

func TestNoHeartsAtFullHealth(t *testing.T) {
	e, clk := newTestWorld(t)
	GetSession(e).Spawnable = false
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)
	player.Invisible = true
	player.InvisibleStart = clk.Now()

	for i := 0; i < 30; i++ {
		UpdateSpawner(e)
		entry, ok := tags.PowerUp.First(e.World)
		if !ok {
			t.Fatalf("round %d: no power-up", i)
		}
		if kind := components.PowerUp.Get(entry).Kind; kind == cfg.PowerUpHeart {
			t.Fatalf("round %d: heart offered at full health", i)
		}
		RemoveEntity(e, entry)
		clk.Advance(cfg.PowerUp.SpawnCooldown)
	}
}
