package systems

import (
	"testing"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
)

func TestDamageEnemyScoresOnce(t *testing.T) {
	kinds := []cfg.EnemyKind{cfg.KindPawn, cfg.KindGoblin, cfg.KindScout, cfg.KindTNT, cfg.KindArcher, cfg.KindLancier, cfg.KindBoss}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e, _ := newTestWorld(t)
			playerEntry := addPlayer(e)
			player := components.Player.Get(playerEntry)
			player.Mana = 0

			enemyEntry := addEnemyFar(e, kind)
			health := cfg.EnemyType(kind).Health

			DamageEnemy(e, enemyEntry, health)
			DamageEnemy(e, enemyEntry, health)

			if !components.Enemy.Get(enemyEntry).IsDead {
				t.Fatal("enemy should be dead")
			}
			if want := cfg.EnemyType(kind).ScoreValue; player.Score != want {
				t.Errorf("score = %d, want %d", player.Score, want)
			}
			if player.Mana != 1 {
				t.Errorf("mana = %d, want 1", player.Mana)
			}
		})
	}
}

func TestStaggerRestoresDefaultSpeed(t *testing.T) {
	e, clk := newTestWorld(t)
	addPlayer(e)
	enemyEntry := addEnemyFar(e, cfg.KindGoblin)
	enemy := components.Enemy.Get(enemyEntry)
	anim := components.Animation.Get(enemyEntry)
	goblin := cfg.EnemyType(cfg.KindGoblin)

	// Two hits in a row must not stack the restore.
	for i := 0; i < 2; i++ {
		DamageEnemy(e, enemyEntry, 0)
		if enemy.State != cfg.StateStaggered || enemy.Speed != 0 || anim.Speed != 0 {
			t.Fatalf("after hit: state=%v speed=%v animSpeed=%v", enemy.State, enemy.Speed, anim.Speed)
		}
		UpdateEnemies(e)
		if enemy.Speed != 0 {
			t.Fatalf("speed restored before stagger ended: %v", enemy.Speed)
		}
	}

	clk.Advance(goblin.StaggerDuration)
	UpdateEnemies(e)

	if enemy.State == cfg.StateStaggered {
		t.Fatal("still staggered after the stagger duration")
	}
	if enemy.Speed != goblin.Speed {
		t.Errorf("speed = %v, want %v", enemy.Speed, goblin.Speed)
	}
	if anim.Speed != goblin.AnimationSpeed {
		t.Errorf("animation speed = %v, want %v", anim.Speed, goblin.AnimationSpeed)
	}
}

func TestStaggerKnocksBackAwayFromPlayer(t *testing.T) {
	e, _ := newTestWorld(t)
	playerEntry := addPlayer(e)
	enemyEntry := addEnemyNear(e, playerEntry, cfg.KindPawn, 100)
	startX := components.Object.Get(enemyEntry).X

	DamageEnemy(e, enemyEntry, 0)
	UpdateEnemies(e)

	if x := components.Object.Get(enemyEntry).X; x <= startX {
		t.Errorf("enemy x = %v, want greater than %v", x, startX)
	}
}

func TestBossIsNotStaggered(t *testing.T) {
	e, _ := newTestWorld(t)
	addPlayer(e)
	bossEntry := addEnemyFar(e, cfg.KindBoss)
	boss := components.Enemy.Get(bossEntry)

	DamageEnemy(e, bossEntry, 1)

	if boss.State == cfg.StateStaggered {
		t.Error("boss entered stagger")
	}
	if boss.Speed != cfg.EnemyType(cfg.KindBoss).Speed {
		t.Errorf("boss speed = %v", boss.Speed)
	}
	if got := components.Health.Get(bossEntry).Current; got != cfg.EnemyType(cfg.KindBoss).Health-1 {
		t.Errorf("boss health = %d", got)
	}
}

func TestDamagePlayerRespectsIFrames(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	health := components.Health.Get(playerEntry)

	if !DamagePlayer(e, playerEntry, 1) {
		t.Fatal("first hit refused")
	}
	if health.Current != 3 {
		t.Fatalf("health = %d, want 3", health.Current)
	}

	clk.Advance(0.5)
	if DamagePlayer(e, playerEntry, 1) {
		t.Error("hit accepted during iframes")
	}
	if health.Current != 3 {
		t.Errorf("health changed during iframes: %d", health.Current)
	}

	clk.Advance(0.5)
	if !DamagePlayer(e, playerEntry, 1) {
		t.Error("hit refused after iframes expired")
	}
	if health.Current != 2 {
		t.Errorf("health = %d, want 2", health.Current)
	}
}

func TestDamagePlayerDeathIsTerminal(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	health.Current = 1

	DamagePlayer(e, playerEntry, 3)
	if health.Current != 0 || player.State != cfg.StateDead {
		t.Fatalf("health=%d state=%v, want 0 dead", health.Current, player.State)
	}
	deadAt := player.DeadAt

	clk.Advance(5)
	if DamagePlayer(e, playerEntry, 1) {
		t.Error("dead player took damage")
	}
	UpdatePlayer(e)
	if health.Current != 0 || player.State != cfg.StateDead || player.DeadAt != deadAt {
		t.Errorf("dead state changed: health=%d state=%v deadAt=%v", health.Current, player.State, player.DeadAt)
	}
	if TryAttack(e, playerEntry) || TryInvisibility(e, playerEntry) {
		t.Error("dead player acted")
	}
}

func TestDoubleStrikeKillsOnce(t *testing.T) {
	e, _ := newTestWorld(t)
	playerEntry := addPlayer(e)
	components.Health.Get(playerEntry).Current = 1

	addEnemyNear(e, playerEntry, cfg.KindPawn, 20)
	addEnemyNear(e, playerEntry, cfg.KindPawn, -20)

	UpdateEnemies(e)

	player := components.Player.Get(playerEntry)
	if got := components.Health.Get(playerEntry).Current; got != 0 {
		t.Errorf("health = %d, want 0", got)
	}
	if player.State != cfg.StateDead {
		t.Errorf("state = %v, want dead", player.State)
	}
}

func TestHealPlayer(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		amount int
		clamp  bool
		want   int
	}{
		{"clamped below max", 2, 1, true, 3},
		{"clamped at max", 4, 1, true, 4},
		{"unclamped above max", 4, 1, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			playerEntry := addPlayer(e)
			components.Health.Get(playerEntry).Current = tt.start
			HealPlayer(playerEntry, tt.amount, tt.clamp)
			if got := components.Health.Get(playerEntry).Current; got != tt.want {
				t.Errorf("health = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnemyKilledManaCap(t *testing.T) {
	e, _ := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)
	player.Mana = cfg.Player.MaxMana

	EnemyKilled(playerEntry, 100)

	if player.Mana != cfg.Player.MaxMana {
		t.Errorf("mana = %d, want cap %d", player.Mana, cfg.Player.MaxMana)
	}
	if player.Score != 100 {
		t.Errorf("score = %d, want 100", player.Score)
	}
}
