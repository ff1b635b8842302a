package systems

import (
	"testing"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
)

func TestTryInvisibilityCostsMana(t *testing.T) {
	tests := []struct {
		name      string
		mana      int
		want      bool
		wantMana  int
		invisible bool
	}{
		{"full mana", 4, true, 0, true},
		{"one short", 3, false, 3, false},
		{"empty", 0, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			playerEntry := addPlayer(e)
			player := components.Player.Get(playerEntry)
			player.Mana = tt.mana

			if got := TryInvisibility(e, playerEntry); got != tt.want {
				t.Errorf("TryInvisibility() = %v, want %v", got, tt.want)
			}
			if player.Mana != tt.wantMana {
				t.Errorf("mana = %d, want %d", player.Mana, tt.wantMana)
			}
			if player.Invisible != tt.invisible {
				t.Errorf("invisible = %v, want %v", player.Invisible, tt.invisible)
			}
		})
	}
}

func TestInvisibilityExpires(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)

	if !TryInvisibility(e, playerEntry) {
		t.Fatal("invisibility refused")
	}
	if TryInvisibility(e, playerEntry) {
		t.Error("invisibility re-entered while active")
	}

	clk.Advance(1.9)
	UpdatePlayer(e)
	if !player.Invisible || player.State != cfg.StateInvisible {
		t.Fatalf("invisibility ended early: invisible=%v state=%v", player.Invisible, player.State)
	}

	clk.Advance(0.11)
	UpdatePlayer(e)
	if player.Invisible {
		t.Error("still invisible after the duration")
	}
	if player.State != cfg.StateIdle {
		t.Errorf("state = %v, want idle", player.State)
	}
}

func TestInvisiblePlayerIsIgnored(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	enemyEntry := addEnemyNear(e, playerEntry, cfg.KindGoblin, 10)
	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)
	startX, startY := obj.X, obj.Y

	if !TryInvisibility(e, playerEntry) {
		t.Fatal("invisibility refused")
	}

	for i := 0; i < 100; i++ {
		clk.Advance(tick)
		SetScriptedInput(e, 0, 0)
		UpdatePlayer(e)
		UpdateEnemies(e)

		if obj.X != startX || obj.Y != startY {
			t.Fatalf("tick %d: enemy moved to (%v, %v)", i, obj.X, obj.Y)
		}
		if enemy.State != cfg.StateIdle || !enemy.Confused {
			t.Fatalf("tick %d: state=%v confused=%v", i, enemy.State, enemy.Confused)
		}
	}

	if got := components.Health.Get(playerEntry).Current; got != cfg.Player.Health {
		t.Errorf("health = %d, want %d", got, cfg.Player.Health)
	}
}

func TestTryAttackCooldown(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)

	if !TryAttack(e, playerEntry) {
		t.Fatal("first attack refused")
	}
	if TryAttack(e, playerEntry) {
		t.Error("attack accepted while attacking")
	}

	player.Attacking = false
	clk.Advance(0.5)
	if TryAttack(e, playerEntry) {
		t.Error("attack accepted during cooldown")
	}

	clk.Advance(0.2)
	if !TryAttack(e, playerEntry) {
		t.Error("attack refused after cooldown")
	}
}

func TestTryAttackRefusedWhileInvisible(t *testing.T) {
	e, _ := newTestWorld(t)
	playerEntry := addPlayer(e)
	TryInvisibility(e, playerEntry)

	if TryAttack(e, playerEntry) {
		t.Error("attack accepted while invisible")
	}
}

func TestAttackEndsWithAnimation(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)

	SetScriptedInput(e, 0, 0, cfg.ActionAttack)
	UpdatePlayer(e)
	if !player.Attacking || player.State != cfg.StateAttack {
		t.Fatalf("attacking=%v state=%v", player.Attacking, player.State)
	}

	// Four frames at 0.15 per tick finish well within 60 ticks.
	for i := 0; i < 60 && player.Attacking; i++ {
		clk.Advance(tick)
		SetScriptedInput(e, 0, 0)
		UpdatePlayer(e)
	}
	if player.Attacking {
		t.Fatal("attack never finished")
	}
	if player.State != cfg.StateIdle {
		t.Errorf("state = %v, want idle", player.State)
	}
}

func TestAttackingPlayerStaggersEnemy(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	enemyEntry := addEnemyNear(e, playerEntry, cfg.KindGoblin, 10)
	enemy := components.Enemy.Get(enemyEntry)

	SetScriptedInput(e, 0, 0, cfg.ActionAttack)
	UpdatePlayer(e)
	UpdateEnemies(e)

	if enemy.State != cfg.StateStaggered {
		t.Fatalf("state = %v, want staggered", enemy.State)
	}
	if got := components.Health.Get(enemyEntry).Current; got != 1 {
		t.Errorf("goblin health = %d, want 1", got)
	}
	if got := components.Health.Get(playerEntry).Current; got != cfg.Player.Health {
		t.Errorf("player health = %d, want %d", got, cfg.Player.Health)
	}

	clk.Advance(tick)
	SetScriptedInput(e, 0, 0)
	UpdatePlayer(e)
	UpdateEnemies(e)
	if got := components.Health.Get(enemyEntry).Current; got != 1 {
		t.Errorf("staggered goblin hit again: health = %d", got)
	}
}

func TestPlayerOpacity(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(p *components.PlayerData)
		now    float64
		expect float64
	}{
		{"normal", func(p *components.PlayerData) {}, 100, 1},
		{"invisible", func(p *components.PlayerData) {
			p.Invisible = true
			p.InvisibleStart = 100
		}, 100.5, cfg.Player.InvisibleAlpha},
		{"iframe blink on", func(p *components.PlayerData) {
			p.Invulnerable = true
			p.IFrameStart = 100
		}, 100.1, cfg.Player.BlinkAlpha},
		{"iframe blink off", func(p *components.PlayerData) {
			p.Invulnerable = true
			p.IFrameStart = 100
		}, 100.3, 1},
		{"iframe expired", func(p *components.PlayerData) {
			p.Invulnerable = true
			p.IFrameStart = 100
		}, 102, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &components.PlayerData{IFrameDuration: cfg.Player.IFrameDuration}
			tt.setup(p)
			if got := playerOpacity(p, tt.now); got != tt.expect {
				t.Errorf("opacity = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestIFrameDurationResetsAfterExtension(t *testing.T) {
	e, clk := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)
	player.Invulnerable = true
	player.IFrameStart = 100
	player.IFrameDuration = 3.5

	clk.Advance(3.5)
	UpdatePlayer(e)

	if player.Invulnerable {
		t.Error("still invulnerable")
	}
	if player.IFrameDuration != cfg.Player.IFrameDuration {
		t.Errorf("iframe duration = %v, want %v", player.IFrameDuration, cfg.Player.IFrameDuration)
	}
}

func TestMovementClampedToPlayZone(t *testing.T) {
	e, _ := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)
	zone := DefaultLayout().PlayZone

	for i := 0; i < 400; i++ {
		SetScriptedInput(e, -1, -1)
		UpdatePlayer(e)
	}

	obj := components.Object.Get(playerEntry)
	if obj.X != zone.X || obj.Y != zone.Y {
		t.Errorf("position = (%v, %v), want (%v, %v)", obj.X, obj.Y, zone.X, zone.Y)
	}
	if player.Facing != cfg.FacingLeft {
		t.Errorf("facing = %v, want left", player.Facing)
	}
	if player.State != cfg.StateWalk {
		t.Errorf("state = %v, want walk", player.State)
	}
}

func TestRevivePlayer(t *testing.T) {
	e, _ := newTestWorld(t)
	playerEntry := addPlayer(e)
	player := components.Player.Get(playerEntry)
	player.Score = 700
	player.Mana = 2
	addEnemyFar(e, cfg.KindGoblin)

	components.Object.Get(playerEntry).MoveTo(100, 200)
	DamagePlayer(e, playerEntry, 10)
	GetSession(e).Spawnable = false

	RevivePlayer(e)

	if got := components.Health.Get(playerEntry).Current; got != cfg.Player.MaxHealth {
		t.Errorf("health = %d, want %d", got, cfg.Player.MaxHealth)
	}
	if player.State != cfg.StateIdle {
		t.Errorf("state = %v, want idle", player.State)
	}
	if player.Score != 700 || player.Mana != 2 {
		t.Errorf("score=%d mana=%d, want 700 and 2", player.Score, player.Mana)
	}
	if n := CountEnemies(e); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
	if !GetSession(e).Spawnable {
		t.Error("spawning not resumed")
	}
	cx, cy := components.Object.Get(playerEntry).Center()
	spawn := DefaultLayout().PlayerSpawn
	if cx != spawn.X || cy != spawn.Y {
		t.Errorf("centre = (%v, %v), want (%v, %v)", cx, cy, spawn.X, spawn.Y)
	}
}
