package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnemyKind(t *testing.T) {
	tests := []struct {
		name    string
		want    EnemyKind
		wantErr bool
	}{
		{"pawn", KindPawn, false},
		{"Goblin", KindGoblin, false},
		{" lancier ", KindLancier, false},
		{"boss", KindBoss, false},
		{"dragon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnemyKind(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEnemyKind(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseEnemyKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestEnemyTypeTable(t *testing.T) {
	for kind := KindPawn; kind <= KindBoss; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			et := EnemyType(kind)
			if et.Health <= 0 || et.Speed <= 0 || et.KnockbackSpeed <= 0 {
				t.Errorf("%s has non-positive stats: %+v", kind, et)
			}
			if et.IsBoss != (kind == KindBoss) {
				t.Errorf("%s IsBoss = %v", kind, et.IsBoss)
			}
			if _, ok := CharacterAnimations[et.SpriteSheetKey]; !ok {
				t.Errorf("%s has no animation set %q", kind, et.SpriteSheetKey)
			}
		})
	}
}

func TestEnemyTypeUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown kind")
		}
	}()
	EnemyType(EnemyKind(99))
}

func TestStageTable(t *testing.T) {
	if got := FinalStage(); got != 5 {
		t.Errorf("FinalStage() = %d, want 5", got)
	}
	if got := BossStage(); got != 4 {
		t.Errorf("BossStage() = %d, want 4", got)
	}
	prev := -1
	for _, s := range Stages.List {
		if s.Threshold < prev {
			t.Errorf("stage %d threshold %d below previous %d", s.Index, s.Threshold, prev)
		}
		prev = s.Threshold
		for _, k := range s.Kinds {
			if k == KindBoss {
				t.Errorf("stage %d spawns the boss from the scheduler", s.Index)
			}
		}
	}
	if s, ok := Stage(4); !ok || s.Ramp {
		t.Errorf("boss stage should exist without ramp, got %+v ok=%v", s, ok)
	}
}

func TestNextVolumeStep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0.25},
		{0.5, 0.75},
		{1.0, 0},
		{0.3, 0.5},
	}
	for _, tt := range tests {
		if got := NextVolumeStep(tt.in); got != tt.want {
			t.Errorf("NextVolumeStep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBalanceRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", "enemies:\n  dragon:\n    health: 3\n"},
		{"zero health", "enemies:\n  pawn:\n    health: 0\n"},
		{"zero min delay", "spawner:\n  min_delay: 0\n"},
		{"negative step", "spawner:\n  delay_step: -1\n"},
		{"bad player health", "player:\n  health: -2\n"},
		{"not yaml", "enemies: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBalance([]byte(tt.yaml)); err == nil {
				t.Errorf("expected error for %q", tt.yaml)
			}
		})
	}
}

func TestLoadBalanceApply(t *testing.T) {
	savedPlayer, savedSpawner := Player, Spawner
	savedPawn := Enemy.Types[KindPawn]
	t.Cleanup(func() {
		Player, Spawner = savedPlayer, savedSpawner
		Enemy.Types[KindPawn] = savedPawn
	})

	path := filepath.Join(t.TempDir(), "balance.yaml")
	data := []byte(`
player:
  health: 6
  attack_cooldown: 0.5
spawner:
  min_delay: 0.5
enemies:
  pawn:
    speed: 3.5
    score: 120
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("LoadBalance: %v", err)
	}
	b.Apply()

	if Player.Health != 6 || Player.MaxHealth != 6 {
		t.Errorf("player health = %d/%d, want 6/6", Player.Health, Player.MaxHealth)
	}
	if Player.AttackCooldown != 0.5 {
		t.Errorf("attack cooldown = %v, want 0.5", Player.AttackCooldown)
	}
	if Player.IFrameDuration != savedPlayer.IFrameDuration {
		t.Errorf("iframe duration changed without override")
	}
	if Spawner.MinDelay != 0.5 || Spawner.InitialDelay != savedSpawner.InitialDelay {
		t.Errorf("spawner = %+v", Spawner)
	}
	pawn := Enemy.Types[KindPawn]
	if pawn.Speed != 3.5 || pawn.ScoreValue != 120 || pawn.Health != savedPawn.Health {
		t.Errorf("pawn = %+v", pawn)
	}
}

func TestLoadBalanceMissingFile(t *testing.T) {
	if _, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
