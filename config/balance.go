package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance is an optional override file for tuning numbers without a rebuild.
// Every field is optional; absent fields keep their compiled-in value.
type Balance struct {
	Player  *PlayerBalance          `yaml:"player"`
	Spawner *SpawnerBalance         `yaml:"spawner"`
	Enemies map[string]EnemyBalance `yaml:"enemies"`
}

type PlayerBalance struct {
	Speed                *float64 `yaml:"speed"`
	Health               *int     `yaml:"health"`
	AttackCooldown       *float64 `yaml:"attack_cooldown"`
	IFrameDuration       *float64 `yaml:"iframe_duration"`
	InvisibilityDuration *float64 `yaml:"invisibility_duration"`
	InvisibilityCost     *int     `yaml:"invisibility_cost"`
	MaxMana              *int     `yaml:"max_mana"`
}

type SpawnerBalance struct {
	InitialDelay *float64 `yaml:"initial_delay"`
	DelayStep    *float64 `yaml:"delay_step"`
	MinDelay     *float64 `yaml:"min_delay"`
}

type EnemyBalance struct {
	Health            *int     `yaml:"health"`
	Speed             *float64 `yaml:"speed"`
	AttackPoints      *int     `yaml:"attack_points"`
	StaggerDuration   *float64 `yaml:"stagger_duration"`
	KnockbackDistance *float64 `yaml:"knockback_distance"`
	KnockbackSpeed    *float64 `yaml:"knockback_speed"`
	ScoreValue        *int     `yaml:"score"`
}

// LoadBalance reads and validates a balance file.
func LoadBalance(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	b, err := ParseBalance(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return b, nil
}

// ParseBalance decodes YAML and rejects values the game cannot run with.
func ParseBalance(data []byte) (*Balance, error) {
	var b Balance
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	for name, eb := range b.Enemies {
		if _, err := ParseEnemyKind(name); err != nil {
			return nil, err
		}
		if eb.Health != nil && *eb.Health <= 0 {
			return nil, fmt.Errorf("enemy %s: health must be positive", name)
		}
		if eb.KnockbackSpeed != nil && *eb.KnockbackSpeed <= 0 {
			return nil, fmt.Errorf("enemy %s: knockback_speed must be positive", name)
		}
	}
	if s := b.Spawner; s != nil {
		if s.MinDelay != nil && *s.MinDelay <= 0 {
			return nil, fmt.Errorf("spawner: min_delay must be positive")
		}
		if s.DelayStep != nil && *s.DelayStep < 0 {
			return nil, fmt.Errorf("spawner: delay_step must not be negative")
		}
	}
	if p := b.Player; p != nil {
		if p.Health != nil && *p.Health <= 0 {
			return nil, fmt.Errorf("player: health must be positive")
		}
		if p.MaxMana != nil && *p.MaxMana < 0 {
			return nil, fmt.Errorf("player: max_mana must not be negative")
		}
	}
	return &b, nil
}

// Apply patches the package-level tables. It must run on the game goroutine.
func (b *Balance) Apply() {
	if p := b.Player; p != nil {
		setFloat(&Player.Speed, p.Speed)
		if p.Health != nil {
			Player.Health = *p.Health
			Player.MaxHealth = *p.Health
		}
		setFloat(&Player.AttackCooldown, p.AttackCooldown)
		setFloat(&Player.IFrameDuration, p.IFrameDuration)
		setFloat(&Player.InvisibilityDuration, p.InvisibilityDuration)
		setInt(&Player.InvisibilityCost, p.InvisibilityCost)
		setInt(&Player.MaxMana, p.MaxMana)
	}
	if s := b.Spawner; s != nil {
		setFloat(&Spawner.InitialDelay, s.InitialDelay)
		setFloat(&Spawner.DelayStep, s.DelayStep)
		setFloat(&Spawner.MinDelay, s.MinDelay)
	}
	for name, eb := range b.Enemies {
		kind, err := ParseEnemyKind(name)
		if err != nil {
			continue
		}
		t := Enemy.Types[kind]
		setInt(&t.Health, eb.Health)
		setFloat(&t.Speed, eb.Speed)
		setInt(&t.AttackPoints, eb.AttackPoints)
		setFloat(&t.StaggerDuration, eb.StaggerDuration)
		setFloat(&t.KnockbackDistance, eb.KnockbackDistance)
		setFloat(&t.KnockbackSpeed, eb.KnockbackSpeed)
		setInt(&t.ScoreValue, eb.ScoreValue)
		Enemy.Types[kind] = t
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
