// Package config provides YAML-based game configuration loading and
// difficulty presets for the bomber game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains every tunable of a session.
type GameConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Monster MonsterConfig `yaml:"monster"`
	Bomb    BombConfig    `yaml:"bomb"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives           int           `yaml:"lives"`
	MoveCooldown    time.Duration `yaml:"move_cooldown"`   // Minimum time between two moves
	Invulnerability time.Duration `yaml:"invulnerability"` // Grace period after a hit
	Bombs           int           `yaml:"bombs"`           // Bombs on the grid at once
	Range           int           `yaml:"range"`           // Blast reach in tiles
}

// MonsterConfig defines monster parameters.
type MonsterConfig struct {
	Interval time.Duration `yaml:"interval"` // Time between two autonomous moves
	Policy   string        `yaml:"policy"`   // "random", "chase" or "still"
}

// BombConfig defines bomb timing.
type BombConfig struct {
	Fuse             time.Duration `yaml:"fuse"`              // Placement to detonation
	MaterializeAfter time.Duration `yaml:"materialize_after"` // Placement to first sprite
	BlastDuration    time.Duration `yaml:"blast_duration"`    // Fire lifetime
}

// Monster policy names.
const (
	PolicyRandom = "random"
	PolicyChase  = "chase"
	PolicyStill  = "still"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config can drive a session.
func (c GameConfig) Validate() error {
	switch {
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives must be positive, got %d", ErrInvalidConfig, c.Player.Lives)
	case c.Player.Bombs <= 0:
		return fmt.Errorf("%w: player.bombs must be positive, got %d", ErrInvalidConfig, c.Player.Bombs)
	case c.Player.Range <= 0:
		return fmt.Errorf("%w: player.range must be positive, got %d", ErrInvalidConfig, c.Player.Range)
	case c.Player.MoveCooldown < 0 || c.Player.Invulnerability < 0:
		return fmt.Errorf("%w: player durations must not be negative", ErrInvalidConfig)
	case c.Monster.Interval <= 0:
		return fmt.Errorf("%w: monster.interval must be positive, got %v", ErrInvalidConfig, c.Monster.Interval)
	case c.Bomb.Fuse <= 0:
		return fmt.Errorf("%w: bomb.fuse must be positive, got %v", ErrInvalidConfig, c.Bomb.Fuse)
	case c.Bomb.MaterializeAfter < 0 || c.Bomb.MaterializeAfter > c.Bomb.Fuse:
		return fmt.Errorf("%w: bomb.materialize_after must be within [0, fuse], got %v", ErrInvalidConfig, c.Bomb.MaterializeAfter)
	}

	switch c.Monster.Policy {
	case PolicyRandom, PolicyChase, PolicyStill:
	default:
		return fmt.Errorf("%w: unknown monster.policy %q", ErrInvalidConfig, c.Monster.Policy)
	}
	return nil
}
