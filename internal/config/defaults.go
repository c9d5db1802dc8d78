package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultGameConfig returns the hard-coded default configuration.
// It mirrors defaults/bomber.yaml and is used when the embedded file fails
// to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Lives:           3,
			MoveCooldown:    120 * time.Millisecond,
			Invulnerability: time.Second,
			Bombs:           1,
			Range:           1,
		},
		Monster: MonsterConfig{
			Interval: time.Second,
			Policy:   PolicyRandom,
		},
		Bomb: BombConfig{
			Fuse:             4 * time.Second,
			MaterializeAfter: 4 * time.Millisecond,
			BlastDuration:    500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBomberYAML
}
