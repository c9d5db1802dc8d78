package engine

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
	"github.com/vovakirdan/tui-bomber/internal/level"
	"github.com/vovakirdan/tui-bomber/internal/view"
)

// HUDHeight is the number of screen rows reserved under the grid.
const HUDHeight = 1

// Session is one play-through of a level.
type Session struct {
	ID     string
	Level  *level.Level
	Seed   int64
	Engine *Engine
}

// SessionOptions gathers everything a session is built from.
type SessionOptions struct {
	Config    config.GameConfig
	Runtime   core.RuntimeConfig
	Factory   view.Factory // nil means a glyph factory at the origin
	Presenter Presenter
	Logger    *log.Logger
}

// NewSession builds the level into a fresh world, creates its entities and
// wires the engine.
func NewSession(lvl *level.Level, opts SessionOptions) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	m, err := lvl.Build()
	if err != nil {
		return nil, fmt.Errorf("build level %q: %w", lvl.ID, err)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	id := uuid.NewString()

	logger := opts.Logger
	if logger != nil {
		logger = logger.With("session", id[:8], "level", lvl.ID)
	}

	cfg := opts.Config
	m.World.SetBlastDuration(cfg.Bomb.BlastDuration)

	player := entity.NewPlayer(m.World, m.Player, entity.PlayerOptions{
		Lives:           cfg.Player.Lives,
		MoveCooldown:    cfg.Player.MoveCooldown,
		Invulnerability: cfg.Player.Invulnerability,
		Bombs:           cfg.Player.Bombs,
		Range:           cfg.Player.Range,
		Fuse:            cfg.Bomb.Fuse,
	})
	monster := entity.NewMonster(m.World, m.Monster, NewPolicy(cfg.Monster.Policy, seed, player))

	factory := opts.Factory
	if factory == nil {
		factory = view.NewGlyphFactory(0, 0)
	}

	eng := New(m.World, player, monster, factory, opts.Presenter, Options{
		MonsterInterval:  cfg.Monster.Interval,
		MaterializeAfter: cfg.Bomb.MaterializeAfter,
		ScreenW:          m.World.Width() * view.TileWidth,
		ScreenH:          m.World.Height(),
		Logger:           logger,
	})

	if logger != nil {
		logger.Info("session started", "seed", seed, "policy", cfg.Monster.Policy,
			"size", fmt.Sprintf("%dx%d", m.World.Width(), m.World.Height()))
	}

	return &Session{ID: id, Level: lvl, Seed: seed, Engine: eng}, nil
}

// NewPolicy returns the monster policy registered under name. Unknown names
// fall back to random movement.
func NewPolicy(name string, seed int64, target entity.Target) entity.Policy {
	switch name {
	case config.PolicyChase:
		return entity.NewChasePolicy(target)
	case config.PolicyStill:
		return entity.StillPolicy{}
	default:
		return entity.NewRandomPolicy(seed)
	}
}
