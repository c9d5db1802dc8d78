// Package level defines playable maps and turns them into worlds.
//
// A level is a YAML document with an ASCII layout:
//
//	id: courtyard
//	title: Courtyard
//	layout: |
//	  #######
//	  #@..BM#
//	  #######
//
// Layout characters:
//
//	.  floor        #  wall        B  box
//	D  closed door  d  open door   k  key
//	P  princess     H  heart       +  bomb bonus
//	r  range bonus  @  player      M  monster
//
// Entities stand on floor. Rows shorter than the widest row are padded with
// floor.
package level

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

var (
	ErrNoPlayer        = errors.New("level: no player start")
	ErrNoMonster       = errors.New("level: no monster start")
	ErrDuplicateEntity = errors.New("level: entity placed twice")
	ErrUnknownTile     = errors.New("level: unknown tile")
	ErrEmptyLayout     = errors.New("level: empty layout")
	ErrMissingID       = errors.New("level: missing id")
)

// Level is a parsed level definition.
type Level struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Layout      string `yaml:"layout"`
}

// Map is a level built into a fresh world with entity start positions.
type Map struct {
	World   *world.World
	Player  core.Position
	Monster core.Position
}

var tiles = map[rune]world.DecorKind{
	'.': world.Floor,
	' ': world.Floor,
	'#': world.Wall,
	'B': world.Box,
	'D': world.DoorClosed,
	'd': world.DoorOpen,
	'k': world.Key,
	'P': world.Princess,
	'H': world.Heart,
	'+': world.BombBonus,
	'r': world.RangeBonus,
}

// Parse decodes a level document and checks that its layout builds.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if lvl.ID == "" {
		return nil, ErrMissingID
	}
	if lvl.Title == "" {
		lvl.Title = lvl.ID
	}
	if _, err := lvl.Build(); err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.ID, err)
	}
	return &lvl, nil
}

// Rows returns the layout split into lines, without leading and trailing
// blank lines.
func (l *Level) Rows() []string {
	lines := strings.Split(strings.ReplaceAll(l.Layout, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Size returns the layout width and height in tiles.
func (l *Level) Size() (width, height int) {
	rows := l.Rows()
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	return width, len(rows)
}

// Build creates a new world from the layout. Each call returns an
// independent world.
func (l *Level) Build() (*Map, error) {
	rows := l.Rows()
	width, height := l.Size()
	if width == 0 || height == 0 {
		return nil, ErrEmptyLayout
	}

	m := &Map{World: world.New(width, height)}
	var hasPlayer, hasMonster bool

	for y, row := range rows {
		for x, r := range []rune(row) {
			p := core.Pos(x, y)
			switch r {
			case '@':
				if hasPlayer {
					return nil, fmt.Errorf("player at %v: %w", p, ErrDuplicateEntity)
				}
				hasPlayer = true
				m.Player = p
				continue
			case 'M':
				if hasMonster {
					return nil, fmt.Errorf("monster at %v: %w", p, ErrDuplicateEntity)
				}
				hasMonster = true
				m.Monster = p
				continue
			}

			kind, ok := tiles[r]
			if !ok {
				return nil, fmt.Errorf("%q at %v: %w", r, p, ErrUnknownTile)
			}
			m.World.Set(p, kind)
		}
	}

	if !hasPlayer {
		return nil, ErrNoPlayer
	}
	if !hasMonster {
		return nil, ErrNoMonster
	}
	return m, nil
}
