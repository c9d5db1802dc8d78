package view

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// TileWidth is the number of terminal columns per tile. Two columns keep
// tiles roughly square in most fonts.
const TileWidth = 2

// Glyph is what a tile looks like in the terminal.
type Glyph struct {
	Left, Right rune
	Color       core.Color
}

var decorGlyphs = map[world.DecorKind]Glyph{
	world.Floor:      {' ', ' ', core.ColorDefault},
	world.Wall:       {'█', '█', core.ColorGray},
	world.Box:        {'▒', '▒', core.ColorBrown},
	world.DoorClosed: {'[', ']', core.ColorBrown},
	world.DoorOpen:   {'[', ' ', core.ColorBrown},
	world.Key:        {'k', ' ', core.ColorBrightYellow},
	world.Princess:   {'P', ' ', core.ColorMagenta},
	world.Heart:      {'♥', ' ', core.ColorRed},
	world.BombBonus:  {'b', '+', core.ColorOrange},
	world.RangeBonus: {'r', '+', core.ColorCyan},
}

var (
	playerGlyph  = Glyph{'@', ' ', core.ColorGreen}
	monsterGlyph = Glyph{'M', ' ', core.ColorBrightRed}
	blastGlyph   = Glyph{'*', '*', core.ColorBrightYellow}
)

// DecorGlyph returns the glyph drawn for kind.
func DecorGlyph(kind world.DecorKind) Glyph {
	if g, ok := decorGlyphs[kind]; ok {
		return g
	}
	return Glyph{'?', ' ', core.ColorDefault}
}

// GlyphFactory builds sprites that draw glyphs into a core.Screen.
// Tile (0,0) is drawn at (OffsetX, OffsetY).
type GlyphFactory struct {
	OffsetX int
	OffsetY int
}

// NewGlyphFactory creates a factory drawing the grid at the given offset.
func NewGlyphFactory(offsetX, offsetY int) *GlyphFactory {
	return &GlyphFactory{OffsetX: offsetX, OffsetY: offsetY}
}

// ScreenPos converts a tile position to the screen cell of its left column.
func (f *GlyphFactory) ScreenPos(p core.Position) (x, y int) {
	return f.OffsetX + p.X*TileWidth, f.OffsetY + p.Y
}

func (f *GlyphFactory) draw(dst *core.Screen, p core.Position, g Glyph) {
	x, y := f.ScreenPos(p)
	dst.SetCell(x, y, g.Left, g.Color)
	dst.SetCell(x+1, y, g.Right, g.Color)
}

// Decor implements Factory.
func (f *GlyphFactory) Decor(pos core.Position, kind world.DecorKind) Sprite {
	g := DecorGlyph(kind)
	return &glyphSprite{draw: func(dst *core.Screen) { f.draw(dst, pos, g) }}
}

// Player implements Factory.
func (f *GlyphFactory) Player(p *entity.Player) Sprite {
	return &glyphSprite{draw: func(dst *core.Screen) {
		g := playerGlyph
		if !p.IsAlive() {
			g.Left = 'x'
		}
		f.draw(dst, p.Position(), g)
	}}
}

// Monster implements Factory.
func (f *GlyphFactory) Monster(m *entity.Monster) Sprite {
	return &glyphSprite{draw: func(dst *core.Screen) { f.draw(dst, m.Position(), monsterGlyph) }}
}

// Bomb implements Factory. The bomb shows the whole seconds left on its fuse.
func (f *GlyphFactory) Bomb(b *world.Bomb) Sprite {
	return &glyphSprite{draw: func(dst *core.Screen) {
		f.draw(dst, b.Position(), Glyph{'o', countdownRune(b.Remaining()), core.ColorBrightRed})
	}}
}

// Blast implements Factory.
func (f *GlyphFactory) Blast(b *world.Blast) Sprite {
	return &glyphSprite{draw: func(dst *core.Screen) {
		for _, c := range b.Cells() {
			f.draw(dst, c, blastGlyph)
		}
	}}
}

// countdownRune returns the ceiling of d in seconds as a digit.
func countdownRune(d time.Duration) rune {
	secs := int((d + time.Second - 1) / time.Second)
	secs = core.Clamp(secs, 0, 9)
	return rune('0' + secs)
}

// glyphSprite draws until removed.
type glyphSprite struct {
	draw    func(dst *core.Screen)
	removed bool
}

func (s *glyphSprite) Render(dst *core.Screen) {
	if s.removed {
		return
	}
	s.draw(dst)
}

func (s *glyphSprite) Remove() { s.removed = true }
