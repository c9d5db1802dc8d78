package world

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// DefaultBlastDuration is how long fire stays on screen after a detonation.
const DefaultBlastDuration = 500 * time.Millisecond

// World is the tile grid of one session plus its bombs and blasts.
// The dirty flag is raised by every decor change and cleared by the view
// layer once it has rebuilt its decor sprites.
type World struct {
	width  int
	height int
	tiles  []DecorKind // row-major

	dirty bool

	bombs         []*Bomb // placement order
	blasts        []*Blast
	blastDuration time.Duration
	nextID        uint64
}

// New creates a world of floor tiles. A new world is dirty so the first
// reconciliation materializes its decor.
func New(width, height int) *World {
	return &World{
		width:         width,
		height:        height,
		tiles:         make([]DecorKind, width*height),
		dirty:         true,
		blastDuration: DefaultBlastDuration,
	}
}

// SetBlastDuration overrides how long blasts live.
func (w *World) SetBlastDuration(d time.Duration) {
	if d > 0 {
		w.blastDuration = d
	}
}

// Width returns the grid width in tiles.
func (w *World) Width() int { return w.width }

// Height returns the grid height in tiles.
func (w *World) Height() int { return w.height }

// Inside reports whether p lies on the grid.
func (w *World) Inside(p core.Position) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

// Get returns the decor at p. Cells off the grid read as walls.
func (w *World) Get(p core.Position) DecorKind {
	if !w.Inside(p) {
		return Wall
	}
	return w.tiles[p.Y*w.width+p.X]
}

// Set replaces the decor at p and raises the dirty flag if it changed.
func (w *World) Set(p core.Position, k DecorKind) {
	if !w.Inside(p) {
		return
	}
	i := p.Y*w.width + p.X
	if w.tiles[i] == k {
		return
	}
	w.tiles[i] = k
	w.dirty = true
}

// ForEachDecor calls fn for every tile in row-major order.
func (w *World) ForEachDecor(fn func(core.Position, DecorKind)) {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			fn(core.Position{X: x, Y: y}, w.tiles[y*w.width+x])
		}
	}
}

// IsDirty reports whether decor changed since the last ClearDirty.
func (w *World) IsDirty() bool { return w.dirty }

// ClearDirty acknowledges the last decor change.
func (w *World) ClearDirty() { w.dirty = false }

// CanEnter reports whether an entity may step onto p.
func (w *World) CanEnter(p core.Position) bool {
	if !w.Inside(p) || !w.Get(p).Walkable() {
		return false
	}
	return w.BombAt(p) == nil
}

// BombAt returns the bomb placed on p, or nil.
func (w *World) BombAt(p core.Position) *Bomb {
	for _, b := range w.bombs {
		if b.pos == p {
			return b
		}
	}
	return nil
}

// PlaceBomb puts a bomb on p. It fails when p is off the grid, not walkable
// or already holds a bomb.
func (w *World) PlaceBomb(p core.Position, fuse time.Duration, radius int) (*Bomb, bool) {
	if !w.Inside(p) || !w.Get(p).Walkable() || w.BombAt(p) != nil {
		return nil, false
	}
	w.nextID++
	b := &Bomb{
		id:     BombID(w.nextID),
		pos:    p,
		fuse:   fuse,
		radius: radius,
	}
	w.bombs = append(w.bombs, b)
	return b, true
}

// PlacedBombs returns the bombs on the grid in placement order.
// The slice must not be modified by the caller.
func (w *World) PlacedBombs() []*Bomb { return w.bombs }

// Blasts returns the live blasts, oldest first.
func (w *World) Blasts() []*Blast { return w.blasts }

// InBlast reports whether any live blast covers p.
func (w *World) InBlast(p core.Position) bool {
	for _, b := range w.blasts {
		if b.Covers(p) {
			return true
		}
	}
	return false
}

// Advance moves every bomb and blast timer forward by dt, removes expired
// blasts and detonates bombs whose fuse ran out. Bombs caught in a blast
// detonate in the same call. It returns the blasts created by this call.
func (w *World) Advance(dt time.Duration) []*Blast {
	if dt < 0 {
		dt = 0
	}

	live := w.blasts[:0]
	for _, b := range w.blasts {
		b.age += dt
		if b.age < w.blastDuration {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(w.blasts); i++ {
		w.blasts[i] = nil
	}
	w.blasts = live

	for _, b := range w.bombs {
		b.elapsed += dt
	}

	var fired []*Blast
	for {
		idx := -1
		for i, b := range w.bombs {
			if b.elapsed >= b.fuse {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}

		bomb := w.bombs[idx]
		w.bombs = append(w.bombs[:idx], w.bombs[idx+1:]...)
		blast := w.detonate(bomb)
		fired = append(fired, blast)

		// Chain reaction
		for _, other := range w.bombs {
			if blast.Covers(other.pos) && other.elapsed < other.fuse {
				other.elapsed = other.fuse
			}
		}
	}
	return fired
}

// detonate spreads a blast from the bomb along the four directions,
// destroying what it can and stopping at the first solid obstacle.
func (w *World) detonate(b *Bomb) *Blast {
	w.nextID++
	blast := &Blast{
		id:     BlastID(w.nextID),
		origin: b.pos,
		cells:  []core.Position{b.pos},
	}

	for _, d := range core.Directions {
		p := b.pos
		for i := 0; i < b.radius; i++ {
			p = p.Add(d)
			if !w.Inside(p) {
				break
			}
			k := w.Get(p)
			if k.stopsBlast() {
				break
			}
			blast.cells = append(blast.cells, p)
			if k.Destructible() {
				w.Set(p, Floor)
				if k == Box {
					break
				}
			}
		}
	}

	w.blasts = append(w.blasts, blast)
	return blast
}
