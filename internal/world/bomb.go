package world

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// BombID identifies a placed bomb for its whole lifetime.
type BombID uint64

// Bomb is a placed bomb. Its elapsed counter is advanced by the world; the
// bomb detonates once the counter reaches the fuse.
type Bomb struct {
	id      BombID
	pos     core.Position
	elapsed time.Duration
	fuse    time.Duration
	radius  int
}

// ID returns the stable bomb identity.
func (b *Bomb) ID() BombID { return b.id }

// Position returns the tile the bomb sits on.
func (b *Bomb) Position() core.Position { return b.pos }

// Elapsed returns the time since placement.
func (b *Bomb) Elapsed() time.Duration { return b.elapsed }

// Fuse returns the detonation threshold.
func (b *Bomb) Fuse() time.Duration { return b.fuse }

// Radius returns the blast reach in tiles.
func (b *Bomb) Radius() int { return b.radius }

// Remaining returns the time left before detonation, never negative.
func (b *Bomb) Remaining() time.Duration {
	if b.elapsed >= b.fuse {
		return 0
	}
	return b.fuse - b.elapsed
}

// BlastID identifies a blast for its whole lifetime.
type BlastID uint64

// Blast is the fire left by a detonation.
type Blast struct {
	id     BlastID
	origin core.Position
	cells  []core.Position
	age    time.Duration
}

// ID returns the stable blast identity.
func (b *Blast) ID() BlastID { return b.id }

// Origin returns the cell the bomb detonated on.
func (b *Blast) Origin() core.Position { return b.origin }

// Cells returns every cell covered by the blast, origin first.
func (b *Blast) Cells() []core.Position { return b.cells }

// Covers reports whether the blast reaches p.
func (b *Blast) Covers(p core.Position) bool {
	for _, c := range b.cells {
		if c == p {
			return true
		}
	}
	return false
}
