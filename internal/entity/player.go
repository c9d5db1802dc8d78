// Package entity implements the player and monster of a session.
// Entities are mutated only by the simulation step of the frame loop.
package entity

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// PlayerOptions holds the tunables of a player.
type PlayerOptions struct {
	Lives           int
	MoveCooldown    time.Duration
	Invulnerability time.Duration
	Bombs           int
	Range           int
	Fuse            time.Duration
}

// Player is the user-controlled entity.
//
// Requests set by the frame loop are turned into state changes by Update and
// then cleared, whether or not they could be applied.
type Player struct {
	world *world.World
	pos   core.Position
	opts  PlayerOptions

	lives    int
	winner   bool
	keys     int
	capacity int
	radius   int

	// Pending requests
	moveRequested bool
	moveDir       core.Direction
	bombRequested bool

	// Timers
	hasMoved bool
	lastMove time.Duration
	wasHurt  bool
	hurtAt   time.Duration
}

// NewPlayer creates a player standing on pos.
func NewPlayer(w *world.World, pos core.Position, opts PlayerOptions) *Player {
	return &Player{
		world:    w,
		pos:      pos,
		opts:     opts,
		lives:    opts.Lives,
		capacity: opts.Bombs,
		radius:   opts.Range,
	}
}

// RequestMove records a move for the next Update. The last request wins.
func (p *Player) RequestMove(d core.Direction) {
	p.moveRequested = true
	p.moveDir = d
}

// RequestBomb records a bomb placement for the next Update.
func (p *Player) RequestBomb() {
	p.bombRequested = true
}

// Update applies the pending requests. A bomb is dropped before moving so
// that "bomb and run" in the same frame leaves the bomb behind.
func (p *Player) Update(now time.Duration) {
	defer p.clearRequests()

	if !p.IsAlive() || p.winner {
		return
	}

	if p.bombRequested && len(p.world.PlacedBombs()) < p.capacity {
		p.world.PlaceBomb(p.pos, p.opts.Fuse, p.radius)
	}

	if p.moveRequested && p.canMoveAt(now) {
		p.tryMove(p.moveDir, now)
	}
}

func (p *Player) clearRequests() {
	p.moveRequested = false
	p.bombRequested = false
}

// canMoveAt reports whether the move cooldown has elapsed.
func (p *Player) canMoveAt(now time.Duration) bool {
	return !p.hasMoved || now-p.lastMove >= p.opts.MoveCooldown
}

func (p *Player) tryMove(d core.Direction, now time.Duration) {
	target := p.pos.Add(d)

	if p.world.Get(target) == world.DoorClosed {
		if p.keys > 0 {
			p.keys--
			p.world.Set(target, world.DoorOpen)
			p.markMoved(now)
		}
		return
	}

	if !p.world.CanEnter(target) {
		return
	}

	p.pos = target
	p.markMoved(now)
	p.collect()
}

func (p *Player) markMoved(now time.Duration) {
	p.hasMoved = true
	p.lastMove = now
}

// collect picks up whatever lies on the player's tile.
func (p *Player) collect() {
	switch p.world.Get(p.pos) {
	case world.Key:
		p.keys++
	case world.Heart:
		p.lives++
	case world.BombBonus:
		p.capacity++
	case world.RangeBonus:
		p.radius++
	case world.Princess:
		p.winner = true
		return
	default:
		return
	}
	p.world.Set(p.pos, world.Floor)
}

// Hurt takes one life unless the player is still invulnerable from the
// previous hit. It reports whether a life was lost.
func (p *Player) Hurt(now time.Duration) bool {
	if !p.IsAlive() || p.IsInvulnerable(now) {
		return false
	}
	p.lives--
	p.wasHurt = true
	p.hurtAt = now
	return true
}

// IsInvulnerable reports whether the grace period after a hit is running.
func (p *Player) IsInvulnerable(now time.Duration) bool {
	return p.wasHurt && now-p.hurtAt < p.opts.Invulnerability
}

// IsAlive reports whether the player has lives left.
func (p *Player) IsAlive() bool { return p.lives > 0 }

// IsWinner reports whether the player reached the princess.
func (p *Player) IsWinner() bool { return p.winner }

// Position returns the player's tile.
func (p *Player) Position() core.Position { return p.pos }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// Keys returns the number of keys carried.
func (p *Player) Keys() int { return p.keys }

// BombCapacity returns how many bombs may be on the grid at once.
func (p *Player) BombCapacity() int { return p.capacity }

// Range returns the blast reach of the player's bombs.
func (p *Player) Range() int { return p.radius }
