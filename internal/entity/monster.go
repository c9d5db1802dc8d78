package entity

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// DefaultMonsterInterval is the default time between two monster moves.
const DefaultMonsterInterval = time.Second

// Policy picks the next monster move among the legal directions.
// options is never empty and lists directions in N, S, E, W order.
// Returning false keeps the monster in place.
type Policy interface {
	Choose(m *Monster, options []core.Direction) (core.Direction, bool)
}

// Monster moves on its own at a fixed cadence.
type Monster struct {
	world    *world.World
	pos      core.Position
	policy   Policy
	lastMove time.Duration
	alive    bool
}

// NewMonster creates a monster standing on pos.
func NewMonster(w *world.World, pos core.Position, policy Policy) *Monster {
	if policy == nil {
		policy = StillPolicy{}
	}
	return &Monster{
		world:  w,
		pos:    pos,
		policy: policy,
		alive:  true,
	}
}

// Update moves the monster once interval has elapsed since its last move.
// It reports whether the monster moved.
func (m *Monster) Update(now, interval time.Duration) bool {
	if !m.alive || now-m.lastMove < interval {
		return false
	}
	m.lastMove = now

	options := m.legalMoves()
	if len(options) == 0 {
		return false
	}
	d, ok := m.policy.Choose(m, options)
	if !ok {
		return false
	}
	target := m.pos.Add(d)
	if !m.world.CanEnter(target) {
		return false
	}
	m.pos = target
	return true
}

func (m *Monster) legalMoves() []core.Direction {
	options := make([]core.Direction, 0, len(core.Directions))
	for _, d := range core.Directions {
		if m.world.CanEnter(m.pos.Add(d)) {
			options = append(options, d)
		}
	}
	return options
}

// Kill removes the monster from play.
func (m *Monster) Kill() { m.alive = false }

// IsAlive reports whether the monster is still in play.
func (m *Monster) IsAlive() bool { return m.alive }

// Position returns the monster's tile.
func (m *Monster) Position() core.Position { return m.pos }

// RandomPolicy picks uniformly among legal moves.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a random policy with its own seeded source.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Choose implements Policy.
func (p *RandomPolicy) Choose(_ *Monster, options []core.Direction) (core.Direction, bool) {
	return options[p.rng.Intn(len(options))], true
}

// Target is anything with a position a monster can chase.
type Target interface {
	Position() core.Position
}

// ChasePolicy steps greedily toward a target. Ties are broken in option
// order, and when no move gets closer the first option is taken.
type ChasePolicy struct {
	target Target
}

// NewChasePolicy creates a policy chasing target.
func NewChasePolicy(target Target) *ChasePolicy {
	return &ChasePolicy{target: target}
}

// Choose implements Policy.
func (p *ChasePolicy) Choose(m *Monster, options []core.Direction) (core.Direction, bool) {
	goal := p.target.Position()
	best := options[0]
	bestDist := m.pos.Add(best).Distance(goal)
	for _, d := range options[1:] {
		if dist := m.pos.Add(d).Distance(goal); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, true
}

// StillPolicy keeps the monster where it is.
type StillPolicy struct{}

// Choose implements Policy.
func (StillPolicy) Choose(_ *Monster, _ []core.Direction) (core.Direction, bool) {
	return core.North, false
}
