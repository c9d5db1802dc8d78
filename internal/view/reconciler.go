package view

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// DefaultMaterializeAfter is how long a bomb must have been ticking before
// it gets a sprite.
const DefaultMaterializeAfter = 4 * time.Millisecond

// Reconciler owns every sprite of a session.
//
// Decor sprites are keyed by position and rebuilt in full whenever the world
// is dirty. Bomb and blast sprites are keyed by the id of the object they
// show, so removal never depends on list order or list size.
type Reconciler struct {
	world            *world.World
	factory          Factory
	materializeAfter time.Duration

	decor      map[core.Position]Sprite
	decorOrder []core.Position // row-major, as iterated

	bombs  map[world.BombID]Sprite
	blasts map[world.BlastID]Sprite

	monster       *entity.Monster
	playerSprite  Sprite
	monsterSprite Sprite
}

// NewReconciler creates a reconciler and the player and monster sprites.
// Decor is materialized by the first Reconcile call.
func NewReconciler(w *world.World, f Factory, p *entity.Player, m *entity.Monster, materializeAfter time.Duration) *Reconciler {
	r := &Reconciler{
		world:            w,
		factory:          f,
		materializeAfter: materializeAfter,
		decor:            make(map[core.Position]Sprite),
		bombs:            make(map[world.BombID]Sprite),
		blasts:           make(map[world.BlastID]Sprite),
		monster:          m,
	}
	if p != nil {
		r.playerSprite = f.Player(p)
	}
	if m != nil {
		r.monsterSprite = f.Monster(m)
	}
	return r
}

// Reconcile brings every sprite in line with the model.
func (r *Reconciler) Reconcile() {
	r.SyncDecor()
	r.SyncBombs()
	r.SyncBlasts()
	r.syncMonster()
}

// SyncDecor rebuilds the decor sprites if the world is dirty and clears the
// flag. It reports whether a rebuild happened.
func (r *Reconciler) SyncDecor() bool {
	if !r.world.IsDirty() {
		return false
	}

	for _, pos := range r.decorOrder {
		r.decor[pos].Remove()
	}
	clear(r.decor)
	r.decorOrder = r.decorOrder[:0]

	r.world.ForEachDecor(func(pos core.Position, kind world.DecorKind) {
		r.decor[pos] = r.factory.Decor(pos, kind)
		r.decorOrder = append(r.decorOrder, pos)
	})

	r.world.ClearDirty()
	return true
}

// SyncBombs creates sprites for bombs past the materialize threshold and
// removes sprites whose bomb has left the list.
func (r *Reconciler) SyncBombs() {
	live := make(map[world.BombID]bool, len(r.world.PlacedBombs()))
	for _, b := range r.world.PlacedBombs() {
		live[b.ID()] = true
		if _, ok := r.bombs[b.ID()]; ok {
			continue
		}
		if b.Elapsed() >= r.materializeAfter {
			r.bombs[b.ID()] = r.factory.Bomb(b)
		}
	}

	for id, s := range r.bombs {
		if !live[id] {
			s.Remove()
			delete(r.bombs, id)
		}
	}
}

// SyncBlasts applies the same protocol to blasts, without a threshold.
func (r *Reconciler) SyncBlasts() {
	live := make(map[world.BlastID]bool, len(r.world.Blasts()))
	for _, b := range r.world.Blasts() {
		live[b.ID()] = true
		if _, ok := r.blasts[b.ID()]; !ok {
			r.blasts[b.ID()] = r.factory.Blast(b)
		}
	}

	for id, s := range r.blasts {
		if !live[id] {
			s.Remove()
			delete(r.blasts, id)
		}
	}
}

func (r *Reconciler) syncMonster() {
	if r.monsterSprite != nil && r.monster != nil && !r.monster.IsAlive() {
		r.monsterSprite.Remove()
		r.monsterSprite = nil
	}
}

// Render draws decor, bombs, blasts, the monster and finally the player.
func (r *Reconciler) Render(dst *core.Screen) {
	for _, pos := range r.decorOrder {
		r.decor[pos].Render(dst)
	}
	for _, b := range r.world.PlacedBombs() {
		if s, ok := r.bombs[b.ID()]; ok {
			s.Render(dst)
		}
	}
	for _, b := range r.world.Blasts() {
		if s, ok := r.blasts[b.ID()]; ok {
			s.Render(dst)
		}
	}
	if r.monsterSprite != nil {
		r.monsterSprite.Render(dst)
	}
	if r.playerSprite != nil {
		r.playerSprite.Render(dst)
	}
}

// Close removes every sprite still alive.
func (r *Reconciler) Close() {
	for _, pos := range r.decorOrder {
		r.decor[pos].Remove()
	}
	clear(r.decor)
	r.decorOrder = nil

	for id, s := range r.bombs {
		s.Remove()
		delete(r.bombs, id)
	}
	for id, s := range r.blasts {
		s.Remove()
		delete(r.blasts, id)
	}
	if r.monsterSprite != nil {
		r.monsterSprite.Remove()
		r.monsterSprite = nil
	}
	if r.playerSprite != nil {
		r.playerSprite.Remove()
		r.playerSprite = nil
	}
}

// DecorAt returns the decor sprite at pos.
func (r *Reconciler) DecorAt(pos core.Position) (Sprite, bool) {
	s, ok := r.decor[pos]
	return s, ok
}

// DecorCount returns the number of decor sprites.
func (r *Reconciler) DecorCount() int { return len(r.decor) }

// BombSprite returns the sprite showing bomb id.
func (r *Reconciler) BombSprite(id world.BombID) (Sprite, bool) {
	s, ok := r.bombs[id]
	return s, ok
}

// BombCount returns the number of bomb sprites.
func (r *Reconciler) BombCount() int { return len(r.bombs) }

// BlastCount returns the number of blast sprites.
func (r *Reconciler) BlastCount() int { return len(r.blasts) }

// HasMonster reports whether the monster sprite is still shown.
func (r *Reconciler) HasMonster() bool { return r.monsterSprite != nil }
