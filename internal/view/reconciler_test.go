package view

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// fakeSprite records what happened to it.
type fakeSprite struct {
	kind    string
	pos     core.Position
	removed int
	renders int
	log     *[]string
}

func (s *fakeSprite) Render(_ *core.Screen) {
	s.renders++
	if s.log != nil {
		*s.log = append(*s.log, s.kind)
	}
}

func (s *fakeSprite) Remove() { s.removed++ }

// fakeFactory counts sprite creation per kind.
type fakeFactory struct {
	created map[string]int
	sprites []*fakeSprite
	bombs   map[world.BombID]*fakeSprite
	log     []string
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		created: make(map[string]int),
		bombs:   make(map[world.BombID]*fakeSprite),
	}
}

func (f *fakeFactory) make(kind string, pos core.Position) *fakeSprite {
	f.created[kind]++
	s := &fakeSprite{kind: kind, pos: pos, log: &f.log}
	f.sprites = append(f.sprites, s)
	return s
}

func (f *fakeFactory) Decor(pos core.Position, kind world.DecorKind) Sprite {
	return f.make("decor:"+kind.String(), pos)
}

func (f *fakeFactory) Player(p *entity.Player) Sprite { return f.make("player", p.Position()) }

func (f *fakeFactory) Monster(m *entity.Monster) Sprite { return f.make("monster", m.Position()) }

func (f *fakeFactory) Bomb(b *world.Bomb) Sprite {
	s := f.make("bomb", b.Position())
	f.bombs[b.ID()] = s
	return s
}

func (f *fakeFactory) Blast(b *world.Blast) Sprite { return f.make("blast", b.Origin()) }

func (f *fakeFactory) count(prefix string) (created, removed int) {
	for _, s := range f.sprites {
		if len(s.kind) >= len(prefix) && s.kind[:len(prefix)] == prefix {
			created++
			removed += s.removed
		}
	}
	return created, removed
}

func (f *fakeFactory) liveBombsAt(p core.Position) int {
	n := 0
	for _, s := range f.bombs {
		if s.pos == p && s.removed == 0 {
			n++
		}
	}
	return n
}

func newTestReconciler(w *world.World) (*Reconciler, *fakeFactory) {
	f := newFakeFactory()
	return NewReconciler(w, f, nil, nil, DefaultMaterializeAfter), f
}

func TestDecorMatchesWorld(t *testing.T) {
	w := world.New(4, 3)
	w.Set(core.Pos(0, 0), world.Wall)
	w.Set(core.Pos(2, 1), world.Box)
	w.Set(core.Pos(3, 2), world.DoorClosed)

	r, f := newTestReconciler(w)
	r.Reconcile()

	if r.DecorCount() != 12 {
		t.Fatalf("DecorCount = %d, expected 12", r.DecorCount())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p := core.Pos(x, y)
			s, ok := r.DecorAt(p)
			if !ok {
				t.Errorf("no decor sprite at %v", p)
				continue
			}
			fs := s.(*fakeSprite)
			expected := "decor:" + w.Get(p).String()
			if fs.kind != expected || fs.pos != p {
				t.Errorf("sprite at %v = %s@%v, expected %s", p, fs.kind, fs.pos, expected)
			}
		}
	}
	if w.IsDirty() {
		t.Error("reconciliation should clear the dirty flag")
	}
	if f.created["decor:wall"] != 1 {
		t.Errorf("created %d wall sprites, expected 1", f.created["decor:wall"])
	}
}

func TestDecorResyncIdempotent(t *testing.T) {
	w := world.New(3, 3)
	r, f := newTestReconciler(w)

	if !r.SyncDecor() {
		t.Fatal("first sync of a fresh world should rebuild")
	}
	created, _ := f.count("decor")

	if r.SyncDecor() {
		t.Error("second sync without a change should be a no-op")
	}
	again, removed := f.count("decor")
	if again != created || removed != 0 {
		t.Errorf("no-op sync created %d and removed %d sprites", again-created, removed)
	}
}

func TestDecorRebuildAfterChange(t *testing.T) {
	w := world.New(3, 3)
	r, f := newTestReconciler(w)
	r.Reconcile()

	w.Set(core.Pos(1, 1), world.DoorOpen)
	r.Reconcile()

	created, removed := f.count("decor")
	if created != 18 || removed != 9 {
		t.Errorf("created %d, removed %d decor sprites; expected 18 and 9", created, removed)
	}
	s, _ := r.DecorAt(core.Pos(1, 1))
	if s.(*fakeSprite).kind != "decor:door-open" {
		t.Errorf("sprite at (1,1) = %s, expected the open door", s.(*fakeSprite).kind)
	}
	for _, s := range f.sprites {
		if s.removed > 1 {
			t.Errorf("%s at %v removed %d times", s.kind, s.pos, s.removed)
		}
	}
}

func TestBombMaterializeThreshold(t *testing.T) {
	w := world.New(6, 6)
	r, f := newTestReconciler(w)
	at := core.Pos(3, 3)

	b, ok := w.PlaceBomb(at, time.Second, 1)
	if !ok {
		t.Fatal("PlaceBomb failed")
	}

	w.Advance(3 * time.Millisecond)
	r.Reconcile()
	if f.liveBombsAt(at) != 0 {
		t.Fatal("bomb sprite created before the threshold")
	}

	w.Advance(1 * time.Millisecond)
	r.Reconcile()
	if f.liveBombsAt(at) != 1 {
		t.Fatalf("expected one bomb sprite at %v, got %d", at, f.liveBombsAt(at))
	}

	// Stays materialized, no duplicates
	for i := 0; i < 5; i++ {
		w.Advance(10 * time.Millisecond)
		r.Reconcile()
	}
	if f.created["bomb"] != 1 || r.BombCount() != 1 {
		t.Errorf("created %d bomb sprites, tracking %d; expected 1 and 1", f.created["bomb"], r.BombCount())
	}

	w.Advance(time.Second)
	r.Reconcile()
	if f.liveBombsAt(at) != 0 {
		t.Error("bomb sprite should be gone after detonation")
	}
	if f.bombs[b.ID()].removed != 1 {
		t.Errorf("bomb sprite removed %d times, expected once", f.bombs[b.ID()].removed)
	}

	r.Reconcile()
	if f.bombs[b.ID()].removed != 1 {
		t.Error("repeated reconciliation should not remove again")
	}
}

func TestBombsOutOfOrderDetonation(t *testing.T) {
	w := world.New(9, 1)
	r, f := newTestReconciler(w)

	first, _ := w.PlaceBomb(core.Pos(0, 0), 2*time.Second, 1)
	second, _ := w.PlaceBomb(core.Pos(8, 0), time.Second, 1)

	w.Advance(10 * time.Millisecond)
	r.Reconcile()
	if r.BombCount() != 2 {
		t.Fatalf("expected both bombs materialized, got %d", r.BombCount())
	}

	// The later bomb goes off first
	w.Advance(time.Second)
	r.Reconcile()

	if f.bombs[second.ID()].removed != 1 {
		t.Errorf("detonated bomb sprite removed %d times", f.bombs[second.ID()].removed)
	}
	if f.bombs[first.ID()].removed != 0 {
		t.Error("the still ticking bomb lost its sprite")
	}
	if _, ok := r.BombSprite(first.ID()); !ok {
		t.Error("the still ticking bomb is no longer tracked")
	}

	w.Advance(time.Second)
	r.Reconcile()
	if f.bombs[first.ID()].removed != 1 || r.BombCount() != 0 {
		t.Errorf("after both detonations: removed %d, tracking %d", f.bombs[first.ID()].removed, r.BombCount())
	}
}

func TestBombNeverMaterializedIsNeverRemoved(t *testing.T) {
	w := world.New(3, 3)
	r, f := newTestReconciler(w)

	w.PlaceBomb(core.Pos(1, 1), time.Millisecond, 1)
	w.Advance(2 * time.Millisecond)
	r.Reconcile()

	if f.created["bomb"] != 0 {
		t.Errorf("a bomb that detonated in its first frame got %d sprites", f.created["bomb"])
	}
}

func TestBlastSprites(t *testing.T) {
	w := world.New(5, 5)
	w.SetBlastDuration(100 * time.Millisecond)
	r, f := newTestReconciler(w)

	w.PlaceBomb(core.Pos(2, 2), 10*time.Millisecond, 1)
	w.Advance(10 * time.Millisecond)
	r.Reconcile()
	if r.BlastCount() != 1 {
		t.Fatalf("BlastCount = %d, expected 1", r.BlastCount())
	}

	w.Advance(50 * time.Millisecond)
	r.Reconcile()
	if f.created["blast"] != 1 {
		t.Errorf("created %d blast sprites, expected 1", f.created["blast"])
	}

	w.Advance(50 * time.Millisecond)
	r.Reconcile()
	created, removed := f.count("blast")
	if r.BlastCount() != 0 || created != 1 || removed != 1 {
		t.Errorf("expired blast: tracking %d, created %d, removed %d", r.BlastCount(), created, removed)
	}
}

func TestRenderOrder(t *testing.T) {
	w := world.New(3, 1)
	p := entity.NewPlayer(w, core.Pos(0, 0), entity.PlayerOptions{Lives: 1, Bombs: 1, Range: 1})
	m := entity.NewMonster(w, core.Pos(2, 0), nil)
	f := newFakeFactory()
	r := NewReconciler(w, f, p, m, 0)

	w.PlaceBomb(core.Pos(1, 0), time.Second, 1)
	r.Reconcile()
	f.log = nil
	r.Render(core.NewScreen(10, 1))

	expected := []string{"decor:floor", "decor:floor", "decor:floor", "bomb", "monster", "player"}
	if len(f.log) != len(expected) {
		t.Fatalf("render log = %v, expected %v", f.log, expected)
	}
	for i := range expected {
		if f.log[i] != expected[i] {
			t.Errorf("render[%d] = %s, expected %s", i, f.log[i], expected[i])
		}
	}
}

func TestDeadMonsterSpriteRemoved(t *testing.T) {
	w := world.New(3, 1)
	m := entity.NewMonster(w, core.Pos(2, 0), nil)
	f := newFakeFactory()
	r := NewReconciler(w, f, nil, m, 0)

	r.Reconcile()
	if !r.HasMonster() {
		t.Fatal("monster sprite missing")
	}

	m.Kill()
	r.Reconcile()
	r.Reconcile()

	if r.HasMonster() {
		t.Error("dead monster should not be drawn")
	}
	if _, removed := f.count("monster"); removed != 1 {
		t.Errorf("monster sprite removed %d times, expected once", removed)
	}
}

func TestCloseRemovesEverything(t *testing.T) {
	w := world.New(2, 2)
	p := entity.NewPlayer(w, core.Pos(0, 0), entity.PlayerOptions{Lives: 1})
	f := newFakeFactory()
	r := NewReconciler(w, f, p, nil, 0)
	w.PlaceBomb(core.Pos(1, 1), time.Second, 1)
	r.Reconcile()

	r.Close()

	for _, s := range f.sprites {
		if s.removed != 1 {
			t.Errorf("%s at %v removed %d times after Close", s.kind, s.pos, s.removed)
		}
	}
}
