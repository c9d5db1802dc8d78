package world

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestNewWorldIsDirtyFloor(t *testing.T) {
	w := New(4, 3)

	if !w.IsDirty() {
		t.Error("New world should be dirty so decor gets materialized")
	}

	count := 0
	w.ForEachDecor(func(p core.Position, k DecorKind) {
		count++
		if k != Floor {
			t.Errorf("tile %v = %v, expected floor", p, k)
		}
	})
	if count != 12 {
		t.Errorf("ForEachDecor visited %d tiles, expected 12", count)
	}
}

func TestForEachDecorRowMajor(t *testing.T) {
	w := New(2, 2)
	var order []core.Position
	w.ForEachDecor(func(p core.Position, _ DecorKind) {
		order = append(order, p)
	})

	expected := []core.Position{core.Pos(0, 0), core.Pos(1, 0), core.Pos(0, 1), core.Pos(1, 1)}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %v, expected %v", i, order[i], expected[i])
		}
	}
}

func TestSetRaisesDirtyOnlyOnChange(t *testing.T) {
	w := New(3, 3)
	w.ClearDirty()

	w.Set(core.Pos(1, 1), Floor)
	if w.IsDirty() {
		t.Error("Setting the same decor should not raise dirty")
	}

	w.Set(core.Pos(1, 1), Box)
	if !w.IsDirty() {
		t.Error("Changing decor should raise dirty")
	}
	if w.Get(core.Pos(1, 1)) != Box {
		t.Errorf("Get = %v, expected box", w.Get(core.Pos(1, 1)))
	}

	w.ClearDirty()
	w.Set(core.Pos(10, 10), Box)
	if w.IsDirty() {
		t.Error("Out of bounds Set should be ignored")
	}
}

func TestCanEnter(t *testing.T) {
	w := New(5, 5)
	w.Set(core.Pos(1, 0), Wall)
	w.Set(core.Pos(2, 0), Box)
	w.Set(core.Pos(3, 0), DoorClosed)
	w.Set(core.Pos(4, 0), DoorOpen)
	w.Set(core.Pos(0, 1), Key)
	w.Set(core.Pos(1, 1), Princess)

	tests := []struct {
		name     string
		pos      core.Position
		expected bool
	}{
		{"floor", core.Pos(0, 0), true},
		{"wall", core.Pos(1, 0), false},
		{"box", core.Pos(2, 0), false},
		{"closed door", core.Pos(3, 0), false},
		{"open door", core.Pos(4, 0), true},
		{"key", core.Pos(0, 1), true},
		{"princess", core.Pos(1, 1), true},
		{"outside left", core.Pos(-1, 0), false},
		{"outside bottom", core.Pos(0, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.CanEnter(tc.pos); got != tc.expected {
				t.Errorf("CanEnter(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestBombBlocksMovement(t *testing.T) {
	w := New(5, 5)
	if _, ok := w.PlaceBomb(core.Pos(2, 2), time.Second, 1); !ok {
		t.Fatal("PlaceBomb should succeed on floor")
	}
	if w.CanEnter(core.Pos(2, 2)) {
		t.Error("A tile holding a bomb should not be enterable")
	}
	if _, ok := w.PlaceBomb(core.Pos(2, 2), time.Second, 1); ok {
		t.Error("Two bombs should not share a tile")
	}
}

func TestPlaceBombAssignsDistinctIDs(t *testing.T) {
	w := New(5, 5)
	a, _ := w.PlaceBomb(core.Pos(1, 1), time.Second, 1)
	b, _ := w.PlaceBomb(core.Pos(2, 2), time.Second, 1)

	if a.ID() == b.ID() {
		t.Errorf("bombs share id %d", a.ID())
	}
	bombs := w.PlacedBombs()
	if len(bombs) != 2 || bombs[0] != a || bombs[1] != b {
		t.Error("PlacedBombs should list bombs in placement order")
	}
}

func TestAdvanceDetonatesAtFuse(t *testing.T) {
	w := New(5, 5)
	b, _ := w.PlaceBomb(core.Pos(2, 2), 100*time.Millisecond, 1)

	if fired := w.Advance(60 * time.Millisecond); len(fired) != 0 {
		t.Fatalf("bomb fired early: %d blasts", len(fired))
	}
	if b.Elapsed() != 60*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 60ms", b.Elapsed())
	}
	if b.Remaining() != 40*time.Millisecond {
		t.Errorf("Remaining = %v, expected 40ms", b.Remaining())
	}

	fired := w.Advance(40 * time.Millisecond)
	if len(fired) != 1 {
		t.Fatalf("expected one blast, got %d", len(fired))
	}
	if len(w.PlacedBombs()) != 0 {
		t.Error("detonated bomb should leave the bomb list")
	}
	if fired[0].Origin() != core.Pos(2, 2) {
		t.Errorf("blast origin = %v, expected (2,2)", fired[0].Origin())
	}
	if !w.InBlast(core.Pos(2, 1)) || !w.InBlast(core.Pos(3, 2)) {
		t.Error("blast should reach adjacent cells")
	}
	if w.InBlast(core.Pos(0, 2)) {
		t.Error("blast with radius 1 should not reach two cells away")
	}
}

func TestBlastDestroysFirstBoxAndStopsAtWalls(t *testing.T) {
	w := New(7, 3)
	w.Set(core.Pos(4, 1), Box)
	w.Set(core.Pos(5, 1), Box)
	w.Set(core.Pos(2, 1), Wall)
	w.ClearDirty()

	w.PlaceBomb(core.Pos(3, 1), 10*time.Millisecond, 3)
	w.Advance(10 * time.Millisecond)

	if w.Get(core.Pos(4, 1)) != Floor {
		t.Error("first box on the ray should be destroyed")
	}
	if w.Get(core.Pos(5, 1)) != Box {
		t.Error("box behind the first one should survive")
	}
	if w.Get(core.Pos(2, 1)) != Wall {
		t.Error("walls never break")
	}
	if w.InBlast(core.Pos(2, 1)) || w.InBlast(core.Pos(1, 1)) {
		t.Error("blast should stop before the wall")
	}
	if !w.IsDirty() {
		t.Error("destroying a box should raise the dirty flag")
	}
}

func TestChainDetonation(t *testing.T) {
	w := New(7, 1)
	first, _ := w.PlaceBomb(core.Pos(1, 0), 50*time.Millisecond, 2)
	second, _ := w.PlaceBomb(core.Pos(3, 0), 5*time.Second, 1)
	third, _ := w.PlaceBomb(core.Pos(6, 0), 5*time.Second, 1)

	fired := w.Advance(50 * time.Millisecond)

	if len(fired) != 2 {
		t.Fatalf("expected chain of 2 blasts, got %d", len(fired))
	}
	if fired[0].Origin() != first.Position() || fired[1].Origin() != second.Position() {
		t.Error("chain should fire the triggering bomb first")
	}
	bombs := w.PlacedBombs()
	if len(bombs) != 1 || bombs[0] != third {
		t.Error("bomb out of reach should stay placed")
	}
}

func TestBlastsExpire(t *testing.T) {
	w := New(3, 3)
	w.SetBlastDuration(100 * time.Millisecond)
	w.PlaceBomb(core.Pos(1, 1), 0, 1)

	w.Advance(0)
	if len(w.Blasts()) != 1 {
		t.Fatalf("expected one live blast, got %d", len(w.Blasts()))
	}

	w.Advance(99 * time.Millisecond)
	if len(w.Blasts()) != 1 {
		t.Error("blast should still be alive before its duration")
	}

	w.Advance(time.Millisecond)
	if len(w.Blasts()) != 0 {
		t.Error("blast should expire once its duration elapsed")
	}
}

func TestBlastDestroysBonusesButNotKeys(t *testing.T) {
	w := New(5, 1)
	w.Set(core.Pos(1, 0), Heart)
	w.Set(core.Pos(3, 0), Key)
	w.PlaceBomb(core.Pos(2, 0), 0, 2)
	w.Advance(0)

	if w.Get(core.Pos(1, 0)) != Floor {
		t.Error("heart in the blast should be destroyed")
	}
	if w.Get(core.Pos(3, 0)) != Key {
		t.Error("keys should survive blasts")
	}
}
