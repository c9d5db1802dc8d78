package core

import "testing"

func TestLatchSetAndClear(t *testing.T) {
	l := NewLatch()

	l.Set(IntentMoveEast)
	l.Set(IntentBomb)

	if !l.MoveEast() {
		t.Error("MoveEast should be latched")
	}
	if !l.Bomb() {
		t.Error("Bomb should be latched")
	}
	if l.MoveWest() || l.MoveNorth() || l.MoveSouth() || l.Exit() {
		t.Error("Only latched intents should report true")
	}

	l.Clear()

	for _, i := range []Intent{IntentMoveNorth, IntentMoveSouth, IntentMoveEast, IntentMoveWest, IntentBomb, IntentExit} {
		if l.Has(i) {
			t.Errorf("%v should be cleared", i)
		}
	}
}

func TestLatchIgnoresNone(t *testing.T) {
	l := NewLatch()
	l.Set(IntentNone)
	if l.Has(IntentNone) {
		t.Error("IntentNone should never be latched")
	}
}

func TestLatchZeroValue(t *testing.T) {
	var l Latch
	if l.Exit() {
		t.Error("zero latch should report nothing")
	}
	l.Set(IntentExit)
	if !l.Exit() {
		t.Error("zero latch should accept Set")
	}
}

func TestMoveIntent(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Intent
	}{
		{North, IntentMoveNorth},
		{South, IntentMoveSouth},
		{East, IntentMoveEast},
		{West, IntentMoveWest},
	}
	for _, tc := range tests {
		if got := MoveIntent(tc.dir); got != tc.expected {
			t.Errorf("MoveIntent(%v) = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}
