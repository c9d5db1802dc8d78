package core

import "testing"

func TestPositionAdd(t *testing.T) {
	origin := Pos(2, 2)

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{North, Pos(2, 1)},
		{South, Pos(2, 3)},
		{East, Pos(3, 2)},
		{West, Pos(1, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			result := origin.Add(tc.dir)
			if result != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.dir, result, tc.expected)
			}
			// Moving back must return to the origin
			if back := result.Add(tc.dir.Opposite()); back != origin {
				t.Errorf("Add(%v).Add(%v) = %v, expected %v", tc.dir, tc.dir.Opposite(), back, origin)
			}
		})
	}
}

func TestPositionEquality(t *testing.T) {
	if Pos(1, 2) != Pos(1, 2) {
		t.Error("identical positions should be equal")
	}
	if Pos(1, 2) == Pos(2, 1) {
		t.Error("swapped coordinates should not be equal")
	}
}

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		a, b     Position
		expected int
	}{
		{Pos(0, 0), Pos(0, 0), 0},
		{Pos(0, 0), Pos(3, 4), 7},
		{Pos(5, 1), Pos(2, 3), 5},
	}

	for _, tc := range tests {
		if d := tc.a.Distance(tc.b); d != tc.expected {
			t.Errorf("%v.Distance(%v) = %d, expected %d", tc.a, tc.b, d, tc.expected)
		}
		if d := tc.b.Distance(tc.a); d != tc.expected {
			t.Errorf("Distance should be symmetric, got %d", d)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
