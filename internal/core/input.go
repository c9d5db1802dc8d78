package core

// Intent is a discrete player action, abstracted from physical key presses.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveNorth
	IntentMoveSouth
	IntentMoveEast
	IntentMoveWest
	IntentBomb
	IntentExit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveNorth:
		return "MoveNorth"
	case IntentMoveSouth:
		return "MoveSouth"
	case IntentMoveEast:
		return "MoveEast"
	case IntentMoveWest:
		return "MoveWest"
	case IntentBomb:
		return "Bomb"
	case IntentExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// MoveIntent returns the move intent for a direction.
func MoveIntent(d Direction) Intent {
	switch d {
	case North:
		return IntentMoveNorth
	case South:
		return IntentMoveSouth
	case East:
		return IntentMoveEast
	default:
		return IntentMoveWest
	}
}

// Latch collects intents between two frames. Each intent is delivered at
// most once: the frame loop reads it and then clears the latch.
type Latch struct {
	latched map[Intent]bool
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{latched: make(map[Intent]bool)}
}

// Set latches an intent until the next Clear.
func (l *Latch) Set(i Intent) {
	if i == IntentNone {
		return
	}
	if l.latched == nil {
		l.latched = make(map[Intent]bool)
	}
	l.latched[i] = true
}

// Has reports whether the intent was latched since the last Clear.
func (l *Latch) Has(i Intent) bool {
	return l.latched[i]
}

// MoveNorth reports a latched move-north intent.
func (l *Latch) MoveNorth() bool { return l.Has(IntentMoveNorth) }

// MoveSouth reports a latched move-south intent.
func (l *Latch) MoveSouth() bool { return l.Has(IntentMoveSouth) }

// MoveEast reports a latched move-east intent.
func (l *Latch) MoveEast() bool { return l.Has(IntentMoveEast) }

// MoveWest reports a latched move-west intent.
func (l *Latch) MoveWest() bool { return l.Has(IntentMoveWest) }

// Bomb reports a latched place-bomb intent.
func (l *Latch) Bomb() bool { return l.Has(IntentBomb) }

// Exit reports a latched exit intent.
func (l *Latch) Exit() bool { return l.Has(IntentExit) }

// Clear drops every latched intent.
func (l *Latch) Clear() {
	for k := range l.latched {
		delete(l.latched, k)
	}
}
