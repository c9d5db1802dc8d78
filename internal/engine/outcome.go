package engine

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
)

// Outcome is the result of evaluating a frame.
type Outcome int

const (
	Continue Outcome = iota
	Defeat
	Victory
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Defeat:
		return "defeat"
	case Victory:
		return "victory"
	default:
		return "unknown"
	}
}

// Messages shown by the overlay.
const (
	DefeatMessage  = "You lost!"
	VictoryMessage = "You won!"
)

// Message returns the overlay text and color of a terminal outcome.
func (o Outcome) Message() (string, core.Color) {
	switch o {
	case Defeat:
		return DefeatMessage, core.ColorRed
	case Victory:
		return VictoryMessage, core.ColorBlue
	default:
		return "", core.ColorDefault
	}
}

// Evaluate hurts the player when it shares a tile with a live monster and
// then decides the outcome. Defeat is checked before victory.
func Evaluate(p *entity.Player, m *entity.Monster, now time.Duration) Outcome {
	if m != nil && m.IsAlive() && p.Position() == m.Position() {
		p.Hurt(now)
	}
	switch {
	case !p.IsAlive():
		return Defeat
	case p.IsWinner():
		return Victory
	default:
		return Continue
	}
}
