package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/engine"
	"github.com/vovakirdan/tui-bomber/internal/level"
)

func newTestModel(t *testing.T, layout string) Model {
	t.Helper()
	lvl := &level.Level{ID: "test", Title: "Test", Layout: layout}
	cfg := config.DefaultGameConfig()
	cfg.Monster.Policy = config.PolicyStill
	m, err := NewModel(lvl, cfg, core.RuntimeConfig{TickRate: 60, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTickAdvancesEngine(t *testing.T) {
	m := newTestModel(t, "#####\n#@.M#\n#####")
	start := time.Unix(0, 0)
	id := m.Session().ID

	m = step(m, TickMsg{Time: start, Session: id})
	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(m, TickMsg{Time: start.Add(time.Second), Session: id})

	if p := m.Session().Engine.Player().Position(); p != core.Pos(2, 1) {
		t.Errorf("player at %v, expected (2,1)", p)
	}
	if !strings.Contains(m.View(), "Test") {
		t.Error("view should show the level title")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	m := newTestModel(t, "#####\n#@.M#\n#####")

	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(m, TickMsg{Time: time.Unix(0, 0), Session: "someone-else"})

	if p := m.Session().Engine.Player().Position(); p != core.Pos(1, 1) {
		t.Errorf("foreign tick ran a frame, player at %v", p)
	}
}

func TestModelShowsOverlayAndQuits(t *testing.T) {
	m := newTestModel(t, "####\n#@M#\n####")
	id := m.Session().ID
	start := time.Unix(0, 0)

	// Walk into the monster until out of lives
	for i := 0; i < 10; i++ {
		m = step(m, tea.KeyMsg{Type: tea.KeyRight})
		m = step(m, TickMsg{Time: start.Add(time.Duration(i) * 2 * time.Second), Session: id})
	}
	if m.Session().Engine.Outcome() != engine.Defeat {
		t.Fatalf("Outcome = %v, expected defeat", m.Session().Engine.Outcome())
	}
	if !strings.Contains(m.View(), engine.DefeatMessage) {
		t.Error("overlay message missing from view")
	}

	m = step(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	next, cmd := m.Update(TickMsg{Time: start.Add(time.Minute), Session: id})
	if !next.(Model).Exited() {
		t.Error("q should exit the session")
	}
	if cmd == nil {
		t.Error("exit should return a quit command")
	}
}
