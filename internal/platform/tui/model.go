package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/engine"
	"github.com/vovakirdan/tui-bomber/internal/level"
)

// overlay is filled by the engine's presenter and read by View.
type overlay struct {
	shown   bool
	message string
	color   core.Color
}

func (o *overlay) Show(message string, color core.Color) {
	o.shown = true
	o.message = message
	o.color = color
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	session  *engine.Session
	overlay  *overlay
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	start    time.Time
	started  bool
	width    int
	height   int
	quitting bool
}

// NewModel builds a session for lvl and wraps it in a model.
func NewModel(lvl *level.Level, cfg config.GameConfig, rc core.RuntimeConfig, logger *log.Logger) (Model, error) {
	ov := &overlay{}
	s, err := engine.NewSession(lvl, engine.SessionOptions{
		Config:    cfg,
		Runtime:   rc,
		Presenter: ov,
		Logger:    logger,
	})
	if err != nil {
		return Model{}, err
	}

	return Model{
		session: s,
		overlay: ov,
		config:  rc,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   rc.ScreenW,
		height:  rc.ScreenH,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.session.ID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Session != m.session.ID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey latches the intent for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.session.Engine.Press(m.keys.Intent(msg))
	return m, nil
}

// handleTick runs one engine frame with the time since the first tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		m.start = t
		m.started = true
	}
	m.session.Engine.Tick(t.Sub(m.start))

	if m.session.Engine.Exited() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate, m.session.ID)
}

// saveScreenshot writes the current frame as plain text under
// ~/.bomber/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bomber", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Level.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.session.Engine.Screen().String()), 0o600)
}

// View renders the grid, the HUD and the key help, or the overlay once the
// game is over.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.overlay.shown {
		return RenderOverlay(m.overlay.message, m.overlay.color, m.width, m.height)
	}

	e := m.session.Engine
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.session.Level.Title),
		RenderScreen(e.Screen()),
		RenderStatus(m.session.Level.ID, e.Status()),
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Exited reports whether the player left the session.
func (m Model) Exited() bool { return m.session.Engine.Exited() }

// Session returns the running session.
func (m Model) Session() *engine.Session { return m.session }

// Run starts the Bubble Tea program for one level.
func Run(lvl *level.Level, cfg config.GameConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(lvl, cfg, rc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	model.session.Engine.Close()
	return err
}
