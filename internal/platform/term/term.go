// Package term is a tcell frontend. It owns the terminal directly and drives
// the engine from a ticker, with key events forwarded by a polling goroutine.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/engine"
	"github.com/vovakirdan/tui-bomber/internal/level"
)

var palette = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.PaletteColor(1),
	core.ColorGreen:        tcell.PaletteColor(2),
	core.ColorYellow:       tcell.PaletteColor(3),
	core.ColorBlue:         tcell.PaletteColor(4),
	core.ColorMagenta:      tcell.PaletteColor(5),
	core.ColorCyan:         tcell.PaletteColor(6),
	core.ColorWhite:        tcell.PaletteColor(7),
	core.ColorBrightRed:    tcell.PaletteColor(9),
	core.ColorBrightYellow: tcell.PaletteColor(11),
	core.ColorOrange:       tcell.PaletteColor(208),
	core.ColorGray:         tcell.PaletteColor(245),
	core.ColorBrown:        tcell.PaletteColor(130),
}

func styleFor(c core.Color) tcell.Style {
	if fg, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(fg)
	}
	return tcell.StyleDefault
}

// overlay receives the end-of-game message.
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

// Game runs one session on a tcell screen.
type Game struct {
	screen   tcell.Screen
	session  *engine.Session
	overlay  *overlay
	tickRate int
}

// NewGame builds a session for lvl on screen. The screen must already be
// initialized.
func NewGame(screen tcell.Screen, lvl *level.Level, cfg config.GameConfig, rc core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	ov := &overlay{}
	s, err := engine.NewSession(lvl, engine.SessionOptions{
		Config:    cfg,
		Runtime:   rc,
		Presenter: ov,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	rate := rc.TickRate
	if rate <= 0 {
		rate = 60
	}
	return &Game{screen: screen, session: s, overlay: ov, tickRate: rate}, nil
}

// Run opens the terminal, plays lvl until the player exits and restores
// the terminal.
func Run(lvl *level.Level, cfg config.GameConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	g, err := NewGame(screen, lvl, cfg, rc, logger)
	if err != nil {
		return err
	}
	g.Loop()
	return nil
}

// Loop runs frames until the engine exits.
func (g *Game) Loop() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	e := g.session.Engine
	start := time.Now()
	for {
		select {
		case ev := <-eventChan:
			g.handleEvent(ev)

		case t := <-ticker.C:
			e.Tick(t.Sub(start))
			if e.Exited() {
				e.Close()
				return
			}
			g.draw()
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.session.Engine.Press(Intent(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Intent translates a tcell key event to a game intent.
func Intent(ev *tcell.EventKey) core.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.IntentMoveNorth
	case tcell.KeyDown:
		return core.IntentMoveSouth
	case tcell.KeyLeft:
		return core.IntentMoveWest
	case tcell.KeyRight:
		return core.IntentMoveEast
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.IntentExit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.IntentMoveNorth
		case 's', 'j':
			return core.IntentMoveSouth
		case 'a', 'h':
			return core.IntentMoveWest
		case 'd', 'l':
			return core.IntentMoveEast
		case ' ', 'b':
			return core.IntentBomb
		case 'q':
			return core.IntentExit
		}
	}
	return core.IntentNone
}

// draw copies the engine buffer and the HUD to the terminal, or the overlay
// once the game is over.
func (g *Game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()

	if g.overlay.shown {
		y := h / 2
		drawCentered(g.screen, w, y-1, g.overlay.message, styleFor(g.overlay.color).Bold(true))
		drawCentered(g.screen, w, y+1, "press q to quit", styleFor(core.ColorGray))
		g.screen.Show()
		return
	}

	buf := g.session.Engine.Screen()
	ox := max((w-buf.Width())/2, 0)
	oy := max((h-buf.Height()-1)/2, 0)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.GetCell(x, y)
			g.screen.SetContent(ox+x, oy+y, c.Rune, nil, styleFor(c.Color))
		}
	}

	st := g.session.Engine.Status()
	status := fmt.Sprintf("%s  lives %d  keys %d  bombs %d/%d  range %d",
		g.session.Level.ID, st.Lives, st.Keys, st.Bombs-st.Placed, st.Bombs, st.Range)
	drawText(g.screen, ox, oy+buf.Height(), status, styleFor(core.ColorGray))

	g.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, width, y int, text string, style tcell.Style) {
	x := max((width-len([]rune(text)))/2, 0)
	drawText(s, x, y, text, style)
}
