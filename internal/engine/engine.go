package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
	"github.com/vovakirdan/tui-bomber/internal/view"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// Options tunes an Engine.
type Options struct {
	MonsterInterval  time.Duration
	MaterializeAfter time.Duration
	ScreenW, ScreenH int
	Logger           *log.Logger
}

// Status is what the HUD shows.
type Status struct {
	Lives   int
	Keys    int
	Bombs   int // capacity
	Placed  int
	Range   int
	Outcome Outcome
}

// Engine sequences one session: input, update and render per frame, then
// the end-of-game overlay until exit.
type Engine struct {
	world      *world.World
	player     *entity.Player
	monster    *entity.Monster
	reconciler *view.Reconciler
	presenter  Presenter
	latch      *core.Latch
	screen     *core.Screen
	logger     *log.Logger

	active  *Scheduler
	overlay *Scheduler

	interval time.Duration
	last     time.Duration
	outcome  Outcome
	exited   bool
}

// New wires an engine and starts its active scheduler.
func New(w *world.World, p *entity.Player, m *entity.Monster, f view.Factory, presenter Presenter, opts Options) *Engine {
	if opts.MonsterInterval <= 0 {
		opts.MonsterInterval = entity.DefaultMonsterInterval
	}
	if opts.ScreenW <= 0 {
		opts.ScreenW = w.Width() * view.TileWidth
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = w.Height()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if presenter == nil {
		presenter = PresenterFunc(func(string, core.Color) {})
	}

	e := &Engine{
		world:      w,
		player:     p,
		monster:    m,
		reconciler: view.NewReconciler(w, f, p, m, opts.MaterializeAfter),
		presenter:  presenter,
		latch:      core.NewLatch(),
		screen:     core.NewScreen(opts.ScreenW, opts.ScreenH),
		logger:     logger,
		interval:   opts.MonsterInterval,
	}
	e.active = NewScheduler("active", e.activeFrame)
	e.overlay = NewScheduler("overlay", e.overlayFrame)
	e.active.Start()
	return e
}

// Press latches an intent for the next frame.
func (e *Engine) Press(i core.Intent) { e.latch.Set(i) }

// Tick runs one frame on whichever scheduler is running. now is the time
// since the session started and must not go backwards.
func (e *Engine) Tick(now time.Duration) {
	switch {
	case e.active.Running():
		e.active.Tick(now)
	case e.overlay.Running():
		e.overlay.Tick(now)
	}
}

func (e *Engine) activeFrame(now time.Duration) {
	if e.processInput() {
		return
	}
	e.update(now)
	e.render()
}

// processInput forwards latched intents to the player in N, S, E, W, bomb
// order and clears the latch. It reports whether the session exited.
func (e *Engine) processInput() bool {
	defer e.latch.Clear()

	if e.latch.Exit() {
		e.exit()
		return true
	}
	if e.latch.MoveNorth() {
		e.player.RequestMove(core.North)
	}
	if e.latch.MoveSouth() {
		e.player.RequestMove(core.South)
	}
	if e.latch.MoveEast() {
		e.player.RequestMove(core.East)
	}
	if e.latch.MoveWest() {
		e.player.RequestMove(core.West)
	}
	if e.latch.Bomb() {
		e.player.RequestBomb()
	}
	return false
}

func (e *Engine) update(now time.Duration) {
	dt := now - e.last
	e.last = now

	placed := len(e.world.PlacedBombs())
	e.player.Update(now)
	if n := len(e.world.PlacedBombs()); n > placed {
		b := e.world.PlacedBombs()[n-1]
		e.logger.Debug("bomb placed", "id", b.ID(), "pos", b.Position())
	}
	if e.monster != nil {
		e.monster.Update(now, e.interval)
	}

	for _, b := range e.world.Advance(dt) {
		e.logger.Debug("bomb detonated", "id", b.ID(), "origin", b.Origin(), "cells", len(b.Cells()))
	}
	e.applyBlasts(now)

	e.reconciler.Reconcile()

	if outcome := Evaluate(e.player, e.monster, now); outcome != Continue {
		e.finish(outcome)
	}
}

// applyBlasts hurts the player and kills the monster when a live blast
// covers their tile.
func (e *Engine) applyBlasts(now time.Duration) {
	if e.world.InBlast(e.player.Position()) && e.player.Hurt(now) {
		e.logger.Debug("player hit by blast", "lives", e.player.Lives())
	}
	if e.monster != nil && e.monster.IsAlive() && e.world.InBlast(e.monster.Position()) {
		e.monster.Kill()
		e.logger.Debug("monster killed", "pos", e.monster.Position())
	}
}

func (e *Engine) render() {
	e.screen.Clear()
	e.reconciler.Render(e.screen)
}

func (e *Engine) finish(o Outcome) {
	e.outcome = o
	e.active.Stop()
	e.overlay.Start()

	msg, color := o.Message()
	e.logger.Info("game over", "outcome", o, "frames", e.active.Frames())
	e.presenter.Show(msg, color)
}

func (e *Engine) overlayFrame(time.Duration) {
	defer e.latch.Clear()
	if e.latch.Exit() {
		e.exit()
	}
}

func (e *Engine) exit() {
	e.active.Stop()
	e.overlay.Stop()
	e.exited = true
	e.logger.Info("session exited", "outcome", e.outcome)
}

// Exited reports whether the exit intent was honored.
func (e *Engine) Exited() bool { return e.exited }

// Outcome returns Continue until the game ends.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Screen returns the buffer drawn by the last rendered frame.
func (e *Engine) Screen() *core.Screen { return e.screen }

// World returns the session world.
func (e *Engine) World() *world.World { return e.world }

// Player returns the session player.
func (e *Engine) Player() *entity.Player { return e.player }

// Monster returns the session monster, which may be nil.
func (e *Engine) Monster() *entity.Monster { return e.monster }

// Reconciler returns the sprite owner, for inspection.
func (e *Engine) Reconciler() *view.Reconciler { return e.reconciler }

// ActiveRunning reports whether play is still going.
func (e *Engine) ActiveRunning() bool { return e.active.Running() }

// OverlayRunning reports whether the end-of-game overlay is up.
func (e *Engine) OverlayRunning() bool { return e.overlay.Running() }

// Status returns the HUD values.
func (e *Engine) Status() Status {
	return Status{
		Lives:   e.player.Lives(),
		Keys:    e.player.Keys(),
		Bombs:   e.player.BombCapacity(),
		Placed:  len(e.world.PlacedBombs()),
		Range:   e.player.Range(),
		Outcome: e.outcome,
	}
}

// Close releases every sprite.
func (e *Engine) Close() { e.reconciler.Close() }
