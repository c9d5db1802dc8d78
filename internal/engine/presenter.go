package engine

import "github.com/vovakirdan/tui-bomber/internal/core"

// Presenter shows the end-of-game message. The platform decides how.
type Presenter interface {
	Show(message string, color core.Color)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(message string, color core.Color)

// Show implements Presenter.
func (f PresenterFunc) Show(message string, color core.Color) { f(message, color) }
