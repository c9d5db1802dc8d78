// Package registry keeps the playable levels by id.
// Built-in levels register themselves in init() functions; the CLI can add
// levels loaded from disk at startup.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-bomber/internal/level"
)

// ErrUnknownLevel is returned by Create for an id nobody registered.
var ErrUnknownLevel = errors.New("registry: unknown level")

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory returns a level definition. Build is called on the result for
// every new session, so the definition itself may be shared.
type Factory func() *level.Level

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	lvl := f()
	infos[id] = LevelInfo{ID: id, Title: lvl.Title, Description: lvl.Description}
}

// RegisterLevel registers an already parsed level under its own id.
func RegisterLevel(lvl *level.Level) {
	Register(lvl.ID, func() *level.Level { return lvl })
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the level registered under id.
func Create(id string) (*level.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}

	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
