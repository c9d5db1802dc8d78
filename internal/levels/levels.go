// Package levels registers the built-in levels.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-bomber/internal/levels"
package levels

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/vovakirdan/tui-bomber/internal/level"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

//go:embed data/*.yaml
var data embed.FS

// DefaultID is the level played when none is chosen.
const DefaultID = "courtyard"

func init() {
	for _, lvl := range mustLoad() {
		registry.RegisterLevel(lvl)
	}
}

// Builtin returns the embedded levels in file order.
func Builtin() ([]*level.Level, error) {
	entries, err := data.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded levels: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]*level.Level, 0, len(names))
	for _, name := range names {
		raw, err := data.ReadFile(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("read embedded level %s: %w", name, err)
		}
		lvl, err := level.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("embedded level %s: %w", name, err)
		}
		out = append(out, lvl)
	}
	return out, nil
}

// Order returns the ids of the built-in levels in play order.
func Order() []string {
	lvls := mustLoad()
	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	return ids
}

func mustLoad() []*level.Level {
	lvls, err := Builtin()
	if err != nil {
		panic(err)
	}
	return lvls
}
