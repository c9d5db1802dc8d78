// Package view keeps transient sprites in step with the world and entities.
//
// The world is authoritative. Sprites are created and removed only by the
// Reconciler, which runs between the simulation step and rendering, so the
// renderer never sees a sprite set that disagrees with the model.
package view

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/entity"
	"github.com/vovakirdan/tui-bomber/internal/world"
)

// Sprite is one drawable object owned by the Reconciler.
type Sprite interface {
	// Render draws the sprite into dst.
	Render(dst *core.Screen)
	// Remove releases the sprite. It is called exactly once.
	Remove()
}

// Factory builds sprites for every kind of world object.
type Factory interface {
	Decor(pos core.Position, kind world.DecorKind) Sprite
	Player(p *entity.Player) Sprite
	Monster(m *entity.Monster) Sprite
	Bomb(b *world.Bomb) Sprite
	Blast(b *world.Blast) Sprite
}
