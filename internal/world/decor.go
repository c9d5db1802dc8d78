// Package world holds the authoritative tile grid, the placed bombs and the
// live blasts of a session. The frame loop only consumes its contract:
// decor iteration, the dirty flag, the bomb list and the legality check.
package world

// DecorKind is the closed set of things a tile can hold.
type DecorKind uint8

const (
	Floor DecorKind = iota
	Wall
	Box
	DoorClosed
	DoorOpen
	Key
	Princess
	Heart
	BombBonus
	RangeBonus
)

// Walkable reports whether an entity may stand on the tile.
func (k DecorKind) Walkable() bool {
	switch k {
	case Wall, Box, DoorClosed:
		return false
	default:
		return true
	}
}

// Collectable reports whether the player picks the tile content up.
func (k DecorKind) Collectable() bool {
	switch k {
	case Key, Heart, BombBonus, RangeBonus:
		return true
	default:
		return false
	}
}

// Destructible reports whether a blast turns the tile into floor.
func (k DecorKind) Destructible() bool {
	switch k {
	case Box, Heart, BombBonus, RangeBonus:
		return true
	default:
		return false
	}
}

// stopsBlast reports whether a blast ray ends before this tile.
func (k DecorKind) stopsBlast() bool {
	switch k {
	case Wall, DoorClosed, DoorOpen, Key, Princess:
		return true
	default:
		return false
	}
}

func (k DecorKind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Box:
		return "box"
	case DoorClosed:
		return "door-closed"
	case DoorOpen:
		return "door-open"
	case Key:
		return "key"
	case Princess:
		return "princess"
	case Heart:
		return "heart"
	case BombBonus:
		return "bomb-bonus"
	case RangeBonus:
		return "range-bonus"
	default:
		return "unknown"
	}
}
