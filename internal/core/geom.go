// Package core provides fundamental types and utilities for the bomber game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is an integer tile coordinate on the world grid.
// Positions are compared by value for collision and lookup.
type Position struct {
	X, Y int
}

// Pos creates a new position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the neighbouring position one step in direction d.
func (p Position) Add(d Direction) Position {
	switch d {
	case North:
		return Position{X: p.X, Y: p.Y - 1}
	case South:
		return Position{X: p.X, Y: p.Y + 1}
	case East:
		return Position{X: p.X + 1, Y: p.Y}
	case West:
		return Position{X: p.X - 1, Y: p.Y}
	}
	return p
}

// Distance returns the Manhattan distance between two positions.
func (p Position) Distance(other Position) int {
	return Abs(p.X-other.X) + Abs(p.Y-other.Y)
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a pending move intent. It is never stored as entity state
// beyond the frame it was requested in.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in evaluation order.
var Directions = [...]Direction{North, South, East, West}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "unknown"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
