// Package hex implements the rules of Hex on a rhombic size×size board.
// Red connects the top and bottom rows, Blue connects the left and right
// columns. Red always moves first.
package hex

import "errors"

// Color identifies a player's stones.
type Color int

const (
	// Red is the first mover and connects top to bottom.
	Red Color = iota + 1
	// Blue moves second and connects left to right.
	Blue
)

// Opponent returns the other player.
func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	}
	return "none"
}

// Coords identifies a cell on the board. (0, 0) is the top-left cell;
// X grows to the right along a row, Y grows downward.
type Coords struct {
	X int
	Y int
}

// Status reports whether a game is still being played.
type Status int

const (
	Ongoing Status = iota
	Finished
)

// Errors returned by Game.Play.
var (
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game already finished")
)

// neighborOffsets are the six hex neighbors of a cell in rhombic coordinates.
var neighborOffsets = [6]Coords{
	{X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: -1}, {X: -1, Y: 1},
}
