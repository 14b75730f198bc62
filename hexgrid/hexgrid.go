// Package hexgrid maps board coordinates onto a continuous plane and
// hit-tests pointer positions against cell centers.
package hexgrid

import (
	"math"

	"termhex/hex"
)

// Position is a point on the continuous plane the board is drawn on.
type Position struct {
	X float64
	Y float64
}

// rowPitch is the vertical distance between rows, as a fraction of the cell
// size. Each row is also shifted right by half a cell, producing the rhombic
// hex layout.
const rowPitch = 0.87

// CellCenter returns the plane position of the center of c.
func CellCenter(c hex.Coords, cellSize float64, origin Position) Position {
	return Position{
		X: origin.X + cellSize*float64(c.X) + 0.5*cellSize*float64(c.Y),
		Y: origin.Y + rowPitch*cellSize*float64(c.Y),
	}
}

// NearestCell returns the board cell whose center is closest to pointer,
// provided the squared distance is strictly below cellSize². It reports
// false when no cell is within the selection radius, which includes the
// size 0 board. Cells are scanned column by column, X outermost and Y
// innermost, and the first minimum seen wins, so exact distance ties
// resolve deterministically.
func NearestCell(pointer Position, size int, cellSize float64, origin Position) (hex.Coords, bool) {
	limit := cellSize * cellSize
	closest := math.Inf(1)
	var found bool
	var best hex.Coords

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			c := hex.Coords{X: x, Y: y}
			center := CellCenter(c, cellSize, origin)
			dx := pointer.X - center.X
			dy := pointer.Y - center.Y
			d := dx*dx + dy*dy
			if d < limit && d < closest {
				closest = d
				best = c
				found = true
			}
		}
	}
	return best, found
}
