package hex

// Game holds the full state of one Hex session: board occupancy, the player
// to move, and the game status. A finished game rejects all further moves.
type Game struct {
	size    int
	cells   []Color // row-major, 0 means empty
	current Color
	status  Status
	winner  Color
	moves   int
}

// NewGame creates an empty size×size board with Red to move. A size of 0
// yields a degenerate board on which every move is out of bounds.
func NewGame(size int) *Game {
	return &Game{
		size:    size,
		cells:   make([]Color, size*size),
		current: Red,
	}
}

// Size returns the board edge length.
func (g *Game) Size() int { return g.size }

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() Color { return g.current }

// Status returns Ongoing or Finished.
func (g *Game) Status() Status { return g.status }

// MoveNumber returns the number of moves played so far.
func (g *Game) MoveNumber() int { return g.moves }

// Winner returns the winning player once the game is finished.
func (g *Game) Winner() (Color, bool) {
	if g.status != Finished {
		return 0, false
	}
	return g.winner, true
}

// InBounds reports whether c addresses a cell on the board.
func (g *Game) InBounds(c Coords) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// ColorAt returns the occupant of c, if any.
func (g *Game) ColorAt(c Coords) (Color, bool) {
	if !g.InBounds(c) || g.cells[g.index(c)] == 0 {
		return 0, false
	}
	return g.cells[g.index(c)], true
}

// LegalMoves returns every empty cell, or nil once the game is finished.
func (g *Game) LegalMoves() []Coords {
	if g.status == Finished {
		return nil
	}
	var moves []Coords
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := Coords{X: x, Y: y}
			if g.cells[g.index(c)] == 0 {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// Play places the current player's stone at c. On success the turn passes to
// the opponent; if the stone completes a connection between the player's two
// edges the game finishes. A rejected move leaves the game unchanged.
func (g *Game) Play(c Coords) error {
	if g.status == Finished {
		return ErrGameOver
	}
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.cells[g.index(c)] != 0 {
		return ErrOccupied
	}

	player := g.current
	g.cells[g.index(c)] = player
	g.moves++

	if g.connectsEdges(c, player) {
		g.status = Finished
		g.winner = player
	}
	g.current = player.Opponent()
	return nil
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	clone := *g
	clone.cells = cells
	return &clone
}

func (g *Game) index(c Coords) int {
	return c.Y*g.size + c.X
}

// connectsEdges reports whether the group containing c touches both of
// player's target edges: rows 0 and size-1 for Red, columns 0 and size-1
// for Blue.
func (g *Game) connectsEdges(c Coords, player Color) bool {
	seen := make([]bool, len(g.cells))
	queue := []Coords{c}
	seen[g.index(c)] = true
	lowEdge, highEdge := false, false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		edge := cur.Y
		if player == Blue {
			edge = cur.X
		}
		if edge == 0 {
			lowEdge = true
		}
		if edge == g.size-1 {
			highEdge = true
		}
		if lowEdge && highEdge {
			return true
		}

		for _, offset := range neighborOffsets {
			next := Coords{X: cur.X + offset.X, Y: cur.Y + offset.Y}
			if !g.InBounds(next) || seen[g.index(next)] {
				continue
			}
			if g.cells[g.index(next)] != player {
				continue
			}
			seen[g.index(next)] = true
			queue = append(queue, next)
		}
	}
	return false
}
