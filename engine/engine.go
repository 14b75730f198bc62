// Package engine defines the interface between the UI and a game engine.
package engine

import "termhex/hex"

// GameEngine is the boundary the UI plays against. One engine owns one game
// session; a new game means a new engine.
type GameEngine interface {
	// Connect initializes the session.
	Connect() error

	// Game returns the current game state for drawing.
	Game() *hex.Game

	// PlayMove plays the human move at the given cell and, if the game is
	// still ongoing, the engine's reply. Returns an error if the human move
	// is illegal or if the engine cannot produce a reply.
	PlayMove(x, y int) error

	// IsMyTurn reports whether the human player is to move.
	IsMyTurn() bool

	// OnMove registers a callback invoked after every applied move, human
	// or engine.
	OnMove(func(x, y int, color hex.Color, game *hex.Game))

	// OnGameEnd registers a callback invoked when the game finishes.
	OnGameEnd(func(winner hex.Color))

	// Close shuts down the session.
	Close()
}

// Board size bounds accepted by the engine. 0 is a degenerate empty board.
const (
	MinBoardSize = 0
	MaxBoardSize = 17
)

// GameConfig holds configuration for starting a new game. Board size is the
// only user-adjustable parameter.
type GameConfig struct {
	BoardSize int // 0-17
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{BoardSize: 11}
}

// ClampSize forces size into the accepted board size range.
func ClampSize(size int) int {
	if size < MinBoardSize {
		return MinBoardSize
	}
	if size > MaxBoardSize {
		return MaxBoardSize
	}
	return size
}
