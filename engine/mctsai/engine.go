// Package mctsai implements engine.GameEngine with an in-process Monte
// Carlo tree search opponent. It replaces an external engine subprocess:
// the human move and the engine's reply are applied synchronously within
// one PlayMove call, so the UI never observes a half-played turn.
package mctsai

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"termhex/engine"
	"termhex/hex"
	"termhex/mcts"
)

// Search constants. The fixed seed makes the engine's play reproducible for
// a given board state.
const (
	searchIterations = 10
	exploration      = 0.5
	searchSeed       = 123467123321

	// The human always moves first.
	humanColor = hex.Red
)

// AIEngine implements engine.GameEngine over a local game and searcher.
type AIEngine struct {
	id       uuid.UUID
	config   engine.GameConfig
	game     *hex.Game
	searcher *mcts.Searcher

	moveCallback func(x, y int, color hex.Color, game *hex.Game)
	endCallback  func(winner hex.Color)

	mu sync.Mutex
}

// New creates an engine for a fresh game with the given configuration.
func New(cfg engine.GameConfig) *AIEngine {
	cfg.BoardSize = engine.ClampSize(cfg.BoardSize)
	return &AIEngine{
		id:     uuid.New(),
		config: cfg,
		game:   hex.NewGame(cfg.BoardSize),
		searcher: mcts.NewSearcher(
			mcts.WithIterations(searchIterations),
			mcts.WithExploration(exploration),
		),
	}
}

// Connect initializes the session.
func (e *AIEngine) Connect() error {
	log.Info().
		Str("session", e.id.String()).
		Int("size", e.config.BoardSize).
		Msg("new game")
	return nil
}

// Game returns the current game state.
func (e *AIEngine) Game() *hex.Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game
}

// IsMyTurn reports whether the human is to move.
func (e *AIEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Status() == hex.Ongoing && e.game.CurrentPlayer() == humanColor
}

// PlayMove applies the human move at (x, y), then the engine's reply if the
// game is still ongoing. Illegal human moves return the rules error and
// change nothing. A search failure is returned after the human move stands:
// the turn does not advance further.
func (e *AIEngine) PlayMove(x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := hex.Coords{X: x, Y: y}
	if err := e.game.Play(c); err != nil {
		return err
	}
	e.notifyMove(c, humanColor)
	if e.finishIfOver() {
		return nil
	}

	reply, err := e.selectMove()
	if err != nil {
		log.Error().
			Str("session", e.id.String()).
			Err(err).
			Msg("engine failed to select a move")
		return fmt.Errorf("engine move: %w", err)
	}
	if err := e.game.Play(reply); err != nil {
		// selectMove already vetted the cell.
		log.Error().
			Str("session", e.id.String()).
			Err(err).
			Msg("engine move rejected by rules")
		return fmt.Errorf("engine move: %w", ErrInvalidAction)
	}
	e.notifyMove(reply, humanColor.Opponent())
	e.finishIfOver()
	return nil
}

// OnMove registers the per-move callback.
func (e *AIEngine) OnMove(callback func(x, y int, color hex.Color, game *hex.Game)) {
	e.moveCallback = callback
}

// OnGameEnd registers the game-over callback.
func (e *AIEngine) OnGameEnd(callback func(winner hex.Color)) {
	e.endCallback = callback
}

// Close ends the session.
func (e *AIEngine) Close() {
	log.Info().Str("session", e.id.String()).Msg("session closed")
}

func (e *AIEngine) notifyMove(c hex.Coords, color hex.Color) {
	log.Debug().
		Str("session", e.id.String()).
		Int("x", c.X).
		Int("y", c.Y).
		Stringer("color", color).
		Msg("move played")
	if e.moveCallback != nil {
		e.moveCallback(c.X, c.Y, color, e.game)
	}
}

func (e *AIEngine) finishIfOver() bool {
	winner, ok := e.game.Winner()
	if !ok {
		return false
	}
	log.Info().
		Str("session", e.id.String()).
		Stringer("winner", winner).
		Int("moves", e.game.MoveNumber()).
		Msg("game finished")
	if e.endCallback != nil {
		e.endCallback(winner)
	}
	return true
}
