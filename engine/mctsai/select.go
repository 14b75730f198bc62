package mctsai

import (
	"errors"

	"golang.org/x/exp/rand"

	"termhex/hex"
	"termhex/mcts"
)

// Errors reported when the search violates its contract. Neither should
// occur in normal play; both are surfaced rather than papered over with a
// default move.
var (
	ErrNoRecommendation = errors.New("search returned no recommendation")
	ErrInvalidAction    = errors.New("search recommended an illegal move")
)

// selectMove runs a fresh search over the current game and returns the
// recommended cell. The RNG is rebuilt from the fixed seed on every call,
// so the same position always yields the same move. The game itself is
// never mutated; the search plays on clones.
func (e *AIEngine) selectMove() (hex.Coords, error) {
	rng := rand.New(rand.NewSource(searchSeed))
	result := e.searcher.SuggestAction(searchState{game: e.game}, rng)

	action, ok := result.BestAction()
	if !ok {
		return hex.Coords{}, ErrNoRecommendation
	}
	c, ok := action.(hex.Coords)
	if !ok {
		return hex.Coords{}, ErrInvalidAction
	}
	if !e.game.InBounds(c) {
		return hex.Coords{}, ErrInvalidAction
	}
	if _, occupied := e.game.ColorAt(c); occupied {
		return hex.Coords{}, ErrInvalidAction
	}
	return c, nil
}

// searchState adapts a hex game to the searcher's State interface.
type searchState struct {
	game *hex.Game
}

func (s searchState) Player() int {
	return int(s.game.CurrentPlayer())
}

func (s searchState) LegalActions() []mcts.Action {
	moves := s.game.LegalMoves()
	actions := make([]mcts.Action, len(moves))
	for i, m := range moves {
		actions[i] = m
	}
	return actions
}

func (s searchState) Play(a mcts.Action) mcts.State {
	next := s.game.Clone()
	if err := next.Play(a.(hex.Coords)); err != nil {
		// The searcher only plays actions it was handed as legal.
		panic(err)
	}
	return searchState{game: next}
}

func (s searchState) Winner() int {
	winner, ok := s.game.Winner()
	if !ok {
		return 0
	}
	return int(winner)
}
