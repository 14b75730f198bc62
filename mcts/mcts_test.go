package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// countdown is a take-away game for exercising the searcher: players
// alternate removing 1 or 2 tokens, and taking the last token wins.
type countdown struct {
	remaining int
	player    int
	winner    int
}

func newCountdown(tokens int) countdown {
	return countdown{remaining: tokens, player: 1}
}

func (c countdown) Player() int { return c.player }

func (c countdown) LegalActions() []Action {
	if c.winner != 0 {
		return nil
	}
	var actions []Action
	for take := 1; take <= 2 && take <= c.remaining; take++ {
		actions = append(actions, take)
	}
	return actions
}

func (c countdown) Play(a Action) State {
	take := a.(int)
	next := countdown{remaining: c.remaining - take, player: 3 - c.player}
	if next.remaining == 0 {
		next.winner = c.player
	}
	return next
}

func (c countdown) Winner() int { return c.winner }

func TestSuggestActionDeterministic(t *testing.T) {
	searcher := NewSearcher(WithIterations(10), WithExploration(0.5))

	first := searcher.SuggestAction(newCountdown(9), rand.New(rand.NewSource(123467123321)))
	second := searcher.SuggestAction(newCountdown(9), rand.New(rand.NewSource(123467123321)))

	firstAction, ok := first.BestAction()
	require.True(t, ok, "search should produce a recommendation")
	secondAction, ok := second.BestAction()
	require.True(t, ok, "search should produce a recommendation")

	require.Equal(t, firstAction, secondAction, "same seed and state must suggest the same action")
	require.Equal(t, first.Tree.Len(), second.Tree.Len(), "same seed and state must build the same tree")
}

func TestSuggestActionIsLegal(t *testing.T) {
	searcher := NewSearcher(WithIterations(10), WithExploration(0.5))
	state := newCountdown(7)

	result := searcher.SuggestAction(state, rand.New(rand.NewSource(1)))

	action, ok := result.BestAction()
	require.True(t, ok)
	require.Contains(t, state.LegalActions(), action)
}

func TestSuggestActionFindsWinningMove(t *testing.T) {
	// Taking both remaining tokens wins immediately; every playout through
	// the alternative loses, so the robust child must be the winning take.
	searcher := NewSearcher(WithIterations(200), WithExploration(0.5))

	result := searcher.SuggestAction(newCountdown(2), rand.New(rand.NewSource(42)))

	action, ok := result.BestAction()
	require.True(t, ok)
	require.Equal(t, 2, action)
}

func TestSuggestActionTerminalRoot(t *testing.T) {
	searcher := NewSearcher(WithIterations(10))
	terminal := countdown{remaining: 0, player: 2, winner: 1}

	result := searcher.SuggestAction(terminal, rand.New(rand.NewSource(1)))

	_, ok := result.BestAction()
	require.False(t, ok, "a terminal root has nothing to recommend")
	require.Less(t, result.Best, int32(0))
}

func TestRobustChildIsMostVisited(t *testing.T) {
	tree := &Tree{}
	root := tree.add(noNode, nil, 0)
	a := tree.add(root, 1, 1)
	b := tree.add(root, 2, 1)
	tree.nodes[a].visits = 3
	tree.nodes[b].visits = 7

	require.Equal(t, b, tree.robustChild(root))

	// Ties resolve to the earliest-added child.
	tree.nodes[a].visits = 7
	require.Equal(t, a, tree.robustChild(root))
}

func TestSearcherOptions(t *testing.T) {
	s := NewSearcher(WithIterations(10), WithExploration(0.5))
	require.Equal(t, 10, s.iterations)
	require.Equal(t, 0.5, s.exploration)

	// Invalid values keep the defaults.
	d := NewSearcher(WithIterations(0), WithExploration(-1))
	require.Equal(t, NewSearcher().iterations, d.iterations)
	require.Equal(t, NewSearcher().exploration, d.exploration)
}
