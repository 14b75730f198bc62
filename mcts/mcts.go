// Package mcts implements a bounded Monte Carlo tree search: UCT selection,
// full expansion of visited nodes, random playouts to terminal states, and a
// robust-child (most visited) final recommendation. All randomness comes
// from the caller's source, so a fixed seed and iteration count make the
// search fully deterministic.
package mcts

import (
	"math"

	"golang.org/x/exp/rand"
)

// Action is a move in the searched game. The searcher treats it as opaque.
type Action any

// State is the game as seen by the searcher. Play must not mutate the
// receiver; it returns the successor state. A state with no legal actions is
// terminal and must report its winner.
type State interface {
	Player() int
	LegalActions() []Action
	Play(a Action) State
	Winner() int
}

// Result is the outcome of one search: the explored tree and the id of the
// recommended top-level node. Best is negative when the root has no children
// to recommend.
type Result struct {
	Tree *Tree
	Best int32
}

// BestAction returns the recommended action, or false when the search could
// not identify one.
func (r Result) BestAction() (Action, bool) {
	if r.Best < 0 {
		return nil, false
	}
	return r.Tree.Action(r.Best), true
}

type Option func(*Searcher)

// WithIterations sets the search budget in playout iterations.
func WithIterations(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.iterations = n
		}
	}
}

// WithExploration sets the UCT exploration parameter.
func WithExploration(c float64) Option {
	return func(s *Searcher) {
		if c > 0 {
			s.exploration = c
		}
	}
}

// Searcher runs iteration-bounded searches. It holds no per-search state and
// may be reused across moves.
type Searcher struct {
	iterations  int
	exploration float64
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{
		iterations:  100,
		exploration: math.Sqrt2,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// SuggestAction searches from root for the configured number of iterations
// and recommends the most-visited child of the root.
func (s *Searcher) SuggestAction(root State, rng *rand.Rand) Result {
	tree := &Tree{}
	rootID := tree.add(noNode, nil, 0)

	for i := 0; i < s.iterations; i++ {
		s.simulate(tree, rootID, root, rng)
	}

	return Result{Tree: tree, Best: tree.robustChild(rootID)}
}

// simulate runs one search episode: select down the tree, expand the leaf,
// play out to a terminal state, and back the result up to the root.
func (s *Searcher) simulate(tree *Tree, rootID int32, rootState State, rng *rand.Rand) {
	id := rootID
	state := rootState

	// Selection: descend through expanded nodes by UCT score.
	for tree.nodes[id].expanded && len(tree.nodes[id].children) > 0 {
		id = s.selectChild(tree, id)
		state = state.Play(tree.nodes[id].action)
	}

	// Expansion: add all children of the leaf at once, then continue the
	// episode from one of them.
	if !tree.nodes[id].expanded {
		tree.nodes[id].expanded = true
		actions := state.LegalActions()
		player := state.Player()
		for _, a := range actions {
			tree.add(id, a, player)
		}
		if children := tree.nodes[id].children; len(children) > 0 {
			id = children[rng.Intn(len(children))]
			state = state.Play(tree.nodes[id].action)
		}
	}

	winner := playout(state, rng)
	backup(tree, id, winner)
}

// selectChild picks the child of id maximizing the UCT score
// q/n + sqrt(c²·ln(N)/n). Unvisited children score infinite and are taken
// first.
func (s *Searcher) selectChild(tree *Tree, id int32) int32 {
	normalizer := s.exploration * s.exploration * math.Log(float64(tree.nodes[id].visits))

	best := noNode
	bestScore := math.Inf(-1)
	for _, child := range tree.nodes[id].children {
		n := &tree.nodes[child]
		if n.visits == 0 {
			return child
		}
		score := n.rewards/float64(n.visits) + math.Sqrt(normalizer/float64(n.visits))
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// playout plays uniformly random legal actions until the game ends and
// returns the winner.
func playout(state State, rng *rand.Rand) int {
	actions := state.LegalActions()
	for len(actions) > 0 {
		state = state.Play(actions[rng.Intn(len(actions))])
		actions = state.LegalActions()
	}
	return state.Winner()
}

// backup walks parent links to the root, crediting every node whose inbound
// action was played by the winner.
func backup(tree *Tree, id int32, winner int) {
	for id != noNode {
		n := &tree.nodes[id]
		n.visits++
		if n.player == winner {
			n.rewards++
		}
		id = n.parent
	}
}
