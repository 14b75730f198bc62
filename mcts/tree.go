package mcts

// The search tree is backed by an arena: nodes live in a flat slice and
// refer to each other by index, so backup can walk shared ancestors without
// ownership cycles.

const noNode = int32(-1)

type node struct {
	parent   int32
	action   Action
	player   int // player who took action to reach this node
	children []int32
	rewards  float64
	visits   int
	expanded bool
}

// Tree is the arena of explored nodes produced by one search.
type Tree struct {
	nodes []node
}

func (t *Tree) add(parent int32, a Action, player int) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		parent: parent,
		action: a,
		player: player,
	})
	if parent != noNode {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

// Action returns the action that leads to the given node.
func (t *Tree) Action(id int32) Action {
	return t.nodes[id].action
}

// Visits returns the visit count of the given node.
func (t *Tree) Visits(id int32) int {
	return t.nodes[id].visits
}

// Len returns the number of explored nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// robustChild returns the most-visited child of id, or noNode if id has no
// children. Ties resolve to the earliest-added child.
func (t *Tree) robustChild(id int32) int32 {
	best := noNode
	bestVisits := -1
	for _, child := range t.nodes[id].children {
		if v := t.nodes[child].visits; v > bestVisits {
			bestVisits = v
			best = child
		}
	}
	return best
}
