package searcher

import "nogo/game"

type nodeID int32

const (
	rootID nodeID = 0
	noNode nodeID = -1
)

// node is one position in the search tree. Nodes live in the tree's arena
// and reference each other by index, so the whole tree is released at once
// when the decision ends.
type node struct {
	state    game.State
	toMove   game.Color // side to act from this position
	move     game.Move  // move applied to the parent's state; zero at root
	parent   nodeID
	children []nodeID
	visits   int
	wins     int
	leaf     bool // true until expanded
	terminal bool // toMove has no legal move here
}

type tree struct {
	nodes []node
}

// newTree creates a fresh arena holding only the unexpanded root. The root's
// side to move is the side whose move is being decided.
func newTree(state game.State, toMove game.Color) *tree {
	return &tree{nodes: []node{{
		state:  state,
		toMove: toMove,
		parent: noNode,
		leaf:   true,
	}}}
}

// at returns a pointer into the arena. Pointers are invalidated by add, so
// callers re-fetch after growing the tree.
func (t *tree) at(id nodeID) *node {
	return &t.nodes[id]
}

func (t *tree) add(parent nodeID, state game.State, toMove game.Color, move game.Move) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		state:  state,
		toMove: toMove,
		move:   move,
		parent: parent,
		leaf:   true,
	})
	p := t.at(parent)
	p.children = append(p.children, id)
	return id
}

// backpropagate feeds one rollout outcome to the node and every ancestor,
// root inclusive.
func (t *tree) backpropagate(id nodeID, score int) {
	for id != noNode {
		nd := t.at(id)
		nd.wins += score
		nd.visits++
		id = nd.parent
	}
}

// bestMove picks the root child with the most visits, first child winning
// ties. Visit count is a more robust signal than raw win rate under this
// exploration policy.
func (t *tree) bestMove() (game.Move, bool) {
	root := t.at(rootID)
	if len(root.children) == 0 {
		return game.Move{}, false
	}

	best := root.children[0]
	maxVisits := t.at(best).visits
	for _, cid := range root.children[1:] {
		if v := t.at(cid).visits; v > maxVisits {
			maxVisits = v
			best = cid
		}
	}
	return t.at(best).move, true
}
