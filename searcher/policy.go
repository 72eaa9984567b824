package searcher

import (
	"math"

	"nogo/game"
)

// selectLeaf descends from id to a leaf, at each level taking the child
// with the highest selection score. Ties keep the earliest child, and an
// unvisited child always wins, so every child is tried once before any
// sibling is revisited.
func (t *tree) selectLeaf(id nodeID, role game.Color, exploration float64) nodeID {
	for !t.at(id).leaf {
		children := t.at(id).children
		best := children[0]
		bestScore := t.score(children[0], role, exploration)
		for _, cid := range children[1:] {
			if s := t.score(cid, role, exploration); s > bestScore {
				bestScore = s
				best = cid
			}
		}
		id = best
	}
	return id
}

// score computes the UCT value of a child from the searching side's
// perspective. Win counts are kept from that one perspective throughout the
// tree; on layers where the opponent made the incoming move the win rate is
// flipped.
func (t *tree) score(id nodeID, role game.Color, exploration float64) float64 {
	nd := t.at(id)
	if nd.visits == 0 {
		return math.Inf(1)
	}

	winRate := float64(nd.wins) / float64(nd.visits)
	if nd.toMove == role {
		// The move into this node was the opponent's.
		winRate = 1 - winRate
	}
	parentVisits := t.at(nd.parent).visits
	return winRate + exploration*math.Sqrt(math.Log(float64(parentVisits))/float64(nd.visits))
}
