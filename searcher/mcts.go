package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"nogo/game"
)

// checkInterval is the number of simulation cycles between wall-clock
// reads. A cycle in progress always completes, so a pathologically slow
// batch can overshoot the budget by up to one interval's worth of work.
const checkInterval = 500

// MCTS decides moves by Monte Carlo tree search: a fresh tree is grown per
// decision with uniform random rollouts, and the most-visited root child is
// committed. The engine is single-threaded and not safe for concurrent
// decisions on one instance.
type MCTS struct {
	config  Config
	rng     *rand.Rand
	mine    []game.Move // rollout candidate pool for the search side
	theirs  []game.Move // rollout candidate pool for the opponent
	metrics metricsCollector
	last    MoveMetrics
}

func NewMCTS(config Config) (*MCTS, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &MCTS{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}, nil
}

func (m *MCTS) Role() game.Color {
	return m.config.Role
}

// Metrics reports search statistics for the most recent decision.
func (m *MCTS) Metrics() MoveMetrics {
	return m.last
}

// Decide searches from state and returns the committed move. It reports
// false when the search side has no legal move at all; no simulation is run
// in that case.
func (m *MCTS) Decide(state game.State) (game.Move, bool) {
	m.metrics.start()

	// Candidate pools are built once per decision and reshuffled by each
	// rollout.
	m.mine = state.CandidateMoves(m.config.Role)
	m.theirs = state.CandidateMoves(m.config.Role.Opponent())

	t := newTree(state, m.config.Role)
	if m.expand(t, rootID) == rootID {
		m.last = m.metrics.complete(len(t.nodes))
		return game.Move{}, false
	}

	deadline := m.metrics.startTime.Add(m.config.Budget)
	for {
		leaf := t.selectLeaf(rootID, m.config.Role, m.config.Exploration)
		simulated := m.expand(t, leaf)
		score := m.rollout(t.at(simulated))
		t.backpropagate(simulated, score)
		m.metrics.addCycle()

		if m.config.Simulations > 0 {
			if m.metrics.cycles >= m.config.Simulations {
				break
			}
		} else if m.metrics.cycles%checkInterval == 0 && time.Now().After(deadline) {
			break
		}
	}

	move, ok := t.bestMove()
	m.last = m.metrics.complete(len(t.nodes))
	log.Debug().
		Stringer("move", move).
		Int("cycles", m.last.Cycles).
		Int("nodes", m.last.TreeSize).
		Dur("elapsed", m.last.Duration).
		Msg("search complete")
	return move, ok
}

// expand materializes every legal child of a leaf, or marks it terminal
// when the side to move has no legal reply. Child order is shuffled so the
// first-visit pass through never-visited children carries no enumeration
// bias. Returns one new child to simulate, or the leaf itself when
// terminal.
func (m *MCTS) expand(t *tree, id nodeID) nodeID {
	if t.at(id).terminal {
		return id
	}

	state := t.at(id).state
	mover := t.at(id).toMove
	for _, candidate := range state.CandidateMoves(mover) {
		next, ok := state.Apply(candidate)
		if !ok {
			continue
		}
		t.add(id, next, mover.Opponent(), candidate)
	}

	nd := t.at(id)
	if len(nd.children) == 0 {
		nd.terminal = true
		return id
	}

	m.rng.Shuffle(len(nd.children), func(i, j int) {
		nd.children[i], nd.children[j] = nd.children[j], nd.children[i]
	})
	nd.leaf = false
	return nd.children[0]
}

// rollout plays a uniform random game from the node to completion and
// scores it 1 when the search side wins, 0 otherwise. Terminal nodes score
// directly from their terminal status: the side to move is stuck and loses.
func (m *MCTS) rollout(nd *node) int {
	if nd.terminal {
		if nd.toMove != m.config.Role {
			return 1
		}
		return 0
	}

	m.rng.Shuffle(len(m.mine), func(i, j int) {
		m.mine[i], m.mine[j] = m.mine[j], m.mine[i]
	})
	m.rng.Shuffle(len(m.theirs), func(i, j int) {
		m.theirs[i], m.theirs[j] = m.theirs[j], m.theirs[i]
	})

	state := nd.state
	toMove := nd.toMove
	for {
		pool := m.mine
		if toMove != m.config.Role {
			pool = m.theirs
		}

		applied := false
		for _, candidate := range pool {
			if next, ok := state.Apply(candidate); ok {
				state = next
				applied = true
				break
			}
		}
		if !applied { // toMove is stuck and loses
			m.metrics.addFullPlayout()
			if toMove == m.config.Role {
				return 0
			}
			return 1
		}
		toMove = toMove.Opponent()
	}
}
