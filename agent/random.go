package agent

import (
	"golang.org/x/exp/rand"

	"nogo/game"
)

// Random plays the first legal move from its shuffled candidate pool.
type Random struct {
	role game.Color
	rng  *rand.Rand
}

func NewRandom(role game.Color, seed uint64) *Random {
	return &Random{
		role: role,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Role() game.Color {
	return r.role
}

func (r *Random) Decide(state game.State) (game.Move, bool) {
	pool := state.CandidateMoves(r.role)
	r.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for _, candidate := range pool {
		if _, ok := state.Apply(candidate); ok {
			return candidate, true
		}
	}
	return game.Move{}, false
}
