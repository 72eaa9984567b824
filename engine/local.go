package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/game"
)

// Engine runs a local game between two agents on one shared state.
type Engine struct {
	State  game.State
	Agents map[game.Color]agent.Agent
}

func Local(state game.State, black, white agent.Agent) (*Engine, error) {
	if black.Role() != game.Black {
		return nil, fmt.Errorf("black agent has role %s", black.Role())
	}
	if white.Role() != game.White {
		return nil, fmt.Errorf("white agent has role %s", white.Role())
	}
	return &Engine{
		State: state,
		Agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}, nil
}

// Run alternates turns from black until one side has no move, and returns
// the winner. An agent claiming no move is verified against the live state;
// an agent playing an illegal move forfeits.
func (e *Engine) Run() game.Color {
	toMove := game.Black
	turn := 0
	for {
		move, ok := e.Agents[toMove].Decide(e.State)
		if !ok {
			log.Info().
				Stringer("loser", toMove).
				Int("turns", turn).
				Msg("no move available, game over")
			return toMove.Opponent()
		}

		next, legal := e.State.Apply(move)
		if !legal {
			log.Error().
				Stringer("player", toMove).
				Stringer("move", move).
				Msg("agent played an illegal move, forfeiting")
			return toMove.Opponent()
		}

		log.Debug().
			Int("turn", turn).
			Stringer("move", move).
			Msg("move played")

		e.State = next
		toMove = toMove.Opponent()
		turn++
	}
}
