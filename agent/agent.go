package agent

import "nogo/game"

// Agent plays one side of the game. Decide reports false when the agent has
// no legal move, which loses the game.
type Agent interface {
	Role() game.Color
	Decide(state game.State) (game.Move, bool)
}
