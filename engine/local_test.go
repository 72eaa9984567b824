package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nogo/agent"
	"nogo/game"
)

func TestLocal(t *testing.T) {
	t.Run("rejects mismatched roles", func(t *testing.T) {
		black := agent.NewRandom(game.Black, 1)
		white := agent.NewRandom(game.White, 2)

		_, err := Local(game.Board{}, white, black)

		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("random versus random finishes with a winner", func(t *testing.T) {
		black := agent.NewRandom(game.Black, 1)
		white := agent.NewRandom(game.White, 2)
		e, err := Local(game.Board{}, black, white)
		require.NoError(t, err)

		winner := e.Run()

		require.Contains(t, []game.Color{game.Black, game.White}, winner)

		// The losing side really is stuck on the final position.
		loser := winner.Opponent()
		require.Empty(t, e.State.(game.Board).LegalMoves(loser),
			"the game should end exactly when a side runs out of moves")
	})
}
