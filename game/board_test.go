package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardApply(t *testing.T) {
	t.Run("placing on an empty cell", func(t *testing.T) {
		b := Board{}

		got, ok := b.Apply(Move{Cell: 40, Color: Black})

		require.True(t, ok, "placement on an empty board should be legal")
		require.Equal(t, Black, got.(Board).Stone(40), "new state should hold the stone")
		require.Equal(t, Empty, b.Stone(40), "original board should be untouched")
	})

	t.Run("placing on an occupied cell", func(t *testing.T) {
		b, err := Parse(`
			x........
			.........
			.........
			.........
			.........
			.........
			.........
			.........
			.........
		`)
		require.NoError(t, err)

		got, ok := b.Apply(Move{Cell: 0, Color: White})

		require.False(t, ok, "occupied cell should be illegal")
		require.Equal(t, b, got.(Board), "illegal move should return the board unchanged")
	})

	t.Run("suicide is illegal", func(t *testing.T) {
		// The corner cell is surrounded by white; a black stone there
		// would have no liberties.
		b, err := Parse(`
			.o.......
			oo.......
			.........
			.........
			.........
			.........
			.........
			.........
			.........
		`)
		require.NoError(t, err)

		_, ok := b.Apply(Move{Cell: 0, Color: Black})

		require.False(t, ok, "suicide should be illegal")
	})

	t.Run("capturing is illegal", func(t *testing.T) {
		// White at A9 has one liberty left; black filling it would
		// capture, which NoGo forbids.
		b, err := Parse(`
			o.x......
			x........
			.........
			.........
			.........
			.........
			.........
			.........
			.........
		`)
		require.NoError(t, err)

		_, ok := b.Apply(Move{Cell: 1, Color: Black})

		require.False(t, ok, "a capturing move should be illegal")
	})

	t.Run("filling a shared liberty of a healthy group", func(t *testing.T) {
		// The white group keeps liberties after black plays beside it.
		b, err := Parse(`
			oo.......
			.........
			.........
			.........
			.........
			.........
			.........
			.........
			.........
		`)
		require.NoError(t, err)

		_, ok := b.Apply(Move{Cell: 2, Color: Black})

		require.True(t, ok, "a non-capturing contact move should be legal")
	})

	t.Run("out of range cell", func(t *testing.T) {
		b := Board{}

		_, ok := b.Apply(Move{Cell: Cells, Color: Black})

		require.False(t, ok)
	})

	t.Run("empty is not a playable color", func(t *testing.T) {
		b := Board{}

		_, ok := b.Apply(Move{Cell: 0, Color: Empty})

		require.False(t, ok)
	})
}

func TestBoardMoves(t *testing.T) {
	t.Run("candidates cover every cell", func(t *testing.T) {
		b := Board{}

		candidates := b.CandidateMoves(Black)

		require.Len(t, candidates, Cells)
	})

	t.Run("legal moves on an empty board", func(t *testing.T) {
		b := Board{}

		require.Len(t, b.LegalMoves(Black), Cells,
			"every placement should be legal on an empty board")
	})

	t.Run("legal moves exclude illegal placements", func(t *testing.T) {
		b, err := Parse(`
			.o.......
			oo.......
			.........
			.........
			.........
			.........
			.........
			.........
			.........
		`)
		require.NoError(t, err)

		for _, m := range b.LegalMoves(Black) {
			_, ok := b.Apply(m)
			require.True(t, ok, "move %v should be legal", m)
		}
		require.Len(t, b.LegalMoves(Black), Cells-3-1,
			"occupied cells and the suicide corner should be excluded")
	})
}

func TestParse(t *testing.T) {
	t.Run("round trip through String", func(t *testing.T) {
		b, err := Parse(`
			x.o......
			.........
			.........
			.........
			....x....
			.........
			.........
			.........
			......o..
		`)
		require.NoError(t, err)

		again, err := Parse(b.String())
		require.NoError(t, err)
		require.Equal(t, b, again)
	})

	t.Run("rejects bad diagrams", func(t *testing.T) {
		_, err := Parse("xx")
		require.Error(t, err)

		_, err = Parse("?........\n.........\n.........\n.........\n.........\n.........\n.........\n.........\n.........")
		require.Error(t, err)
	})
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "black[A9]", Move{Cell: 0, Color: Black}.String())
	require.Equal(t, "white[J1]", Move{Cell: Cells - 1, Color: White}.String())
}
