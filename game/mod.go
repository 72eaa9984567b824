package game

// Color identifies one of the two players. The zero value Empty is only
// valid for board cells, never as a side to move.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// State should be immutable - Apply always returns a new copy and reports
// whether the move was legal. Legality is only discoverable by attempting
// the move; candidates from CandidateMoves may be illegal.
type State interface {
	Apply(Move) (State, bool)
	CandidateMoves(Color) []Move
}
