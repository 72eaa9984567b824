package game

import (
	"fmt"
	"strings"
)

const (
	Size  = 9
	Cells = Size * Size
)

// Board is a NoGo position with value semantics: assignment copies the
// whole position, so Apply can work on a private copy for free.
//
// NoGo legality: the target cell must be empty, the move must not capture
// any opponent group, and it must not be suicide. The player to move with
// no legal placement loses the game.
type Board struct {
	cells [Cells]Color
}

// Apply attempts the move on a copy of the board. It reports false and
// returns the receiver unchanged when the move is illegal.
func (b Board) Apply(m Move) (State, bool) {
	if m.Cell < 0 || m.Cell >= Cells || b.cells[m.Cell] != Empty {
		return b, false
	}
	if m.Color != Black && m.Color != White {
		return b, false
	}

	after := b
	after.cells[m.Cell] = m.Color

	// Capturing is forbidden: no adjacent opponent group may be left
	// without liberties.
	opponent := m.Color.Opponent()
	for _, n := range neighbors(m.Cell) {
		if after.cells[n] == opponent && !after.hasLiberty(n) {
			return b, false
		}
	}

	// Suicide is forbidden: the placed stone's group needs a liberty.
	if !after.hasLiberty(m.Cell) {
		return b, false
	}

	return after, true
}

// CandidateMoves lists every placement for the color, legal or not.
func (b Board) CandidateMoves(c Color) []Move {
	moves := make([]Move, Cells)
	for i := range moves {
		moves[i] = Move{Cell: i, Color: c}
	}
	return moves
}

// LegalMoves filters the candidates down to the placements Apply accepts.
func (b Board) LegalMoves(c Color) []Move {
	var moves []Move
	for _, m := range b.CandidateMoves(c) {
		if _, ok := b.Apply(m); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (b Board) Stone(cell int) Color {
	return b.cells[cell]
}

// hasLiberty flood-fills the group containing cell and reports whether any
// of its stones touches an empty cell.
func (b Board) hasLiberty(cell int) bool {
	color := b.cells[cell]
	var visited [Cells]bool
	stack := []int{cell}
	visited[cell] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range neighbors(cur) {
			switch b.cells[n] {
			case Empty:
				return true
			case color:
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return false
}

func neighbors(cell int) []int {
	ns := make([]int, 0, 4)
	col := cell % Size
	if cell >= Size {
		ns = append(ns, cell-Size)
	}
	if cell < Cells-Size {
		ns = append(ns, cell+Size)
	}
	if col > 0 {
		ns = append(ns, cell-1)
	}
	if col < Size-1 {
		ns = append(ns, cell+1)
	}
	return ns
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.cells[row*Size+col] {
			case Black:
				sb.WriteByte('x')
			case White:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a board from a diagram in the String format: one row per
// line, '.' empty, 'x' black, 'o' white. Whitespace-only lines are skipped.
func Parse(diagram string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row >= Size {
			return Board{}, fmt.Errorf("too many rows: want %d", Size)
		}
		if len(line) != Size {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", row, len(line), Size)
		}
		for col, ch := range line {
			switch ch {
			case '.':
			case 'x', 'X':
				b.cells[row*Size+col] = Black
			case 'o', 'O':
				b.cells[row*Size+col] = White
			default:
				return Board{}, fmt.Errorf("row %d: unknown cell %q", row, ch)
			}
		}
		row++
	}
	if row != Size {
		return Board{}, fmt.Errorf("got %d rows, want %d", row, Size)
	}
	return b, nil
}
