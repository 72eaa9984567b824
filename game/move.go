package game

import "fmt"

// Move places a stone of a color on a cell, indexed row-major from the
// top-left corner.
type Move struct {
	Cell  int
	Color Color
}

func (m Move) String() string {
	if m.Cell < 0 || m.Cell >= Cells {
		return fmt.Sprintf("%s[invalid %d]", m.Color, m.Cell)
	}
	col := m.Cell % Size
	row := m.Cell / Size
	// Column letters skip I, following go coordinate convention
	letter := rune('A' + col)
	if letter >= 'I' {
		letter++
	}
	return fmt.Sprintf("%s[%c%d]", m.Color, letter, Size-row)
}
