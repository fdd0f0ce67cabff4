package domain

import (
	"strings"
)

// TokenGlyph is the one-character display form of a cell.
func TokenGlyph(player PlayerID) string {
	switch player {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return "."
}

// Render draws the board as text with the top row first and column
// indices above the grid.
func Render(b *Board) string {
	var sb strings.Builder
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + col))
	}
	sb.WriteByte('\n')
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(TokenGlyph(b.At(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard is the inverse of Render: six lines of seven glyphs
// ('.', 'X', 'O'), top row first. Spaces, blank lines and a column
// index header are ignored, so Render output parses back unchanged.
func ParseBoard(text string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(line, " ", "")
		line = strings.TrimSpace(line)
		if line == "" || strings.Trim(line, "0123456789") == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		return nil, ErrInvalidBoard
	}

	cells := make([][]PlayerID, Rows)
	for i := range cells {
		cells[i] = make([]PlayerID, Columns)
	}
	for i, line := range lines {
		if len(line) != Columns {
			return nil, ErrInvalidBoard
		}
		row := Rows - 1 - i
		for col := 0; col < Columns; col++ {
			switch line[col] {
			case '.':
				cells[row][col] = Empty
			case 'X', 'x':
				cells[row][col] = Player1
			case 'O', 'o':
				cells[row][col] = Player2
			default:
				return nil, ErrInvalidBoard
			}
		}
	}
	return RestoreBoard(cells)
}
