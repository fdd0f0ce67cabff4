package domain

// Board is the 7x6 grid. Row 0 is the bottom row, so heights[col] is
// both the number of tokens in a column and the next free row.
type Board struct {
	grid    [Rows][Columns]PlayerID
	heights [Columns]int
}

func NewBoard() *Board {
	return &Board{}
}

// LegalMoves returns the playable columns in ascending order. An empty
// result means the board is full.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.heights[col] < Rows {
			moves = append(moves, col)
		}
	}
	return moves
}

// DropToken places player's token in the lowest empty row of column and
// returns that row. On error the board is left exactly as it was.
func (b *Board) DropToken(column int, player PlayerID) (int, error) {
	if player != Player1 && player != Player2 {
		return -1, ErrInvalidPlayer
	}
	if column < 0 || column >= Columns {
		return -1, ErrIllegalMove
	}
	row := b.heights[column]
	if row >= Rows {
		return -1, ErrIllegalMove
	}
	b.grid[row][column] = player
	b.heights[column]++
	return row, nil
}

// UndoLast removes the topmost token from column, restoring the prior
// height.
func (b *Board) UndoLast(column int) error {
	if column < 0 || column >= Columns {
		return ErrIllegalMove
	}
	if b.heights[column] == 0 {
		return ErrIllegalMove
	}
	b.heights[column]--
	b.grid[b.heights[column]][column] = Empty
	return nil
}

func (b *Board) At(row, column int) PlayerID {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}
	return b.grid[row][column]
}

func (b *Board) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	return b.heights[column]
}

func (b *Board) MoveCount() int {
	count := 0
	for col := 0; col < Columns; col++ {
		count += b.heights[col]
	}
	return count
}

func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b.heights[col] < Rows {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the board. Grid and heights are value
// arrays, so copying the struct copies everything.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Cells exports the grid as a row-major slice with row 0 at the bottom.
func (b *Board) Cells() [][]PlayerID {
	cells := make([][]PlayerID, Rows)
	for row := 0; row < Rows; row++ {
		cells[row] = make([]PlayerID, Columns)
		copy(cells[row], b.grid[row][:])
	}
	return cells
}

// RestoreBoard rebuilds a board from exported cells. It rejects wrong
// dimensions, unknown cell values and floating tokens.
func RestoreBoard(cells [][]PlayerID) (*Board, error) {
	if len(cells) != Rows {
		return nil, ErrInvalidBoard
	}
	b := &Board{}
	for row := 0; row < Rows; row++ {
		if len(cells[row]) != Columns {
			return nil, ErrInvalidBoard
		}
		for col := 0; col < Columns; col++ {
			switch cells[row][col] {
			case Empty, Player1, Player2:
				b.grid[row][col] = cells[row][col]
			default:
				return nil, ErrInvalidBoard
			}
		}
	}
	for col := 0; col < Columns; col++ {
		height := 0
		for height < Rows && b.grid[height][col] != Empty {
			height++
		}
		for row := height; row < Rows; row++ {
			if b.grid[row][col] != Empty {
				return nil, ErrInvalidBoard
			}
		}
		b.heights[col] = height
	}
	return b, nil
}
