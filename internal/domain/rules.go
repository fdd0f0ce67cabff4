package domain

// this counts consecutive tokens of player walking away from
// (row, column), excluding the starting cell itself
func (b *Board) countInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b.grid[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// winsThrough reports whether player has four in a row on one of the
// four lines passing through (row, column).
func (b *Board) winsThrough(row, column int, player PlayerID) bool {
	directions := [4][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal rising to the right
		{1, -1}, // diagonal falling to the right
	}
	for _, d := range directions {
		run := 1 +
			b.countInDirection(row, column, d[0], d[1], player) +
			b.countInDirection(row, column, -d[0], -d[1], player)
		if run >= ToWin {
			return true
		}
	}
	return false
}

// OutcomeAfter inspects the board right after a token landed at
// (column, row). Only the lines passing through that cell are checked,
// which is enough because every new four in a row contains the newest
// token.
func (b *Board) OutcomeAfter(column, row int) Outcome {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Outcome{Status: StatusActive}
	}
	player := b.grid[row][column]
	if player == Empty {
		return Outcome{Status: StatusActive}
	}
	if b.winsThrough(row, column, player) {
		return Outcome{Status: StatusWon, Winner: player}
	}
	if b.IsFull() {
		return Outcome{Status: StatusDraw}
	}
	return Outcome{Status: StatusActive}
}

// HasConnectFour scans the whole board for four in a row of player.
// Used when there is no last-move information, for example on restored
// positions.
func (b *Board) HasConnectFour(player PlayerID) bool {
	// horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col+ToWin <= Columns; col++ {
			if b.grid[row][col] == player && b.grid[row][col+1] == player &&
				b.grid[row][col+2] == player && b.grid[row][col+3] == player {
				return true
			}
		}
	}
	// vertical
	for col := 0; col < Columns; col++ {
		for row := 0; row+ToWin <= Rows; row++ {
			if b.grid[row][col] == player && b.grid[row+1][col] == player &&
				b.grid[row+2][col] == player && b.grid[row+3][col] == player {
				return true
			}
		}
	}
	// diagonal rising to the right
	for row := 0; row+ToWin <= Rows; row++ {
		for col := 0; col+ToWin <= Columns; col++ {
			if b.grid[row][col] == player && b.grid[row+1][col+1] == player &&
				b.grid[row+2][col+2] == player && b.grid[row+3][col+3] == player {
				return true
			}
		}
	}
	// diagonal falling to the right
	for row := ToWin - 1; row < Rows; row++ {
		for col := 0; col+ToWin <= Columns; col++ {
			if b.grid[row][col] == player && b.grid[row-1][col+1] == player &&
				b.grid[row-2][col+2] == player && b.grid[row-3][col+3] == player {
				return true
			}
		}
	}
	return false
}

// Outcome evaluates the position without last-move information.
func (b *Board) Outcome() Outcome {
	if b.HasConnectFour(Player1) {
		return Outcome{Status: StatusWon, Winner: Player1}
	}
	if b.HasConnectFour(Player2) {
		return Outcome{Status: StatusWon, Winner: Player2}
	}
	if b.IsFull() {
		return Outcome{Status: StatusDraw}
	}
	return Outcome{Status: StatusActive}
}
