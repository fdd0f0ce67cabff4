package bot

import (
	"github.com/lazygeek007/connect-four/internal/domain"
)

const (
	// Terminal sentinels, returned ahead of any window sums
	MINIMAX_WIN  = 1000000
	MINIMAX_LOSS = -1000000
	MINIMAX_DRAW = 0

	// Window scores, mirrored with a negative sign for the opponent
	SCORE_FOUR_IN_WINDOW  = 100000 // four in one window
	SCORE_THREE_IN_WINDOW = 50     // three plus one empty: a move from winning
	SCORE_TWO_IN_WINDOW   = 5      // two plus two empty: building a threat
	SCORE_CENTER          = 3      // per token in the center column
)

// ScorePosition calculates the heuristic value of the board from
// perspective's point of view, higher meaning better. Scoring is
// symmetric: ScorePosition(b, p) == -ScorePosition(b, Opponent(p))
// for every board.
func ScorePosition(b *domain.Board, perspective domain.PlayerID) int {
	opponent := domain.Opponent(perspective)

	// terminal positions override the window sums entirely
	if b.HasConnectFour(perspective) {
		return MINIMAX_WIN
	}
	if b.HasConnectFour(opponent) {
		return MINIMAX_LOSS
	}
	if b.IsFull() {
		return MINIMAX_DRAW
	}

	score := 0

	// horizontal windows
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col+domain.ToWin <= domain.Columns; col++ {
			score += windowScore(b, row, col, 0, 1, perspective, opponent)
		}
	}
	// vertical windows
	for col := 0; col < domain.Columns; col++ {
		for row := 0; row+domain.ToWin <= domain.Rows; row++ {
			score += windowScore(b, row, col, 1, 0, perspective, opponent)
		}
	}
	// diagonals rising to the right
	for row := 0; row+domain.ToWin <= domain.Rows; row++ {
		for col := 0; col+domain.ToWin <= domain.Columns; col++ {
			score += windowScore(b, row, col, 1, 1, perspective, opponent)
		}
	}
	// diagonals falling to the right
	for row := domain.ToWin - 1; row < domain.Rows; row++ {
		for col := 0; col+domain.ToWin <= domain.Columns; col++ {
			score += windowScore(b, row, col, -1, 1, perspective, opponent)
		}
	}

	// center control: more winning lines pass through the middle column
	center := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		switch b.At(row, center) {
		case perspective:
			score += SCORE_CENTER
		case opponent:
			score -= SCORE_CENTER
		}
	}

	return score
}

// windowScore rates the four-cell window starting at (row, col) and
// stepping by (deltaRow, deltaCol). A window holding tokens of both
// players is a dead line and scores zero.
func windowScore(b *domain.Board, row, col, deltaRow, deltaCol int, perspective, opponent domain.PlayerID) int {
	mine, theirs := 0, 0
	for i := 0; i < domain.ToWin; i++ {
		switch b.At(row+i*deltaRow, col+i*deltaCol) {
		case perspective:
			mine++
		case opponent:
			theirs++
		}
	}
	empty := domain.ToWin - mine - theirs

	switch {
	case mine == domain.ToWin:
		return SCORE_FOUR_IN_WINDOW
	case theirs == domain.ToWin:
		return -SCORE_FOUR_IN_WINDOW
	case mine > 0 && theirs > 0:
		return 0
	case mine == 3 && empty == 1:
		return SCORE_THREE_IN_WINDOW
	case mine == 2 && empty == 2:
		return SCORE_TWO_IN_WINDOW
	case theirs == 3 && empty == 1:
		return -SCORE_THREE_IN_WINDOW
	case theirs == 2 && empty == 2:
		return -SCORE_TWO_IN_WINDOW
	}
	return 0
}
