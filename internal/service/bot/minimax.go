package bot

import (
	"math"

	"github.com/lazygeek007/connect-four/internal/domain"
)

const (
	DEFAULT_DEPTH    = 3
	MAX_SEARCH_DEPTH = 8 // no pruning, every extra ply multiplies the tree by ~7
)

// BestMove runs a depth-limited Minimax without pruning and returns the
// column the computer should play. Columns are explored in ascending
// order and ties keep the first best, so repeated calls on the same
// board always pick the same column.
func BestMove(b *domain.Board, computer domain.PlayerID, depth int) (int, error) {
	if computer != domain.Player1 && computer != domain.Player2 {
		return -1, domain.ErrInvalidPlayer
	}
	if depth < 1 {
		depth = DEFAULT_DEPTH
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return -1, domain.ErrNoLegalMove
	}

	human := domain.Opponent(computer)
	bestCol := moves[0]
	bestScore := math.MinInt

	for _, col := range moves {
		child := b.Clone()
		_, _ = child.DropToken(col, computer)
		score := minimax(child, depth-1, false, computer, human)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}
	return bestCol, nil
}

// minimax walks the move tree down to depth plies, alternating between
// the computer (maximizing) and the human (minimizing). Every branch
// owns its own board clone, so no undo bookkeeping crosses call frames.
func minimax(b *domain.Board, depth int, maximizing bool, computer, human domain.PlayerID) int {
	if depth == 0 || isTerminal(b) {
		return ScorePosition(b, computer)
	}

	if maximizing {
		best := math.MinInt
		for _, col := range b.LegalMoves() {
			child := b.Clone()
			_, _ = child.DropToken(col, computer)
			if score := minimax(child, depth-1, false, computer, human); score > best {
				best = score
			}
		}
		return best
	}

	best := math.MaxInt
	for _, col := range b.LegalMoves() {
		child := b.Clone()
		_, _ = child.DropToken(col, human)
		if score := minimax(child, depth-1, true, computer, human); score < best {
			best = score
		}
	}
	return best
}

func isTerminal(b *domain.Board) bool {
	return b.HasConnectFour(domain.Player1) ||
		b.HasConnectFour(domain.Player2) ||
		b.IsFull()
}
