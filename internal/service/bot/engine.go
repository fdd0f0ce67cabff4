package bot

import (
	"github.com/lazygeek007/connect-four/internal/domain"
)

// Difficulty selects how far ahead the computer looks. The search
// algorithm never changes between levels, only its depth.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty string from user input.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

// SearchDepth maps a difficulty preset to a Minimax depth.
func SearchDepth(difficulty Difficulty) int {
	switch difficulty {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return DEFAULT_DEPTH
	case DifficultyHard:
		return 5
	default:
		return DEFAULT_DEPTH
	}
}

// ClampDepth bounds an explicit depth override to 1..MAX_SEARCH_DEPTH.
func ClampDepth(depth int) int {
	if depth < 1 {
		return DEFAULT_DEPTH
	}
	if depth > MAX_SEARCH_DEPTH {
		return MAX_SEARCH_DEPTH
	}
	return depth
}

// ChooseColumn selects the computer's move at the given difficulty.
func ChooseColumn(b *domain.Board, computer domain.PlayerID, difficulty Difficulty) (int, error) {
	return BestMove(b, computer, SearchDepth(difficulty))
}
