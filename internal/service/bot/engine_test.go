package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazygeek007/connect-four/internal/domain"
)

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"easy", "medium", "hard"} {
		difficulty, ok := ParseDifficulty(valid)
		assert.True(t, ok)
		assert.Equal(t, Difficulty(valid), difficulty)
	}

	for _, invalid := range []string{"", "EASY", "impossible", "3"} {
		_, ok := ParseDifficulty(invalid)
		assert.False(t, ok, "%q should not parse", invalid)
	}
}

func TestSearchDepthPresets(t *testing.T) {
	assert.Equal(t, 1, SearchDepth(DifficultyEasy))
	assert.Equal(t, DEFAULT_DEPTH, SearchDepth(DifficultyMedium))
	assert.Equal(t, 5, SearchDepth(DifficultyHard))
	assert.Equal(t, DEFAULT_DEPTH, SearchDepth(Difficulty("unknown")))
}

func TestClampDepth(t *testing.T) {
	assert.Equal(t, DEFAULT_DEPTH, ClampDepth(0))
	assert.Equal(t, DEFAULT_DEPTH, ClampDepth(-5))
	assert.Equal(t, 1, ClampDepth(1))
	assert.Equal(t, 6, ClampDepth(6))
	assert.Equal(t, MAX_SEARCH_DEPTH, ClampDepth(MAX_SEARCH_DEPTH))
	assert.Equal(t, MAX_SEARCH_DEPTH, ClampDepth(100))
}

func TestChooseColumnPlaysTheCenterOpening(t *testing.T) {
	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium} {
		col, err := ChooseColumn(domain.NewBoard(), domain.Player1, difficulty)
		require.NoError(t, err)
		assert.Equal(t, 3, col, "difficulty %s", difficulty)
	}
}

func TestChooseColumnHardReturnsALegalColumn(t *testing.T) {
	col, err := ChooseColumn(domain.NewBoard(), domain.Player1, DifficultyHard)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, col, 0)
	assert.Less(t, col, domain.Columns)
}
