package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazygeek007/connect-four/internal/domain"
)

// boardFrom builds a board from six text rows, top row first,
// '.' empty, 'X' Player1, 'O' Player2.
func boardFrom(t *testing.T, text string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(text)
	require.NoError(t, err)
	return b
}

func TestScorePositionEmptyBoardIsNeutral(t *testing.T) {
	b := domain.NewBoard()
	assert.Equal(t, 0, ScorePosition(b, domain.Player1))
	assert.Equal(t, 0, ScorePosition(b, domain.Player2))
}

func TestScorePositionCenterBonus(t *testing.T) {
	center := boardFrom(t, `
		.......
		.......
		.......
		.......
		.......
		...X...
	`)
	assert.Equal(t, SCORE_CENTER, ScorePosition(center, domain.Player1))
	assert.Equal(t, -SCORE_CENTER, ScorePosition(center, domain.Player2))

	corner := boardFrom(t, `
		.......
		.......
		.......
		.......
		.......
		X......
	`)
	assert.Equal(t, 0, ScorePosition(corner, domain.Player1))
}

func TestScorePositionTwoInWindow(t *testing.T) {
	// X X in the corner sits in exactly one four-cell window
	b := boardFrom(t, `
		.......
		.......
		.......
		.......
		.......
		XX.....
	`)
	assert.Equal(t, SCORE_TWO_IN_WINDOW, ScorePosition(b, domain.Player1))
}

func TestScorePositionThreeInWindow(t *testing.T) {
	// X X X from the corner: one three-window plus one two-window
	b := boardFrom(t, `
		.......
		.......
		.......
		.......
		.......
		XXX....
	`)
	want := SCORE_THREE_IN_WINDOW + SCORE_TWO_IN_WINDOW
	assert.Equal(t, want, ScorePosition(b, domain.Player1))
	assert.Equal(t, -want, ScorePosition(b, domain.Player2))
}

func TestScorePositionMixedWindowsAreDead(t *testing.T) {
	// every window through these tokens holds both players, leaving
	// only the center-column term
	b := boardFrom(t, `
		.......
		.......
		.......
		.......
		.......
		..XOX..
	`)
	assert.Equal(t, -SCORE_CENTER, ScorePosition(b, domain.Player1))
	assert.Equal(t, SCORE_CENTER, ScorePosition(b, domain.Player2))
}

func TestScorePositionDiagonalThreat(t *testing.T) {
	// X climbs a staircase of O support: the rising diagonal window
	// X X X _ scores, the support tokens kill their shared windows
	b := boardFrom(t, `
		.......
		.......
		.......
		..X....
		.XO....
		XOO....
	`)
	// +50 (XXX diagonal) +5 (upper XX pair continuation)
	// -5 (OO row) -5 (OO rising diagonal)
	assert.Equal(t, 45, ScorePosition(b, domain.Player1))
	assert.Equal(t, -45, ScorePosition(b, domain.Player2))
}

func TestScorePositionOpponentThreatIsNegative(t *testing.T) {
	// the must-block board: O threatens at column 4, X holds (0,0)
	b := boardFrom(t, `
		.......
		.......
		.......
		.......
		.......
		XOOO...
	`)
	// -50 (OOO_ window) -5 (OO__ window) -3 (O in the center column)
	assert.Equal(t, -58, ScorePosition(b, domain.Player1))
	assert.Equal(t, 58, ScorePosition(b, domain.Player2))
}

func TestScorePositionTerminalOverrides(t *testing.T) {
	t.Run("own four in a row", func(t *testing.T) {
		b := boardFrom(t, `
			.......
			.......
			..X....
			..X.O..
			..X.O..
			..X.O..
		`)
		assert.Equal(t, MINIMAX_WIN, ScorePosition(b, domain.Player1))
		assert.Equal(t, MINIMAX_LOSS, ScorePosition(b, domain.Player2))
	})

	t.Run("full board draw", func(t *testing.T) {
		b := boardFrom(t, `
			XOXOXOX
			XOXOXOX
			OXOXOXO
			OXOXOXO
			XOXOXOX
			XOXOXOX
		`)
		require.True(t, b.IsFull())
		assert.Equal(t, MINIMAX_DRAW, ScorePosition(b, domain.Player1))
		assert.Equal(t, MINIMAX_DRAW, ScorePosition(b, domain.Player2))
	})
}

func TestScorePositionIsSymmetric(t *testing.T) {
	boards := []*domain.Board{
		domain.NewBoard(),
		boardFrom(t, `
			.......
			.......
			.......
			.......
			...O...
			..XXO..
		`),
		boardFrom(t, `
			.......
			.......
			....O..
			...XO..
			..OXX..
			.XOOX..
		`),
		boardFrom(t, `
			.......
			.......
			.......
			...X...
			...O...
			.OXXO.X
		`),
	}

	for _, b := range boards {
		p1 := ScorePosition(b, domain.Player1)
		p2 := ScorePosition(b, domain.Player2)
		assert.Equal(t, p1, -p2, "board:\n%s", domain.Render(b))
	}
}
