package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeAfterDetectsHorizontalWin(t *testing.T) {
	b := NewBoard()
	for _, column := range []int{1, 2, 3} {
		mustDrop(t, b, column, Player1)
		row := b.Height(column) - 1
		assert.Equal(t, StatusActive, b.OutcomeAfter(column, row).Status)
	}

	row := mustDrop(t, b, 4, Player1)
	outcome := b.OutcomeAfter(4, row)
	assert.Equal(t, StatusWon, outcome.Status)
	assert.Equal(t, Player1, outcome.Winner)
}

func TestOutcomeAfterDetectsHorizontalWinFromTheMiddle(t *testing.T) {
	b := NewBoard()
	mustDrop(t, b, 2, Player2)
	mustDrop(t, b, 3, Player2)
	mustDrop(t, b, 5, Player2)
	row := mustDrop(t, b, 4, Player2)

	outcome := b.OutcomeAfter(4, row)
	assert.Equal(t, StatusWon, outcome.Status)
	assert.Equal(t, Player2, outcome.Winner)
}

func TestOutcomeAfterDetectsVerticalWin(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 3; i++ {
		mustDrop(t, b, 0, Player2)
	}
	row := mustDrop(t, b, 0, Player2)

	outcome := b.OutcomeAfter(0, row)
	assert.Equal(t, StatusWon, outcome.Status)
	assert.Equal(t, Player2, outcome.Winner)
}

func TestOutcomeAfterDetectsRisingDiagonalWin(t *testing.T) {
	b := NewBoard()
	// staircase support so Player1 lands on (0,0) (1,1) (2,2) (3,3)
	mustDrop(t, b, 1, Player2)
	mustDrop(t, b, 2, Player2)
	mustDrop(t, b, 2, Player2)
	mustDrop(t, b, 3, Player2)
	mustDrop(t, b, 3, Player2)
	mustDrop(t, b, 3, Player2)

	mustDrop(t, b, 0, Player1)
	mustDrop(t, b, 1, Player1)
	mustDrop(t, b, 2, Player1)
	row := mustDrop(t, b, 3, Player1)
	require.Equal(t, 3, row)

	outcome := b.OutcomeAfter(3, row)
	assert.Equal(t, StatusWon, outcome.Status)
	assert.Equal(t, Player1, outcome.Winner)
}

func TestOutcomeAfterDetectsFallingDiagonalWin(t *testing.T) {
	b := NewBoard()
	// staircase falling to the right, Player1 on (3,0) (2,1) (1,2) (0,3)
	mustDrop(t, b, 0, Player2)
	mustDrop(t, b, 0, Player2)
	mustDrop(t, b, 0, Player2)
	mustDrop(t, b, 1, Player2)
	mustDrop(t, b, 1, Player2)
	mustDrop(t, b, 2, Player2)

	mustDrop(t, b, 0, Player1)
	mustDrop(t, b, 1, Player1)
	mustDrop(t, b, 2, Player1)
	row := mustDrop(t, b, 3, Player1)
	require.Equal(t, 0, row)

	outcome := b.OutcomeAfter(3, row)
	assert.Equal(t, StatusWon, outcome.Status)
	assert.Equal(t, Player1, outcome.Winner)
}

func TestOutcomeAfterIgnoresBrokenRuns(t *testing.T) {
	b := NewBoard()
	// X X O X on row 0: no win for either player
	mustDrop(t, b, 0, Player1)
	mustDrop(t, b, 1, Player1)
	mustDrop(t, b, 2, Player2)
	row := mustDrop(t, b, 3, Player1)

	assert.Equal(t, StatusActive, b.OutcomeAfter(3, row).Status)
	assert.Equal(t, StatusActive, b.OutcomeAfter(2, 0).Status)
}

func TestOutcomeAfterThreeInARowIsNotAWin(t *testing.T) {
	b := NewBoard()
	mustDrop(t, b, 1, Player1)
	mustDrop(t, b, 2, Player1)
	row := mustDrop(t, b, 3, Player1)

	assert.Equal(t, StatusActive, b.OutcomeAfter(3, row).Status)
}

func TestOutcomeAfterReportsDrawOnFullBoard(t *testing.T) {
	b, err := RestoreBoard(stripedCells())
	require.NoError(t, err)

	outcome := b.OutcomeAfter(6, Rows-1)
	assert.Equal(t, StatusDraw, outcome.Status)
	assert.Equal(t, Empty, outcome.Winner)
}

func TestOutcomeAfterOnEmptyCellIsActive(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, StatusActive, b.OutcomeAfter(3, 0).Status)
	assert.Equal(t, StatusActive, b.OutcomeAfter(-1, 2).Status)
	assert.Equal(t, StatusActive, b.OutcomeAfter(2, Rows).Status)
}

func TestHasConnectFour(t *testing.T) {
	t.Run("empty board has none", func(t *testing.T) {
		b := NewBoard()
		assert.False(t, b.HasConnectFour(Player1))
		assert.False(t, b.HasConnectFour(Player2))
	})

	t.Run("full striped board has none", func(t *testing.T) {
		b, err := RestoreBoard(stripedCells())
		require.NoError(t, err)
		assert.False(t, b.HasConnectFour(Player1))
		assert.False(t, b.HasConnectFour(Player2))
	})

	t.Run("vertical run is found", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < 4; i++ {
			mustDrop(t, b, 5, Player1)
		}
		assert.True(t, b.HasConnectFour(Player1))
		assert.False(t, b.HasConnectFour(Player2))
	})

	t.Run("rising diagonal run is found", func(t *testing.T) {
		b := NewBoard()
		for col := 1; col <= 3; col++ {
			for i := 0; i < col; i++ {
				mustDrop(t, b, col, Player2)
			}
		}
		for col := 0; col <= 3; col++ {
			mustDrop(t, b, col, Player1)
		}
		assert.True(t, b.HasConnectFour(Player1))
	})
}

func TestBoardOutcomeWithoutLastMove(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		b := NewBoard()
		mustDrop(t, b, 3, Player1)
		assert.Equal(t, Outcome{Status: StatusActive}, b.Outcome())
	})

	t.Run("won", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < 4; i++ {
			mustDrop(t, b, 2, Player2)
		}
		assert.Equal(t, Outcome{Status: StatusWon, Winner: Player2}, b.Outcome())
	})

	t.Run("draw", func(t *testing.T) {
		b, err := RestoreBoard(stripedCells())
		require.NoError(t, err)
		assert.Equal(t, Outcome{Status: StatusDraw}, b.Outcome())
	})
}
