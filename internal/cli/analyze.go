package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/service/bot"
)

func newAnalyzeCmd() *cobra.Command {
	var position string
	var computer int
	var depth int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Find the best column for a position",
		Long: `analyze reads a board position and prints the column the computer
would pick, together with the static evaluation of the position.

The position is six rows of seven characters, top row first: '.' for
empty, 'X' for player 1, 'O' for player 2. Rows are separated by
newlines or '/'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), position, computer, depth)
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Board position, top row first (required)")
	cmd.Flags().IntVar(&computer, "computer", int(domain.Player2), "Seat the computer plays: 1 or 2")
	cmd.Flags().IntVar(&depth, "depth", bot.DEFAULT_DEPTH, "Search depth")
	cmd.MarkFlagRequired("position")

	return cmd
}

func runAnalyze(out io.Writer, position string, computer, depth int) error {
	board, err := domain.ParseBoard(strings.ReplaceAll(position, "/", "\n"))
	if err != nil {
		return fmt.Errorf("bad position: %w", err)
	}

	seat := domain.PlayerID(computer)
	if seat != domain.Player1 && seat != domain.Player2 {
		return fmt.Errorf("computer seat must be 1 or 2, got %d", computer)
	}

	column, err := bot.BestMove(board, seat, bot.ClampDepth(depth))
	if err != nil {
		return err
	}

	fmt.Fprint(out, domain.Render(board))
	fmt.Fprintf(out, "Computer seat: %s\n", domain.TokenGlyph(seat))
	fmt.Fprintf(out, "Best column: %d\n", column)
	fmt.Fprintf(out, "Evaluation: %d\n", bot.ScorePosition(board, seat))
	return nil
}
