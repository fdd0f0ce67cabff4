package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/service/bot"
)

func newPlayCmd() *cobra.Command {
	var difficulty string
	var depth int
	var first string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), difficulty, depth, first)
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "Computer strength: easy, medium, hard")
	cmd.Flags().IntVar(&depth, "depth", 0, "Search depth override (0 uses the difficulty preset)")
	cmd.Flags().StringVar(&first, "first", "human", "Who moves first: human, computer")

	return cmd
}

func runPlay(in io.Reader, out io.Writer, difficultyName string, depth int, first string) error {
	difficulty, ok := bot.ParseDifficulty(difficultyName)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", difficultyName)
	}
	if depth <= 0 {
		depth = bot.SearchDepth(difficulty)
	}
	depth = bot.ClampDepth(depth)

	computer := domain.Player2
	switch first {
	case "human":
	case "computer":
		computer = domain.Player1
	default:
		return fmt.Errorf("unknown first player %q (want human or computer)", first)
	}

	g, err := domain.NewGame(computer)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Connect Four. You are %s, %s is %s (difficulty: %s, depth: %d).\n",
		domain.TokenGlyph(g.Human), domain.GetBotName(string(difficulty)), domain.TokenGlyph(computer), difficulty, depth)

	if computer == domain.Player1 {
		if err := playComputerTurn(out, g, depth); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for !g.IsOver() {
		fmt.Fprintln(out)
		fmt.Fprint(out, domain.Render(g.Board))
		fmt.Fprint(out, "Your move [0-6] (q quits): ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" || input == "quit" {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}

		column, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(out, "Enter a column number between 0 and 6.")
			continue
		}
		if _, _, err := g.ApplyHumanMove(column); err != nil {
			fmt.Fprintf(out, "Column %d is full or out of range, try again.\n", column)
			continue
		}
		if g.IsOver() {
			break
		}

		if err := playComputerTurn(out, g, depth); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, domain.Render(g.Board))
	switch {
	case g.Status == domain.StatusDraw:
		fmt.Fprintln(out, "Draw.")
	case g.Status == domain.StatusWon && g.Winner == g.Human:
		fmt.Fprintln(out, "You win!")
	case g.Status == domain.StatusWon:
		fmt.Fprintln(out, "Computer wins!")
	}
	return nil
}

func playComputerTurn(out io.Writer, g *domain.Game, depth int) error {
	column, err := bot.BestMove(g.Board, g.Computer, depth)
	if err != nil {
		return err
	}
	if _, _, err := g.ApplyComputerMove(column); err != nil {
		return err
	}
	fmt.Fprintf(out, "Computer played column %d.\n", column)
	return nil
}
