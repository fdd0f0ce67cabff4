package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Connect Four against a minimax computer player",
		Long: `connect4 plays Connect Four (7x6 grid, connect four to win) against a
depth-limited minimax computer player.

It can run an interactive console game, analyze a position, or serve
the HTTP/WebSocket API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
