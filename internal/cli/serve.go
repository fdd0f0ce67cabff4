package cli

import (
	"github.com/spf13/cobra"

	"github.com/lazygeek007/connect-four/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket API server",
		Long: `serve starts the game API server. Configuration is read from the
environment (and a .env file when present): PORT, STORAGE_TYPE,
REDIS_URL, JWT_SECRET, SESSION_TTL_MINUTES and friends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}
