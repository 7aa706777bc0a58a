package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	mcpstdiotest "github.com/mrshaun13/mcp-stdio-docker-test"
	mcpadapter "github.com/mrshaun13/mcp-stdio-docker-test/internal/adapters/mcp"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/config"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/datagen"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logging"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/tools"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP conformance server on Stdin/Stdout",
	Long: `Starts the MCP server on the stdio transport. The session ends on EOF or
interrupt; a transport fault exits non-zero after logging a crash event.

Set LOG_LEVEL=DEBUG for full diagnostic output on stderr.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromEnv()
		logger := logging.New(cfg.Level())

		version := strings.TrimSpace(mcpstdiotest.Version)
		reg := tools.DefaultRegistry(datagen.New(), mcpstdiotest.ServerName, version)
		dispatcher := tools.NewDispatcher(reg, logger.With("logger", logging.LoggerDispatch))

		srv := mcpadapter.NewServer(reg, dispatcher,
			logger.With("logger", logging.LoggerServer),
			mcpstdiotest.ServerName, version)

		if err := srv.ServeStdio(); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Running the binary with no subcommand starts the server; that is how
	// the container image invokes it.
	rootCmd.Run = serveCmd.Run
}
