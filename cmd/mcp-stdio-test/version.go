package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mcpstdiotest "github.com/mrshaun13/mcp-stdio-docker-test"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mcp-stdio-test",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcp-stdio-test version %s\n", strings.TrimSpace(mcpstdiotest.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
