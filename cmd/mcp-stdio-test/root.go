package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcp-stdio-test",
	Short: "Minimal MCP server for testing stdio transport pipelines",
	Long: `mcp-stdio-test is a protocol-conformance harness: an MCP server speaking
JSON-RPC over stdin/stdout with synthetic tools, plus a log viewer that
correlates the server's diagnostic stream into a per-call table.

Standard output carries nothing but protocol frames; all diagnostics go to
standard error as JSON lines. Any corruption seen on stdout therefore comes
from the pipe under test, not from the application.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
