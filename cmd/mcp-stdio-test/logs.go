package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logview"
)

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs [container]",
	Short: "Watch the server's request/response cycles as a live table",
	Long: `Tails a container's combined output, drops the raw protocol frames,
correlates each tool call's start and end log events and prints one table
row per completed or failed call.

Without an argument the container is auto-discovered by image ancestor.
Pass "-" to read an already-captured log stream from stdin instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		container := ""
		if len(args) > 0 {
			container = args[0]
		}

		var stream io.ReadCloser
		switch container {
		case "-":
			container = "stdin"
			stream = os.Stdin
		case "":
			name, err := logview.DiscoverContainer(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\nUsage: %s logs [container_name]\n", err, cmd.Root().Name())
				os.Exit(1)
			}
			container = name
			fallthrough
		default:
			var err error
			stream, err = logview.FollowContainer(ctx, container)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		defer stream.Close()

		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}

		viewer := logview.NewViewer(os.Stdout, container, width)
		if err := viewer.Run(ctx, stream); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
