package logview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	mcpstdiotest "github.com/mrshaun13/mcp-stdio-docker-test"
)

// ErrNoContainer signals that auto-discovery found no running server
// container to tail.
var ErrNoContainer = errors.New("no running " + mcpstdiotest.ServerName + " container found")

// DiscoverContainer finds a running container by image ancestor and returns
// its name. With several matches the first one wins.
func DiscoverContainer(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx,
		"docker", "ps",
		"--filter", "ancestor="+mcpstdiotest.ServerName,
		"--format", "{{.Names}}",
	).Output()
	if err != nil {
		return "", fmt.Errorf("listing containers: %w", err)
	}

	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}
	return "", ErrNoContainer
}

// FollowContainer streams a container's combined stdout+stderr via
// "docker logs -f". Protocol frames and diagnostics arrive interleaved on
// the returned reader; the viewer filters the frames out. Cancelling ctx
// terminates the child process, which closes the stream.
func FollowContainer(ctx context.Context, name string) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, "docker", "logs", "-f", name)

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating log pipe: %w", err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, fmt.Errorf("following logs of %s: %w", name, err)
	}
	// The child holds the write end now; drop ours so EOF propagates when
	// it exits.
	pw.Close()

	go func() { _ = cmd.Wait() }()

	return pr, nil
}
