package logview

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// headerInterval is how many rendered rows pass between column-header
// reprints.
const headerInterval = 20

// maxLineSize bounds one log line; the outbound-payload debug event can
// carry a full multi-record response.
const maxLineSize = 1024 * 1024

// Viewer drives the whole pipeline: read lines, drop noise, correlate,
// print rows.
type Viewer struct {
	out       io.Writer
	render    *Renderer
	tracker   *Tracker
	container string
}

// NewViewer creates a viewer writing its table to out. container is only
// used for display in the header.
func NewViewer(out io.Writer, container string, width int) *Viewer {
	render := NewRenderer(out, width)
	return &Viewer{
		out:       out,
		render:    render,
		tracker:   NewTracker(render),
		container: container,
	}
}

// Run consumes the log stream until EOF or ctx cancellation. Raw protocol
// frames, blank lines and anything that is not a JSON object are silently
// dropped: log streams are inherently noisy and a viewer that crashes on
// noise is useless.
func (v *Viewer) Run(ctx context.Context, r io.Reader) error {
	fmt.Fprintln(v.out, v.render.Header(v.container))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	rows := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, `{"jsonrpc":`) {
			continue
		}

		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}

		rendered, ok := v.tracker.Process(ev)
		if !ok {
			continue
		}
		fmt.Fprintln(v.out, rendered)

		rows++
		if rows%headerInterval == 0 {
			fmt.Fprintln(v.out, v.render.Header(v.container))
		}
	}

	if ctx.Err() != nil {
		// Interrupted; the truncated read is expected.
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading log stream: %w", err)
	}
	return nil
}
