package logview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logging"
)

const errorDisplayLimit = 50

// pendingCall is the single-slot state between a "called" event and its
// matching "completed"/"failed" event.
type pendingCall struct {
	timestamp string
	tool      string
	args      map[string]any
}

// Tracker correlates lifecycle events into table rows.
//
// It holds at most one pending call: the observed stream is strictly
// request/response, so calls do not overlap. If a second "called" event
// arrives before the first resolves, the new one silently replaces the old —
// the orphaned completion then renders with a fallback timestamp. Known
// limitation, kept as-is rather than growing a queue.
type Tracker struct {
	render  *Renderer
	pending *pendingCall
}

// NewTracker creates a tracker rendering through r.
func NewTracker(r *Renderer) *Tracker {
	return &Tracker{render: r}
}

// Process consumes one event and returns a rendered line when the event
// completes a row (or is itself displayable, like the startup banner).
// Events that match no known message are ignored.
func (t *Tracker) Process(ev Event) (string, bool) {
	switch {
	case strings.Contains(ev.Msg, logging.MsgToolCalled):
		t.pending = &pendingCall{
			timestamp: clockTime(ev.Time),
			tool:      orUnknown(ev.ToolName),
			args:      ev.Arguments,
		}
		return "", false

	case strings.Contains(ev.Msg, logging.MsgToolCompleted):
		if t.pending == nil {
			// Completion without observed start; nothing to correlate.
			return "", false
		}
		line := t.render.Success(t.pending.timestamp, t.pending.tool,
			compactArgs(t.pending.args), ev.DurationMS, ev.ResponseLength)
		t.pending = nil
		return line, true

	case strings.Contains(ev.Msg, logging.MsgToolFailed):
		tool := orUnknown(ev.ToolName)
		ts := clockTime(ev.Time)
		if t.pending != nil {
			tool = t.pending.tool
			ts = t.pending.timestamp
		}
		line := t.render.Failure(ts, tool, truncate(ev.Error, errorDisplayLimit))
		t.pending = nil
		return line, true

	case strings.Contains(ev.Msg, logging.MsgServerStarting):
		return t.render.Banner(orUnknown(ev.Version)), true

	case strings.Contains(ev.Msg, logging.MsgServerStopped):
		return t.render.Stopped(), true
	}

	return "", false
}

// compactArgs renders an argument map as "k=v k=v", keys sorted for a stable
// display.
func compactArgs(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return strings.Join(parts, " ")
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
