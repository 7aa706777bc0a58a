package logview_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logging"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logview"
)

func newTracker() *logview.Tracker {
	var sink bytes.Buffer
	return logview.NewTracker(logview.NewRenderer(&sink, 80))
}

func TestCalledThenCompletedThenFailed(t *testing.T) {
	tr := newTracker()

	_, ok := tr.Process(logview.Event{
		Time:      "2026-08-24T10:00:00Z",
		Msg:       logging.MsgToolCalled,
		ToolName:  "get-random-data",
		Arguments: map[string]any{"count": float64(3)},
	})
	assert.False(t, ok, "a called event renders nothing by itself")

	line, ok := tr.Process(logview.Event{
		Time:           "2026-08-24T10:00:00Z",
		Msg:            logging.MsgToolCompleted,
		ToolName:       "get-random-data",
		DurationMS:     12,
		ResponseLength: 100,
	})
	require.True(t, ok)
	assert.Contains(t, line, "✓")
	assert.Contains(t, line, "get-random-data")
	assert.Contains(t, line, "count=3")
	assert.Contains(t, line, "12.00ms")
	assert.Contains(t, line, "100b")
	assert.Contains(t, line, "10:00:00")

	_, ok = tr.Process(logview.Event{
		Time:     "2026-08-24T10:00:01Z",
		Msg:      logging.MsgToolCalled,
		ToolName: "echo",
	})
	assert.False(t, ok)

	line, ok = tr.Process(logview.Event{
		Time:     "2026-08-24T10:00:01Z",
		Msg:      logging.MsgToolFailed,
		ToolName: "echo",
		Error:    "boom",
	})
	require.True(t, ok)
	assert.Contains(t, line, "✗")
	assert.Contains(t, line, "echo")
	assert.Contains(t, line, "boom")
}

func TestSecondCalledOverwritesPending(t *testing.T) {
	tr := newTracker()

	tr.Process(logview.Event{Msg: logging.MsgToolCalled, ToolName: "tool-a"})
	tr.Process(logview.Event{Msg: logging.MsgToolCalled, ToolName: "tool-b"})

	line, ok := tr.Process(logview.Event{
		Msg:            logging.MsgToolCompleted,
		ToolName:       "tool-a",
		DurationMS:     5,
		ResponseLength: 10,
	})
	require.True(t, ok)
	// The overwrite policy: the completion is attributed to the most recent
	// called event, tool-a's start context is gone.
	assert.Contains(t, line, "tool-b")
	assert.NotContains(t, line, "tool-a")
}

func TestCompletedWithoutPendingIsDropped(t *testing.T) {
	tr := newTracker()

	_, ok := tr.Process(logview.Event{
		Msg:        logging.MsgToolCompleted,
		ToolName:   "echo",
		DurationMS: 5,
	})
	assert.False(t, ok)
}

func TestFailedWithoutPendingFallsBackToEventFields(t *testing.T) {
	tr := newTracker()

	line, ok := tr.Process(logview.Event{
		Time:     "2026-08-24T10:30:00Z",
		Msg:      logging.MsgToolFailed,
		ToolName: "echo",
		Error:    "late failure",
	})
	require.True(t, ok)
	assert.Contains(t, line, "echo")
	assert.Contains(t, line, "10:30:00")
}

func TestErrorTruncatedForDisplay(t *testing.T) {
	tr := newTracker()

	long := strings.Repeat("x", 80)
	tr.Process(logview.Event{Msg: logging.MsgToolCalled, ToolName: "echo"})
	line, ok := tr.Process(logview.Event{Msg: logging.MsgToolFailed, Error: long})
	require.True(t, ok)
	assert.Contains(t, line, strings.Repeat("x", 50))
	assert.NotContains(t, line, strings.Repeat("x", 51))
}

func TestBannerAndStopped(t *testing.T) {
	tr := newTracker()

	line, ok := tr.Process(logview.Event{Msg: logging.MsgServerStarting, Version: "0.1.0"})
	require.True(t, ok)
	assert.Contains(t, line, "MCP Server v0.1.0")

	line, ok = tr.Process(logview.Event{Msg: logging.MsgServerStopped})
	require.True(t, ok)
	assert.Contains(t, line, "Stopped")
}

func TestUnknownMessagesIgnored(t *testing.T) {
	tr := newTracker()

	_, ok := tr.Process(logview.Event{Msg: "something else entirely"})
	assert.False(t, ok)

	_, ok = tr.Process(logview.Event{Msg: logging.MsgOutboundResponse, ToolName: "echo"})
	assert.False(t, ok, "the payload debug duplicate must not render a row")
}
