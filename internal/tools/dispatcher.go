package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logging"
)

// Dispatcher executes exactly one tool call and always produces a textual
// result, even on handler failure. Failures surface as a successful protocol
// response whose payload reads "Error: ...": the transport stays clean, so
// any anomaly observed on the pipe is the pipe's fault, not the application's.
type Dispatcher struct {
	reg    *Registry
	logger *slog.Logger
}

// NewDispatcher wires a dispatcher to its registry and diagnostic logger.
func NewDispatcher(reg *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, logger: logger}
}

// Dispatch runs the named tool and returns the response text: the canonical
// JSON serialization of the handler result, or "Error: <message>".
//
// Lifecycle logging per call: one "called" event up front, then either
// "completed" (plus the full-payload debug duplicate) or "failed". The
// argument snapshot is logged exactly as received; this is a test harness,
// nothing here is sensitive.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) string {
	start := time.Now()
	if args == nil {
		args = map[string]any{}
	}

	d.logger.Info(logging.MsgToolCalled,
		"tool_name", name,
		"arguments", args,
	)

	result, err := d.invoke(ctx, name, args)
	if err != nil {
		d.logger.Error(logging.MsgToolFailed,
			"tool_name", name,
			"error", err.Error(),
			"duration_ms", durationMS(start),
		)
		return "Error: " + err.Error()
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		d.logger.Error(logging.MsgToolFailed,
			"tool_name", name,
			"error", err.Error(),
			"duration_ms", durationMS(start),
		)
		return "Error: " + err.Error()
	}

	duration := durationMS(start)
	d.logger.Info(logging.MsgToolCompleted,
		"tool_name", name,
		"duration_ms", duration,
		"response_length", len(payload),
	)
	// Full outbound payload for deep protocol debugging. Intentionally
	// duplicates the completed event; must never alter the response itself.
	d.logger.Info(logging.MsgOutboundResponse,
		"tool_name", name,
		"response_length", len(payload),
		"response_payload", string(payload),
		"duration_ms", duration,
		"debug_outbound_message", true,
	)

	return string(payload)
}

func (d *Dispatcher) invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	tool, ok := d.reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
	return tool.Handler(ctx, args)
}

// durationMS reports elapsed wall time in milliseconds, two decimals.
func durationMS(start time.Time) float64 {
	ms := float64(time.Since(start)) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
