// Package logview reconstructs request/response cycles from the server's
// diagnostic log stream and renders them as a live table, one row per
// completed or failed tool call.
package logview

import "time"

// Event is one parsed diagnostic record. Only the fields the correlator
// cares about are mapped; everything else in a record is ignored, which
// keeps the viewer forward-compatible with new attributes.
type Event struct {
	Time           string         `json:"time"`
	Level          string         `json:"level"`
	Msg            string         `json:"msg"`
	ToolName       string         `json:"tool_name"`
	Arguments      map[string]any `json:"arguments"`
	DurationMS     float64        `json:"duration_ms"`
	ResponseLength int            `json:"response_length"`
	Error          string         `json:"error"`
	Version        string         `json:"version"`
}

// clockTime reduces an RFC 3339 timestamp to HH:MM:SS for the table. Raw
// strings that do not parse are truncated instead of dropped.
func clockTime(ts string) string {
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return t.Format("15:04:05")
	}
	if len(ts) > 8 {
		return ts[:8]
	}
	return ts
}
