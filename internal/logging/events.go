package logging

// Lifecycle event messages shared between the server (which emits them) and
// the log viewer (which matches on them). Changing a message breaks
// correlation for already-captured streams, so treat these as frozen.
const (
	MsgServerStarting = "MCP server starting"
	MsgServerStopped  = "MCP server stopped"
	MsgServerCrashed  = "MCP server crashed"

	MsgToolCalled    = "MCP tool called"
	MsgToolCompleted = "MCP tool completed"
	MsgToolFailed    = "MCP tool failed"

	// MsgOutboundResponse carries the full serialized tool result for deep
	// protocol debugging. It duplicates MsgToolCompleted on purpose and is
	// ignored by the viewer.
	MsgOutboundResponse = "OUTBOUND JSON-RPC RESPONSE"
)

// LoggerServer and LoggerDispatch name the emitting component in the
// "logger" attribute of each record.
const (
	LoggerServer   = "mcp_stdio_test.server"
	LoggerDispatch = "mcp_stdio_test.dispatch"
)
