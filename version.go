package mcpstdiotest

import _ "embed"

// Version is the server version advertised during the MCP handshake and
// reported by the server-status tool. It is read from the VERSION file at
// build time; trim before display.
//
//go:embed VERSION
var Version string

// ServerName is the identity exchanged during initialization. The log viewer
// also uses it to auto-discover the server's container by image ancestor.
const ServerName = "mcp-stdio-docker-test"
