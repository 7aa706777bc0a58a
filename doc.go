/*
Package mcpstdiotest identifies a minimal MCP conformance test server used to
validate stdio transport pipelines (typically a Docker container piping
stdin/stdout).

The server speaks the Model Context Protocol over standard input/output and
exposes three synthetic tools: get-random-data, echo and server-status. The
tools carry no business meaning; their only contract is schema shape and
timing. Because standard output must carry nothing but protocol frames, all
diagnostics go to standard error as one JSON object per line, and any
corruption observed on stdout is guaranteed to originate from the pipe under
test rather than from the application.

A companion log viewer (the "logs" subcommand) tails a container's combined
output, filters out the raw protocol frames, correlates each tool call's
start/end log events and renders one table row per completed or failed call.

# Usage

Run the server under the transport being tested:

	docker run -i mcp-stdio-docker-test serve

Then, in another terminal, watch the request/response cycles:

	mcp-stdio-test logs

Diagnostic verbosity is controlled by the LOG_LEVEL environment variable
(DEBUG, INFO, WARN, ERROR; default INFO).
*/
package mcpstdiotest
