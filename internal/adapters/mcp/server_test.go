package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/mrshaun13/mcp-stdio-docker-test/internal/adapters/mcp"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/datagen"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logging"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/tools"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

func newServer(t *testing.T) *mcpadapter.Server {
	t.Helper()
	reg := tools.DefaultRegistry(datagen.New(), "mcp-stdio-docker-test", "0.1.0")
	d := tools.NewDispatcher(reg, logging.NewNop())
	return mcpadapter.NewServer(reg, d, logging.NewNop(), "mcp-stdio-docker-test", "0.1.0\n")
}

func roundTrip(t *testing.T, s *mcpadapter.Server, frame string) rpcResponse {
	t.Helper()
	msg := s.HandleMessage(context.Background(), json.RawMessage(frame))
	require.NotNil(t, msg)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func callToolFrame(id int, name string, args map[string]any) string {
	frame := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	}
	raw, _ := json.Marshal(frame)
	return string(raw)
}

func toolText(t *testing.T, resp rpcResponse) string {
	t.Helper()
	require.Nil(t, resp.Error, "expected tool result, got protocol error")

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1, "tool results carry a single text block")
	require.Equal(t, "text", result.Content[0].Type)
	return result.Content[0].Text
}

func TestInitializeHandshake(t *testing.T) {
	s := newServer(t)

	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"conformance-client","version":"1.0.0"}}}`)
	require.Nil(t, resp.Error)

	var result struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
		Capabilities map[string]json.RawMessage `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "mcp-stdio-docker-test", result.ServerInfo.Name)
	assert.Equal(t, "0.1.0", result.ServerInfo.Version, "version is trimmed before the handshake")
	assert.NotEmpty(t, result.ProtocolVersion)
	assert.Contains(t, result.Capabilities, "tools")
	assert.Contains(t, result.Capabilities, "resources")
	assert.Contains(t, result.Capabilities, "prompts")
}

func TestListToolsAdvertisesCatalog(t *testing.T) {
	s := newServer(t)

	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Nil(t, resp.Error)

	var result struct {
		Tools []struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			InputSchema json.RawMessage `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Tools, 3)

	byName := map[string]string{}
	for _, tool := range result.Tools {
		byName[tool.Name] = string(tool.InputSchema)
	}
	require.Contains(t, byName, "get-random-data")
	require.Contains(t, byName, "echo")
	require.Contains(t, byName, "server-status")

	// Constraints and defaults are advertised verbatim for client-side
	// validation.
	schema := byName["get-random-data"]
	assert.Contains(t, schema, `"minimum":1`)
	assert.Contains(t, schema, `"maximum":10`)
	assert.Contains(t, schema, `"include_delay"`)

	assert.Contains(t, byName["echo"], `"required":["message"]`)
}

func TestCallToolEcho(t *testing.T) {
	s := newServer(t)

	resp := roundTrip(t, s, callToolFrame(3, "echo", map[string]any{"message": "hi"}))
	text := toolText(t, resp)

	var echoed struct {
		EchoedMessage string `json:"echoed_message"`
		MessageLength int    `json:"message_length"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &echoed))
	assert.Equal(t, "hi", echoed.EchoedMessage)
	assert.Equal(t, 2, echoed.MessageLength)
}

func TestSequentialCallsOneResponseEach(t *testing.T) {
	s := newServer(t)

	const n = 10
	for i := 1; i <= n; i++ {
		resp := roundTrip(t, s, callToolFrame(i, "echo", map[string]any{"message": fmt.Sprintf("msg-%d", i)}))
		require.Nil(t, resp.Error)
		assert.Equal(t, float64(i), resp.ID, "responses must come back in request order")

		text := toolText(t, resp)
		assert.Contains(t, text, fmt.Sprintf("msg-%d", i))
	}
}

func TestListResourcesAndPromptsEmpty(t *testing.T) {
	s := newServer(t)

	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":4,"method":"resources/list"}`)
	require.Nil(t, resp.Error)
	var resources struct {
		Resources []json.RawMessage `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &resources))
	assert.Empty(t, resources.Resources)

	resp = roundTrip(t, s, `{"jsonrpc":"2.0","id":5,"method":"prompts/list"}`)
	require.Nil(t, resp.Error)
	var prompts struct {
		Prompts []json.RawMessage `json:"prompts"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &prompts))
	assert.Empty(t, prompts.Prompts)
}

func TestReadMissingResourceFails(t *testing.T) {
	s := newServer(t)

	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":6,"method":"resources/read","params":{"uri":"test://nothing"}}`)
	require.NotNil(t, resp.Error, "reading a nonexistent resource is a protocol-level error")

	resp = roundTrip(t, s, `{"jsonrpc":"2.0","id":7,"method":"prompts/get","params":{"name":"nothing"}}`)
	require.NotNil(t, resp.Error, "getting a nonexistent prompt is a protocol-level error")
}

func TestMalformedFrameDoesNotKillSession(t *testing.T) {
	s := newServer(t)

	resp := roundTrip(t, s, `{this is not json`)
	require.NotNil(t, resp.Error)

	// The session keeps serving.
	next := roundTrip(t, s, callToolFrame(8, "echo", map[string]any{"message": "ok"}))
	require.Nil(t, next.Error)
	assert.Contains(t, toolText(t, next), "ok")
}

func TestToolErrorStaysOutOfProtocolLayer(t *testing.T) {
	s := newServer(t)

	// Force a handler failure through a registered tool: invalid argument
	// type that mapstructure cannot coerce.
	resp := roundTrip(t, s, callToolFrame(9, "echo", map[string]any{"message": map[string]any{"nested": true}}))
	text := toolText(t, resp)
	assert.Contains(t, text, "Error:")
}
