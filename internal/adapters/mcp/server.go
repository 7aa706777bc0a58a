// Package mcp exposes the tool catalog as an MCP server over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mrshaun13/mcp-stdio-docker-test/internal/logging"
	"github.com/mrshaun13/mcp-stdio-docker-test/internal/tools"
)

// Server wraps the tool registry and dispatcher behind an MCP protocol
// session. The underlying library owns framing, the initialize handshake and
// protocol-level errors for malformed frames; this wrapper owns the tool
// inventory and the lifecycle log events.
type Server struct {
	name      string
	version   string
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates the protocol session around a dispatcher.
//
// Resource and prompt capabilities are negotiated even though the inventories
// are empty: listing them returns an empty collection, reading a specific one
// fails with a not-found error. That mirrors a server that has the features
// wired but nothing registered.
func NewServer(reg *tools.Registry, d *tools.Dispatcher, logger *slog.Logger, name, version string) *Server {
	version = strings.TrimSpace(version)
	s := &Server{
		name:    name,
		version: version,
		logger:  logger,
		mcpServer: server.NewMCPServer(name, version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
			server.WithRecovery(),
		),
	}

	// Every tool routes through the dispatcher so that timing, lifecycle
	// logging and the error-to-text policy apply uniformly. Tool-level
	// failures come back as ordinary text results, never protocol errors.
	for _, t := range reg.All() {
		s.mcpServer.AddTool(t.Def, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(d.Dispatch(ctx, request.Params.Name, request.GetArguments())), nil
		})
	}

	return s
}

// ServeStdio runs the session over Stdin/Stdout until EOF or interrupt.
// A transport fault is logged as a crash and returned so the process can
// exit non-zero.
func (s *Server) ServeStdio() error {
	s.logger.Info(logging.MsgServerStarting, "version", s.version)

	err := server.ServeStdio(s.mcpServer,
		// The library's own complaints must land on stderr with everything
		// else; stdout carries frames only.
		server.WithErrorLogger(log.New(os.Stderr, "", log.LstdFlags)),
	)
	if err != nil && !isShutdown(err) {
		s.logger.Error(logging.MsgServerCrashed, "error", err.Error())
		s.logger.Info(logging.MsgServerStopped)
		return err
	}

	s.logger.Info(logging.MsgServerStopped)
	return nil
}

// HandleMessage processes one raw JSON-RPC frame in-process and returns the
// response message. Conformance tests use it to drive the session without a
// live transport.
func (s *Server) HandleMessage(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	return s.mcpServer.HandleMessage(ctx, raw)
}

func isShutdown(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}
