package tools

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mrshaun13/mcp-stdio-docker-test/internal/datagen"
)

type randomDataArgs struct {
	Count        int  `mapstructure:"count"`
	IncludeDelay bool `mapstructure:"include_delay"`
}

type echoArgs struct {
	Message string `mapstructure:"message"`
}

type echoResult struct {
	EchoedMessage string `json:"echoed_message"`
	Timestamp     string `json:"timestamp"`
	MessageLength int    `json:"message_length"`
}

type statusResult struct {
	ServerName string `json:"server_name"`
	Version    string `json:"version"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	UptimeInfo string `json:"uptime_info"`
}

// DefaultRegistry builds the fixed tool catalog: get-random-data, echo and
// server-status. serverName and version are echoed back by server-status and
// must match the identity advertised during the handshake.
func DefaultRegistry(gen *datagen.Generator, serverName, version string) *Registry {
	reg := NewRegistry()

	reg.Register(Tool{
		Def: mcp.NewTool("get-random-data",
			mcp.WithDescription("Returns random structured technical data for testing Docker stdio communications. Generates ~10-15 fields of technical metrics."),
			mcp.WithNumber("count",
				mcp.Description("Number of data records to generate (1-10, default: 1)"),
				mcp.Min(1),
				mcp.Max(10),
				mcp.DefaultNumber(1),
			),
			mcp.WithBoolean("include_delay",
				mcp.Description("Add a small random delay (0-500ms) to simulate real API latency"),
				mcp.DefaultBool(false),
			),
		),
		Handler: randomDataHandler(gen),
	})

	reg.Register(Tool{
		Def: mcp.NewTool("echo",
			mcp.WithDescription("Echoes back the provided message. Useful for testing basic stdio communication."),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("Message to echo back"),
			),
		),
		Handler: echoHandler,
	})

	reg.Register(Tool{
		Def: mcp.NewTool("server-status",
			mcp.WithDescription("Returns the current server status and version information."),
		),
		Handler: statusHandler(serverName, version),
	})

	return reg
}

func randomDataHandler(gen *datagen.Generator) HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		a := randomDataArgs{Count: 1}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		count := clamp(a.Count, 1, 10)

		if a.IncludeDelay {
			// Simulated upstream latency. The sleep suspends only this
			// call; the session keeps reading frames meanwhile.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(gen.Delay()):
			}
		}

		if count == 1 {
			return gen.Technical(), nil
		}
		return datagen.RecordSet{Records: gen.Records(count), Count: count}, nil
	}
}

func echoHandler(ctx context.Context, args map[string]any) (any, error) {
	var a echoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return echoResult{
		EchoedMessage: a.Message,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		MessageLength: utf8.RuneCountInString(a.Message),
	}, nil
}

func statusHandler(serverName, version string) HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		return statusResult{
			ServerName: serverName,
			Version:    version,
			Status:     "running",
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
			UptimeInfo: "Server is operational",
		}, nil
	}
}
