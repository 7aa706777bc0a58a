// Package tools holds the static tool catalog and the request dispatcher
// that executes calls against it.
package tools

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerFunc is the signature for a tool implementation. It receives the
// raw argument map as decoded from the wire; each handler applies its own
// defaults and clamping before use.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool pairs the advertised descriptor with its implementation. The
// descriptor is served verbatim through tools/list so clients can validate
// arguments against it.
type Tool struct {
	Def     mcp.Tool
	Handler HandlerFunc
}

// Registry manages the available tools. All registration happens at startup;
// afterwards the registry is read-only.
type Registry struct {
	mu    sync.RWMutex
	order []string
	tools map[string]Tool
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
// If a tool with the same name exists, it is overwritten.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Def.Name]; !exists {
		r.order = append(r.order, t.Def.Name)
	}
	r.tools[t.Def.Name] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// All returns the tools in registration order.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}
