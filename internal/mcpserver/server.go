// Package mcpserver exposes registered variables as MCP tools so an agent
// can ask which effects are disabled.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/logging"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/variable"
)

// Name is the server name reported during initialization.
const Name = "disabled-effect-finder"

// ArgsParam is the tool parameter that carries variable arguments.
const ArgsParam = "args"

// Server wraps an MCP server with one tool per variable.
type Server struct {
	mcp  *server.MCPServer
	vars *variable.Manager
	log  logging.Logger
}

// New builds a server exposing every variable in vars.
func New(vars *variable.Manager, version string, log logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	s := &Server{
		mcp:  server.NewMCPServer(Name, version, server.WithToolCapabilities(false)),
		vars: vars,
		log:  log,
	}
	for _, v := range vars.Variables() {
		s.mcp.AddTool(toolFor(v), s.handler(v.Definition.Handle))
	}
	return s
}

// MCP returns the underlying server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// Serve speaks MCP over the given streams until ctx is done or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}

func toolFor(v variable.Variable) mcp.Tool {
	desc := v.Definition.Description
	for _, ex := range v.Definition.Examples {
		desc += fmt.Sprintf("\n$%s: %s", ex.Usage, ex.Description)
	}
	return mcp.NewTool(v.Definition.Handle,
		mcp.WithDescription(desc),
		mcp.WithArray(ArgsParam,
			mcp.Description("Variable arguments, e.g. [\"events\"] to limit results to one category."),
			mcp.WithStringItems(),
		),
	)
}

func (s *Server) handler(handle string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := stringArgs(req.GetArguments()[ArgsParam])
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		s.log.Debugf("Evaluating %s with args %v", handle, args)
		value, err := s.vars.Evaluate(ctx, handle, variable.Trigger{Type: "mcp"}, args...)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode %s result: %v", handle, err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// stringArgs accepts a missing value, a JSON array of strings or a single
// string.
func stringArgs(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: expected a string, found %T", ArgsParam, i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: expected an array of strings, found %T", ArgsParam, raw)
	}
}
