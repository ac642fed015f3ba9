package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/FreePeak/couchbase-mcp-server/internal/logger"
)

// ServerName is reported to clients during initialization
const ServerName = "Couchbase Query Server"

// ToolRegistry structure to handle tool registration
type ToolRegistry struct {
	mcpServer *server.MCPServer
	executor  QueryExecutor
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer, executor QueryExecutor) *ToolRegistry {
	return &ToolRegistry{
		mcpServer: mcpServer,
		executor:  executor,
	}
}

// RegisterAllTools registers all tools with the server
func (tr *ToolRegistry) RegisterAllTools() {
	queryTool := NewQueryCouchbaseTool()

	tr.mcpServer.AddTool(queryTool.CreateTool(), func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		return queryTool.HandleRequest(ctx, request, tr.executor)
	})
	logger.Debug("Registered tool %s", queryTool.GetName())
}

// NewServer creates an MCP server exposing the query tool
func NewServer(executor QueryExecutor, version string) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
	)

	NewToolRegistry(mcpServer, executor).RegisterAllTools()
	return mcpServer
}
