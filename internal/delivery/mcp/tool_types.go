package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
	"github.com/FreePeak/couchbase-mcp-server/internal/logger"
)

const (
	// QueryCouchbaseToolName is the identifier clients call the tool by
	QueryCouchbaseToolName = "query-couchbase"

	// InvalidStatementMessage is returned when the statement argument is
	// missing or not a string
	InvalidStatementMessage = "Invalid input: 'statement' must be a string"
)

// QueryExecutor abstracts the query use case
type QueryExecutor interface {
	Execute(ctx context.Context, statement string) domain.QueryResult
}

// QueryCouchbaseTool runs SQL++ statements on the cluster
type QueryCouchbaseTool struct {
	name        string
	description string
}

// NewQueryCouchbaseTool creates a new query tool type
func NewQueryCouchbaseTool() *QueryCouchbaseTool {
	return &QueryCouchbaseTool{
		name:        QueryCouchbaseToolName,
		description: "Execute a Couchbase query using a SQL++ statement",
	}
}

// GetName returns the name of the tool
func (t *QueryCouchbaseTool) GetName() string {
	return t.name
}

// GetDescription returns the description of the tool
func (t *QueryCouchbaseTool) GetDescription() string {
	return t.description
}

// CreateTool creates the tool descriptor
func (t *QueryCouchbaseTool) CreateTool() mcpgo.Tool {
	return mcpgo.NewTool(
		t.name,
		mcpgo.WithDescription(t.description),
		mcpgo.WithString("statement",
			mcpgo.Description("A SQL++ query statement to execute on Couchbase"),
			mcpgo.Required(),
		),
	)
}

// HandleRequest handles query tool requests. Bad input and query failures
// both come back as error-flagged results, never as a returned error.
func (t *QueryCouchbaseTool) HandleRequest(ctx context.Context, request mcpgo.CallToolRequest, executor QueryExecutor) (*mcpgo.CallToolResult, error) {
	statement, ok := request.Params.Arguments["statement"].(string)
	if !ok {
		logger.Warn("Rejected %s call: statement argument is %T", t.name, request.Params.Arguments["statement"])
		return FromErrorText(InvalidStatementMessage).ToCallToolResult(), nil
	}

	result := executor.Execute(ctx, statement)
	return FromQueryResult(result).ToCallToolResult(), nil
}
