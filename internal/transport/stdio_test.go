package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivery "github.com/FreePeak/couchbase-mcp-server/internal/delivery/mcp"
	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
)

// staticExecutor answers every statement with the same result
type staticExecutor struct {
	result     domain.QueryResult
	statements []string
}

func (e *staticExecutor) Execute(_ context.Context, statement string) domain.QueryResult {
	e.statements = append(e.statements, statement)
	return e.result
}

func newTestServer() *server.MCPServer {
	return server.NewMCPServer("test", "0.0.1", server.WithToolCapabilities(false))
}

func TestStdioTransport_ServesUntilEOF(t *testing.T) {
	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer

	transport := NewStdioTransport(newTestServer(), in, &out)
	require.NoError(t, transport.Start(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var resp struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      int             `json:"id"`
		Result  json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &resp))
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, 1, resp.ID)
	assert.NotEmpty(t, resp.Result)
}

func TestStdioTransport_EmptyInput(t *testing.T) {
	var out bytes.Buffer

	transport := NewStdioTransport(newTestServer(), strings.NewReader(""), &out)

	assert.NoError(t, transport.Start(context.Background()))
	assert.Empty(t, out.String())
}

func TestStdioTransport_QueryToolSession(t *testing.T) {
	executor := &staticExecutor{result: domain.QueryResult{Rows: []json.RawMessage{json.RawMessage(`{"n":1}`)}}}
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"query-couchbase","arguments":{"statement":"SELECT 1 AS n"}}}`,
	}, "\n") + "\n"
	var out bytes.Buffer

	transport := NewStdioTransport(delivery.NewServer(executor, "1.0.0"), strings.NewReader(input), &out)
	require.NoError(t, transport.Start(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"query-couchbase"`)

	var call struct {
		ID     int `json:"id"`
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &call))
	assert.Equal(t, 2, call.ID)
	assert.False(t, call.Result.IsError)
	require.Len(t, call.Result.Content, 1)
	assert.Equal(t, "[\n  {\n    \"n\": 1\n  }\n]", call.Result.Content[0].Text)
	assert.Equal(t, []string{"SELECT 1 AS n"}, executor.statements)
}
