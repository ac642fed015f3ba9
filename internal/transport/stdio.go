package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/FreePeak/couchbase-mcp-server/internal/logger"
)

// StdioTransport implements the STDIO transport for the MCP server. Requests
// arrive one JSON-RPC message per line on in and responses are written to
// out. Nothing else may write to out.
type StdioTransport struct {
	stdioServer *server.StdioServer
	in          io.Reader
	out         io.Writer

	mu      sync.Mutex
	running bool
}

// NewStdioTransport creates a new STDIO transport
func NewStdioTransport(mcpServer *server.MCPServer, in io.Reader, out io.Writer) *StdioTransport {
	stdioServer := server.NewStdioServer(mcpServer)
	stdioServer.SetErrorLogger(logger.StdLogger())

	return &StdioTransport{
		stdioServer: stdioServer,
		in:          in,
		out:         out,
	}
}

// Start serves requests until the input reaches EOF or ctx is cancelled.
// EOF is a clean shutdown and returns nil.
func (t *StdioTransport) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return fmt.Errorf("STDIO transport already running")
	}
	t.running = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	logger.Info("MCP server connected.")

	err := t.stdioServer.Listen(ctx, t.in, t.out)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}

	logger.Info("STDIO transport stopped")
	return nil
}
