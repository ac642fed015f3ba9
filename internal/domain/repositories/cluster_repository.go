package repositories

import (
	"context"
	"encoding/json"

	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
)

// ClusterRepository defines the interface for cluster query operations
type ClusterRepository interface {
	// Query runs a statement and returns one raw JSON document per result row
	Query(ctx context.Context, req domain.QueryRequest) ([]json.RawMessage, error)
}

// ClusterConnector establishes connections to a cluster
type ClusterConnector interface {
	// Connect opens an authenticated connection. Network and authentication
	// failures are returned here rather than on the first query.
	Connect(ctx context.Context) (ClusterRepository, error)
}
