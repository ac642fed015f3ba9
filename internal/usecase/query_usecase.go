package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
	"github.com/FreePeak/couchbase-mcp-server/internal/domain/repositories"
	"github.com/FreePeak/couchbase-mcp-server/internal/logger"
)

// QueryUseCase executes statements against a single lazily created cluster
// connection.
//
// The connection is created on the first call to Execute and reused by every
// later call for the lifetime of the process. It is never closed. A failed
// connect is not cached, so the next call tries again. Callers are expected
// to issue one Execute at a time; the mutex only keeps an overlapping call
// from creating a second connection.
type QueryUseCase struct {
	connector repositories.ClusterConnector

	mu      sync.Mutex
	cluster repositories.ClusterRepository
}

// NewQueryUseCase creates a new query use case
func NewQueryUseCase(connector repositories.ClusterConnector) *QueryUseCase {
	return &QueryUseCase{
		connector: connector,
	}
}

// ensureConnection returns the cached connection, creating it if absent
func (uc *QueryUseCase) ensureConnection(ctx context.Context) (repositories.ClusterRepository, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cluster != nil {
		return uc.cluster, nil
	}

	cluster, err := uc.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to Couchbase cluster.")

	uc.cluster = cluster
	return cluster, nil
}

// Execute runs a statement verbatim. Every failure is returned inside the
// result; the connection stays cached either way.
func (uc *QueryUseCase) Execute(ctx context.Context, statement string) domain.QueryResult {
	invocationID := uuid.NewString()
	log := logger.WithField("invocation_id", invocationID)
	log.Infof("Tool invocation received for query-couchbase with statement: %s", statement)

	cluster, err := uc.ensureConnection(ctx)
	if err != nil {
		log.Errorf("Error executing query: %v", err)
		return domain.QueryResult{Err: err}
	}

	rows, err := cluster.Query(ctx, domain.QueryRequest{
		Statement:       statement,
		ClientContextID: invocationID,
	})
	if err != nil {
		log.Errorf("Error executing query: %v", err)
		return domain.QueryResult{Err: err}
	}

	log.Infof("Query executed successfully. Rows returned: %d", len(rows))
	return domain.QueryResult{Rows: rows}
}

// Connected reports whether the connection has been created
func (uc *QueryUseCase) Connected() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cluster != nil
}
