package database

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/couchbase/gocb/v2"

	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
)

// CouchbaseRepository implements the ClusterRepository interface for Couchbase
type CouchbaseRepository struct {
	cluster *gocb.Cluster
}

// NewCouchbaseRepository creates a new Couchbase repository
func NewCouchbaseRepository(cluster *gocb.Cluster) *CouchbaseRepository {
	return &CouchbaseRepository{
		cluster: cluster,
	}
}

// Query executes a SQL++ statement verbatim and returns the result rows
func (r *CouchbaseRepository) Query(ctx context.Context, req domain.QueryRequest) ([]json.RawMessage, error) {
	result, err := r.cluster.Query(req.Statement, &gocb.QueryOptions{
		ClientContextID: req.ClientContextID,
		Context:         ctx,
	})
	if err != nil {
		return nil, describeError(err)
	}

	rows := make([]json.RawMessage, 0)
	for result.Next() {
		var row json.RawMessage
		if err := result.Row(&row); err != nil {
			_ = result.Close()
			return nil, describeError(err)
		}
		rows = append(rows, row)
	}

	if err := result.Err(); err != nil {
		_ = result.Close()
		return nil, describeError(err)
	}

	if err := result.Close(); err != nil {
		return nil, describeError(err)
	}

	return rows, nil
}

// queryError keeps the server-side messages of a failed query as its text
// while still unwrapping to the SDK error
type queryError struct {
	message string
	err     error
}

func (e *queryError) Error() string {
	return e.message
}

func (e *queryError) Unwrap() error {
	return e.err
}

// describeError reduces SDK errors to a readable message. Query errors carry
// a JSON dump of the request context, so only the server's error
// descriptions are kept.
func describeError(err error) error {
	var qErr *gocb.QueryError
	if !errors.As(err, &qErr) {
		return err
	}

	messages := make([]string, 0, len(qErr.Errors))
	for _, desc := range qErr.Errors {
		if desc.Message != "" {
			messages = append(messages, desc.Message)
		}
	}
	if len(messages) == 0 {
		return err
	}

	return &queryError{
		message: strings.Join(messages, "; "),
		err:     err,
	}
}
