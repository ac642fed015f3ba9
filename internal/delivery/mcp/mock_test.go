package mcp

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
)

// MockQueryExecutor is a mock implementation of the query use case
type MockQueryExecutor struct {
	mock.Mock
}

// Execute mocks the Execute method
func (m *MockQueryExecutor) Execute(ctx context.Context, statement string) domain.QueryResult {
	args := m.Called(ctx, statement)
	return args.Get(0).(domain.QueryResult)
}
