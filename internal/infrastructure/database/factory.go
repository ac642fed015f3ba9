package database

import (
	"context"
	"fmt"

	"github.com/couchbase/gocb/v2"

	"github.com/FreePeak/couchbase-mcp-server/internal/config"
	"github.com/FreePeak/couchbase-mcp-server/internal/domain/repositories"
)

// Factory manages the creation of cluster repositories
type Factory struct {
	cfg *config.CouchbaseConfig
}

// NewFactory creates a new cluster factory
func NewFactory(cfg *config.CouchbaseConfig) *Factory {
	return &Factory{cfg: cfg}
}

// Connect opens a cluster connection and waits for the query service to
// become reachable, so that network and authentication failures surface here
func (f *Factory) Connect(ctx context.Context) (repositories.ClusterRepository, error) {
	cluster, err := gocb.Connect(f.cfg.ConnectionString, gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{
			Username: f.cfg.Username,
			Password: f.cfg.Password,
		},
	})
	if err != nil {
		return nil, describeError(err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, f.cfg.ConnectTimeout)
	defer cancel()

	err = cluster.WaitUntilReady(f.cfg.ConnectTimeout, &gocb.WaitUntilReadyOptions{
		ServiceTypes: []gocb.ServiceType{gocb.ServiceTypeQuery},
		Context:      waitCtx,
	})
	if err != nil {
		if closeErr := cluster.Close(nil); closeErr != nil {
			return nil, fmt.Errorf("%w (close failed: %v)", describeError(err), closeErr)
		}
		return nil, describeError(err)
	}

	return NewCouchbaseRepository(cluster), nil
}
