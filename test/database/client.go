// Package database provides *database.Client fixtures for integration tests:
// a per-test isolated client and a shared-schema variant for multi-replica
// scenarios.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/quorum-ai/quorum/pkg/database"
	"github.com/quorum-ai/quorum/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a *database.Client bound to a schema private to this
// test, with quorum's migrations and full-text GIN indexes applied. It is
// the fixture behind the run service, event service, and worker pool tests;
// cleanup is registered on t.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)

	// The runs list supports prompt/final-text search, so the fixture must
	// carry the same GIN indexes production migrations create.
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(context.Background(), drv))

	return database.NewClientFromEnt(entClient, db)
}
