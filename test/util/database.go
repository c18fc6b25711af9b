// Package util provides the PostgreSQL fixtures shared by quorum's
// database-backed tests: run persistence, worker claim/heartbeat, and
// NOTIFY/LISTEN event delivery all need a real postgres, not a mock.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/quorum-ai/quorum/ent"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DatabaseURLEnv points tests at an external PostgreSQL instead of a
// testcontainer. CI sets it to the service container; locally it is unset
// and a shared container is started once per test binary.
const DatabaseURLEnv = "QUORUM_TEST_DATABASE_URL"

var (
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// SetupTestDatabase gives the test its own PostgreSQL schema with the quorum
// tables (pipeline_runs, pipeline_stages, model_calls, pipeline_events)
// migrated into it. Tests in the same binary share one database but never
// see each other's runs. The schema is dropped on cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	ctx := context.Background()

	baseConnStr := GetBaseConnectionString(t)
	schemaName, connStr := CreateTestSchema(t, baseConnStr)

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	require.NoError(t, entClient.Schema.Create(ctx), "migrating quorum tables into %s", schemaName)

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// CreateTestSchema creates a uniquely-named schema on the base database and
// returns its name together with a connection string whose search_path pins
// every pooled connection to it. The schema is dropped via t.Cleanup, which
// runs after cleanups registered by the caller, so pools created against the
// returned connection string close before the schema disappears.
func CreateTestSchema(t *testing.T, baseConnStr string) (schemaName, connStr string) {
	t.Helper()
	ctx := context.Background()

	schemaName = schemaNameForTest(t)

	db, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)

	t.Cleanup(func() {
		dropDB, err := stdsql.Open("pgx", baseConnStr)
		if err != nil {
			t.Logf("cannot connect to drop schema %s: %v", schemaName, err)
			return
		}
		defer func() { _ = dropDB.Close() }()
		if _, err := dropDB.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("failed to drop schema %s: %v", schemaName, err)
		}
	})

	separator := "?"
	if strings.Contains(baseConnStr, "?") {
		separator = "&"
	}
	return schemaName, fmt.Sprintf("%s%ssearch_path=%s", baseConnStr, separator, schemaName)
}

// GetBaseConnectionString returns a connection string without a search_path.
// Integration tests that need dedicated connections, e.g. the pgx.Conn held
// by NotifyListener, combine it with CreateTestSchema themselves.
func GetBaseConnectionString(t *testing.T) string {
	t.Helper()

	if url := os.Getenv(DatabaseURLEnv); url != "" {
		return url
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Logf("%s not set, starting shared PostgreSQL testcontainer", DatabaseURLEnv)

		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("quorum_test"),
			postgres.WithUsername("quorum"),
			postgres.WithPassword("quorum"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("start postgres container: %w", err)
			return
		}

		sharedConnStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("get connection string: %w", err)
		}
	})

	require.NoError(t, containerErr, "shared test database unavailable")
	return sharedConnStr
}

// schemaNameForTest derives a postgres-safe schema name from the test name,
// truncated under the 63-byte identifier limit and suffixed with random hex
// so parallel runs of the same test never collide.
func schemaNameForTest(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("generate schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}
