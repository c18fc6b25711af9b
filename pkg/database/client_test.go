package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client. With QUORUM_TEST_DATABASE_URL
// set it connects to that external PostgreSQL; otherwise it spins up a
// dedicated testcontainer. This package tests the client itself, so it
// deliberately does not reuse the test/database fixture built on top of it.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	externalURL := os.Getenv("QUORUM_TEST_DATABASE_URL")

	var connStr string

	if externalURL != "" {
		t.Log("Using external PostgreSQL from QUORUM_TEST_DATABASE_URL")
		connStr = externalURL
	} else {
		// Local dev mode: use testcontainers
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		// Get connection string from container
		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	// Open database connection using pgx driver
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	// Configure connection pool for tests
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Create Ent driver from existing database connection
	// Use dialect.Postgres for Ent compatibility while pgx handles the actual connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create Ent client
	entClient := ent.NewClient(ent.Driver(drv))

	// Run migrations (auto-migration for tests)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Create GIN indexes
	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, HealthOK, health.Status)
	assert.Greater(t, health.Pool.MaxOpenConns, 0)
}

func TestRunPersistenceRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run, err := client.PipelineRun.Create().
		SetID("run-1").
		SetPrompt("compare the two rollout strategies").
		SetCandidateModels([]string{"gpt-4o", "claude-sonnet"}).
		SetStatus(pipelinerun.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, run.Status)

	now := time.Now()
	stage, err := client.StageRecord.Create().
		SetID("stage-1").
		SetRunID(run.ID).
		SetStageName("initial_response").
		SetStageIndex(0).
		SetSuccess(true).
		SetStartedAt(now).
		SetCompletedAt(now.Add(2 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ModelCall.Create().
		SetID("call-1").
		SetStageID(stage.ID).
		SetModelID("gpt-4o").
		SetCallIndex(0).
		SetStatus("success").
		SetText("the blue/green rollout carries less risk").
		SetTotalTokens(42).
		SetAttempts(1).
		Save(ctx)
	require.NoError(t, err)

	// Stage ordering within a run is unique
	_, err = client.StageRecord.Create().
		SetID("stage-dup").
		SetRunID(run.ID).
		SetStageName("initial_response").
		SetStageIndex(0).
		SetSuccess(false).
		SetStartedAt(now).
		SetCompletedAt(now).
		Save(ctx)
	require.Error(t, err)

	// Query back the run with its stages and calls
	fetched, err := client.PipelineRun.Query().
		Where(pipelinerun.ID("run-1")).
		WithStages(func(q *ent.StageRecordQuery) { q.WithModelCalls() }).
		Only(ctx)
	require.NoError(t, err)
	require.Len(t, fetched.Edges.Stages, 1)
	require.Len(t, fetched.Edges.Stages[0].Edges.ModelCalls, 1)
	assert.Equal(t, "gpt-4o", fetched.Edges.Stages[0].Edges.ModelCalls[0].ModelID)

	// Deleting the run cascades to stages and calls
	err = client.PipelineRun.DeleteOneID("run-1").Exec(ctx)
	require.NoError(t, err)

	count, err := client.StageRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Create test runs
	run1, err := client.PipelineRun.Create().
		SetID("fts-1").
		SetPrompt("diagnose the production cluster outage and propose remediation").
		SetCandidateModels([]string{"gpt-4o"}).
		Save(ctx)
	require.NoError(t, err)

	run2, err := client.PipelineRun.Create().
		SetID("fts-2").
		SetPrompt("summarize the memory usage trends from last week").
		SetCandidateModels([]string{"gpt-4o"}).
		Save(ctx)
	require.NoError(t, err)

	// Test full-text search using raw SQL
	rows, err := client.DB().QueryContext(ctx,
		`SELECT correlation_id FROM pipeline_runs
		WHERE to_tsvector('english', prompt) @@ to_tsquery('english', $1)`,
		"production & outage",
	)
	require.NoError(t, err)
	defer rows.Close()

	// Collect results
	var results []string
	for rows.Next() {
		var runID string
		err := rows.Scan(&runID)
		require.NoError(t, err)
		results = append(results, runID)
	}

	// Should only match run1
	assert.Len(t, results, 1)
	assert.Equal(t, run1.ID, results[0])

	// Test search for "memory" - should match run2
	rows2, err := client.DB().QueryContext(ctx,
		`SELECT correlation_id FROM pipeline_runs
		WHERE to_tsvector('english', prompt) @@ to_tsquery('english', $1)`,
		"memory",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results2 := []string{}
	for rows2.Next() {
		var runID string
		err := rows2.Scan(&runID)
		require.NoError(t, err)
		results2 = append(results2, runID)
	}

	assert.Len(t, results2, 1)
	assert.Equal(t, run2.ID, results2[0])
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_MAX_IDLE_CONNS",
			envVars: map[string]string{
				"DB_MAX_IDLE_CONNS": "abc123",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name: "invalid DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{
				"DB_CONN_MAX_IDLE_TIME": "not_a_duration",
				"DB_PASSWORD":           "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name: "missing password",
			envVars: map[string]string{
				"DB_PASSWORD": "",
			},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear all DB-related env vars
			envKeys := []string{
				"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
				"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
				"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
			}
			for _, key := range envKeys {
				os.Unsetenv(key)
			}

			// Set test env vars
			for key, val := range tt.envVars {
				if val != "" {
					os.Setenv(key, val)
				}
			}

			// Cleanup after test
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			// Test LoadConfigFromEnv
			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				// Verify defaults are applied
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestHealth_ReportsPoolStats(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// A freshly-pinged local pool is healthy with idle capacity.
	assert.Equal(t, HealthOK, health.Status)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should take well under a second")
	assert.Positive(t, health.Pool.MaxOpenConns)
	assert.LessOrEqual(t, health.Pool.InUse, health.Pool.MaxOpenConns)

	// Durations serialize as millisecond numbers, not nanosecond blobs.
	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))
	assert.Equal(t, HealthOK, jsonData["status"])

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be milliseconds, not nanoseconds")

	pool, ok := jsonData["pool"].(map[string]any)
	require.True(t, ok, "pool stats should be a nested object")
	waitDuration, ok := pool["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.Less(t, waitDuration, float64(1000000), "wait_duration_ms should be milliseconds, not nanoseconds")
}

func TestHealth_UnreachableDatabase(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Closing the pool makes the ping fail without waiting on a timeout.
	require.NoError(t, client.Close())

	health, err := Health(ctx, client.DB())
	require.Error(t, err)
	require.NotNil(t, health)
	assert.Equal(t, HealthDown, health.Status)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				SSLMode:      "disable",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 5,
				MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 0,
				MaxIdleConns: 0,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
