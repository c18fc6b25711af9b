package database

import (
	"context"
	"database/sql"
	"time"
)

// Health statuses reported by Health.
const (
	HealthOK        = "healthy"
	HealthSaturated = "saturated"
	HealthDown      = "unhealthy"
)

// saturationWaitThreshold is the cumulative connection-wait above which a
// fully-used pool is reported as saturated rather than merely busy.
const saturationWaitThreshold = time.Second

// PoolStats summarizes the shared sql connection pool. The worker pool, the
// API's synchronous runs, and the event publisher all draw from this one
// pool, so saturation here surfaces as queueing everywhere.
type PoolStats struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	MaxOpenConns    int   `json:"max_open_conns"`
	WaitCount       int64 `json:"wait_count"`
	WaitDuration    int64 `json:"wait_duration_ms"`
}

// HealthStatus is the database portion of the /health response.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	Pool         PoolStats `json:"pool"`
}

// Health pings the database and inspects the connection pool. A reachable
// database with every connection in use and measurable wait time reports
// HealthSaturated; a failed ping reports HealthDown alongside the error.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       HealthDown,
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	status := HealthOK
	if stats.MaxOpenConnections > 0 &&
		stats.InUse >= stats.MaxOpenConnections &&
		stats.WaitDuration >= saturationWaitThreshold {
		status = HealthSaturated
	}

	return &HealthStatus{
		Status:       status,
		ResponseTime: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
			MaxOpenConns:    stats.MaxOpenConnections,
			WaitCount:       stats.WaitCount,
			WaitDuration:    stats.WaitDuration.Milliseconds(),
		},
	}, nil
}
