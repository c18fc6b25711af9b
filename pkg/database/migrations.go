package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on run prompts and final
// synthesis documents (the run list search box).
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for prompt full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_pipeline_runs_prompt_gin
		ON pipeline_runs USING gin(to_tsvector('english', prompt))`)
	if err != nil {
		return fmt.Errorf("failed to create prompt GIN index: %w", err)
	}

	// GIN index for final_text full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_pipeline_runs_final_text_gin
		ON pipeline_runs USING gin(to_tsvector('english', COALESCE(final_text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_text GIN index: %w", err)
	}

	return nil
}
