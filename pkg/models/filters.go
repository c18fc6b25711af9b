package models

import (
	"time"

	"github.com/quorum-ai/quorum/ent"
)

// RunFilters contains filtering options for listing pipeline runs
type RunFilters struct {
	Status        string     `json:"status,omitempty"`
	Model         string     `json:"model,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// RunListResponse contains a paginated run list
type RunListResponse struct {
	Runs       []*ent.PipelineRun `json:"runs"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
