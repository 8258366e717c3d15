// Package repository provides dataset sources: read-only access to one
// vintage of published election result exports. Sources only ingest;
// nothing in the application writes election data back.
package repository

import (
	"context"

	"github.com/electoscope/electoscope/internal/models"
)

// Source provides the three record sets of one election dataset. A failed
// read of any set fails the whole load; callers never expose a partial
// dataset.
type Source interface {
	// Constituencies returns the constituency summary records.
	Constituencies(ctx context.Context) ([]models.ConstituencyResult, error)
	// Candidates returns the flat candidate records.
	Candidates(ctx context.Context) ([]models.CandidateResult, error)
	// Detailed returns the per-constituency-per-candidate records.
	Detailed(ctx context.Context) ([]models.DetailedResult, error)
}
