package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/electoscope/electoscope/internal/analytics"
	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/reference"
	"github.com/electoscope/electoscope/internal/repository/mock"
	"github.com/electoscope/electoscope/internal/services"
)

// NewTestLogger creates a logger that only emits at error level, keeping
// test output quiet.
func NewTestLogger() logger.Logger {
	return logger.NewWithLevel(slog.LevelError)
}

// SampleConstituencies is a small two-party fixture: Alpha wins two seats,
// Beta wins one.
func SampleConstituencies() []models.ConstituencyResult {
	return []models.ConstituencyResult{
		{Constituency: "Northfield", ConstNo: "1", LeadingCandidate: "A One", LeadingParty: "Alpha Party", TrailingCandidate: "B One", TrailingParty: "Beta Party", Margin: 100, Status: "Declared"},
		{Constituency: "Southgate", ConstNo: "2", LeadingCandidate: "A Two", LeadingParty: "Alpha Party", TrailingCandidate: "B Two", TrailingParty: "Beta Party", Margin: 40, Status: "Declared"},
		{Constituency: "Westbrook", ConstNo: "3", LeadingCandidate: "B Three", LeadingParty: "Beta Party", TrailingCandidate: "A Three", TrailingParty: "Alpha Party", Margin: 250, Status: "Declared"},
	}
}

// SampleDetailed is the per-candidate fixture matching SampleConstituencies,
// spread over two states.
func SampleDetailed() []models.DetailedResult {
	return []models.DetailedResult{
		{State: "North State", PCNo: 1, PCName: "Northfield", SlNo: 1, Candidate: "A One", Party: "Alpha Party", EVMVotes: 580, PostalVotes: 20, TotalVotes: 600, VoteShare: 54.5},
		{State: "North State", PCNo: 1, PCName: "Northfield", SlNo: 2, Candidate: "B One", Party: "Beta Party", EVMVotes: 490, PostalVotes: 10, TotalVotes: 500, VoteShare: 45.5},
		{State: "North State", PCNo: 2, PCName: "Southgate", SlNo: 1, Candidate: "A Two", Party: "Alpha Party", EVMVotes: 430, PostalVotes: 10, TotalVotes: 440, VoteShare: 52.4},
		{State: "North State", PCNo: 2, PCName: "Southgate", SlNo: 2, Candidate: "B Two", Party: "Beta Party", EVMVotes: 395, PostalVotes: 5, TotalVotes: 400, VoteShare: 47.6},
		{State: "South State", PCNo: 3, PCName: "Westbrook", SlNo: 1, Candidate: "B Three", Party: "Beta Party", EVMVotes: 740, PostalVotes: 10, TotalVotes: 750, VoteShare: 60.0},
		{State: "South State", PCNo: 3, PCName: "Westbrook", SlNo: 2, Candidate: "A Three", Party: "Alpha Party", EVMVotes: 495, PostalVotes: 5, TotalVotes: 500, VoteShare: 40.0},
	}
}

// SampleCandidates is the flat candidate fixture matching SampleDetailed.
func SampleCandidates() []models.CandidateResult {
	var out []models.CandidateResult
	for i, d := range SampleDetailed() {
		out = append(out, models.CandidateResult{
			SN:             i + 1,
			Candidate:      d.Candidate,
			Party:          d.Party,
			EVMVotes:       d.EVMVotes,
			PostalVotes:    d.PostalVotes,
			TotalVotes:     d.TotalVotes,
			VotePercentage: d.VoteShare,
			State:          d.State,
			Constituency:   d.PCName,
		})
	}
	return out
}

// NewLoadedDataset creates a dataset service over the sample fixtures and
// runs the initial load.
func NewLoadedDataset(t *testing.T) *services.DatasetService {
	t.Helper()

	source := mock.New(
		mock.WithConstituencies(SampleConstituencies()),
		mock.WithCandidates(SampleCandidates()),
		mock.WithDetailed(SampleDetailed()),
	)
	ds := services.NewDatasetService(NewTestLogger(), source)
	if err := ds.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return ds
}

// NewEngine creates an aggregation engine over the default reference
// tables.
func NewEngine() *analytics.Engine {
	return analytics.New(reference.Default())
}
