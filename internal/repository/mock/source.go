// Package mock provides a configurable in-memory Source for tests.
package mock

import (
	"context"

	"github.com/electoscope/electoscope/internal/models"
)

// Source is a mock dataset source for testing.
type Source struct {
	constituencies []models.ConstituencyResult
	candidates     []models.CandidateResult
	detailed       []models.DetailedResult

	constituenciesErr error
	candidatesErr     error
	detailedErr       error
}

// Option configures the mock source.
type Option func(*Source)

// WithConstituencies sets the constituency records to return.
func WithConstituencies(records []models.ConstituencyResult) Option {
	return func(s *Source) {
		s.constituencies = records
	}
}

// WithCandidates sets the candidate records to return.
func WithCandidates(records []models.CandidateResult) Option {
	return func(s *Source) {
		s.candidates = records
	}
}

// WithDetailed sets the detailed records to return.
func WithDetailed(records []models.DetailedResult) Option {
	return func(s *Source) {
		s.detailed = records
	}
}

// WithConstituenciesError sets an error to return from Constituencies.
func WithConstituenciesError(err error) Option {
	return func(s *Source) {
		s.constituenciesErr = err
	}
}

// WithCandidatesError sets an error to return from Candidates.
func WithCandidatesError(err error) Option {
	return func(s *Source) {
		s.candidatesErr = err
	}
}

// WithDetailedError sets an error to return from Detailed.
func WithDetailedError(err error) Option {
	return func(s *Source) {
		s.detailedErr = err
	}
}

// New creates a mock source with the given options.
func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) Constituencies(ctx context.Context) ([]models.ConstituencyResult, error) {
	if s.constituenciesErr != nil {
		return nil, s.constituenciesErr
	}
	return s.constituencies, nil
}

func (s *Source) Candidates(ctx context.Context) ([]models.CandidateResult, error) {
	if s.candidatesErr != nil {
		return nil, s.candidatesErr
	}
	return s.candidates, nil
}

func (s *Source) Detailed(ctx context.Context) ([]models.DetailedResult, error) {
	if s.detailedErr != nil {
		return nil, s.detailedErr
	}
	return s.detailed, nil
}
