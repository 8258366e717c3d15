package services

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/electoscope/electoscope/internal/errors"
	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/repository"
)

// Snapshot is one fully loaded dataset. It is immutable once built;
// reloads replace the whole snapshot, never patch it.
type Snapshot struct {
	Constituencies []models.ConstituencyResult
	Candidates     []models.CandidateResult
	Detailed       []models.DetailedResult
	States         []string
	Parties        []string
	LoadedAt       time.Time
}

// DatasetService loads election datasets and holds the current snapshot.
// Readers always see either the previous complete snapshot or the new one;
// a failed load leaves the previous snapshot in place.
type DatasetService struct {
	log    logger.Logger
	source repository.Source
	snap   atomic.Pointer[Snapshot]
}

// NewDatasetService creates a dataset service over the given source.
func NewDatasetService(log logger.Logger, source repository.Source) *DatasetService {
	return &DatasetService{log: log, source: source}
}

// Load reads all three record sets and swaps in a new snapshot. Any read
// failure aborts the load; no partial dataset becomes visible.
func (s *DatasetService) Load(ctx context.Context) error {
	start := time.Now()

	constituencies, err := s.source.Constituencies(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnavailable, "load constituency results")
	}
	candidates, err := s.source.Candidates(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnavailable, "load candidate results")
	}
	detailed, err := s.source.Detailed(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnavailable, "load detailed results")
	}

	snap := &Snapshot{
		Constituencies: constituencies,
		Candidates:     candidates,
		Detailed:       detailed,
		States:         distinctStates(detailed),
		Parties:        distinctParties(constituencies),
		LoadedAt:       time.Now(),
	}
	s.snap.Store(snap)

	s.log.Info("Dataset loaded",
		"constituencies", len(constituencies),
		"candidates", len(candidates),
		"detailed_rows", len(detailed),
		"states", len(snap.States),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// Snapshot returns the current dataset, or an unavailable error when no
// load has succeeded yet.
func (s *DatasetService) Snapshot() (*Snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, errors.Unavailable("no dataset loaded")
	}
	return snap, nil
}

// Loaded reports whether a dataset is available.
func (s *DatasetService) Loaded() bool {
	return s.snap.Load() != nil
}

func distinctStates(detailed []models.DetailedResult) []string {
	seen := make(map[string]struct{})
	var states []string
	for _, d := range detailed {
		if d.State == "" {
			continue
		}
		if _, ok := seen[d.State]; !ok {
			seen[d.State] = struct{}{}
			states = append(states, d.State)
		}
	}
	sort.Strings(states)
	return states
}

func distinctParties(constituencies []models.ConstituencyResult) []string {
	seen := make(map[string]struct{})
	var parties []string
	for _, c := range constituencies {
		if c.LeadingParty == "" {
			continue
		}
		if _, ok := seen[c.LeadingParty]; !ok {
			seen[c.LeadingParty] = struct{}{}
			parties = append(parties, c.LeadingParty)
		}
	}
	sort.Strings(parties)
	return parties
}
