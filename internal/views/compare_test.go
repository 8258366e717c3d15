package views_test

import (
	"errors"
	"math"
	"testing"

	"github.com/electoscope/electoscope/internal/analytics"
	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/reference"
	"github.com/electoscope/electoscope/internal/views"
)

func comparisonFixture() ([]models.ConstituencyResult, []models.DetailedResult, []models.PartyStats, []models.StateStats) {
	constituencies := []models.ConstituencyResult{
		{Constituency: "C1", LeadingParty: "Bharatiya Janata Party", Margin: 100},
		{Constituency: "C2", LeadingParty: "Bharatiya Janata Party", Margin: 300},
		{Constituency: "C3", LeadingParty: "Indian National Congress", Margin: 50},
	}
	detailed := []models.DetailedResult{
		{State: "S1", PCName: "C1", Candidate: "A", Party: "Bharatiya Janata Party", TotalVotes: 600},
		{State: "S1", PCName: "C1", Candidate: "B", Party: "Indian National Congress", TotalVotes: 500},
		{State: "S2", PCName: "C3", Candidate: "C", Party: "Indian National Congress", TotalVotes: 400},
		{State: "S2", PCName: "C3", Candidate: "D", Party: "Bharatiya Janata Party", TotalVotes: 350},
	}

	engine := analytics.New(reference.Default())
	return constituencies, detailed, engine.PartyStats(constituencies), engine.StateStats(detailed)
}

func TestCompareParties(t *testing.T) {
	constituencies, detailed, stats, _ := comparisonFixture()
	tables := reference.Default()

	cmp, err := views.CompareParties(tables, stats, constituencies, detailed,
		"Bharatiya Janata Party", "Indian National Congress")
	if err != nil {
		t.Fatalf("CompareParties failed: %v", err)
	}

	a := cmp.A
	if a.ShortName != "BJP" || a.Seats != 2 {
		t.Errorf("unexpected side A: %+v", a)
	}
	if a.AvgMargin != 200 || a.MaxMargin != 300 {
		t.Errorf("unexpected margins: avg=%v max=%d", a.AvgMargin, a.MaxMargin)
	}
	if a.PriorSeats != 303 || a.SeatChange != 2-303 {
		t.Errorf("unexpected prior comparison: %+v", a)
	}
	if a.TotalVotes != 950 {
		t.Errorf("expected 950 total votes, got %d", a.TotalVotes)
	}
	wantShare := 950.0 / 1850.0 * 100
	if math.Abs(a.VoteShare-wantShare) > 0.01 {
		t.Errorf("expected vote share %.2f, got %.2f", wantShare, a.VoteShare)
	}

	if cmp.B.ShortName != "INC" || cmp.B.Seats != 1 {
		t.Errorf("unexpected side B: %+v", cmp.B)
	}
}

func TestCompareParties_UnknownSide(t *testing.T) {
	constituencies, detailed, stats, _ := comparisonFixture()
	tables := reference.Default()

	_, err := views.CompareParties(tables, stats, constituencies, detailed,
		"Bharatiya Janata Party", "No Such Party")
	if !errors.Is(err, views.ErrNoComparison) {
		t.Errorf("expected ErrNoComparison, got %v", err)
	}

	_, err = views.CompareParties(tables, stats, constituencies, detailed,
		"No Such Party", "Indian National Congress")
	if !errors.Is(err, views.ErrNoComparison) {
		t.Errorf("expected ErrNoComparison, got %v", err)
	}
}

func TestCompareStates(t *testing.T) {
	_, detailed, _, stateStats := comparisonFixture()
	tables := reference.Default()

	cmp, err := views.CompareStates(tables, stateStats, detailed, "S1", "S2")
	if err != nil {
		t.Fatalf("CompareStates failed: %v", err)
	}

	if cmp.A.Name != "S1" || cmp.A.TotalSeats != 1 {
		t.Errorf("unexpected side A: %+v", cmp.A)
	}
	if cmp.A.Candidates != 2 {
		t.Errorf("expected 2 candidates in S1, got %d", cmp.A.Candidates)
	}
	if cmp.A.Parties["Bharatiya Janata Party"] != 1 {
		t.Errorf("unexpected party split: %+v", cmp.A.Parties)
	}
	if cmp.B.Name != "S2" || cmp.B.Parties["Indian National Congress"] != 1 {
		t.Errorf("unexpected side B: %+v", cmp.B)
	}
}

func TestCompareStates_UnknownSide(t *testing.T) {
	_, detailed, _, stateStats := comparisonFixture()

	_, err := views.CompareStates(reference.Default(), stateStats, detailed, "S1", "Atlantis")
	if !errors.Is(err, views.ErrNoComparison) {
		t.Errorf("expected ErrNoComparison, got %v", err)
	}
}

func TestCompareStates_PriorSeats(t *testing.T) {
	stats := []models.StateStats{
		{State: "Kerala", TotalSeats: 20, Parties: map[string]int{"INC": 20}},
		{State: "Madeupland", TotalSeats: 3, Parties: map[string]int{"INC": 3}},
	}

	cmp, err := views.CompareStates(reference.Default(), stats, nil, "Kerala", "Madeupland")
	if err != nil {
		t.Fatalf("CompareStates failed: %v", err)
	}
	if cmp.A.PriorSeats != 20 {
		t.Errorf("expected Kerala prior seats 20, got %d", cmp.A.PriorSeats)
	}
	if cmp.B.PriorSeats != 0 {
		t.Errorf("expected unknown state prior seats 0, got %d", cmp.B.PriorSeats)
	}
}
