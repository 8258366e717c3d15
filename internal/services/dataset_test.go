package services_test

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/electoscope/electoscope/internal/errors"
	"github.com/electoscope/electoscope/internal/repository/mock"
	"github.com/electoscope/electoscope/internal/services"
	"github.com/electoscope/electoscope/internal/testutil"
)

func TestDatasetSnapshotBeforeLoad(t *testing.T) {
	ds := services.NewDatasetService(testutil.NewTestLogger(), mock.New())

	if ds.Loaded() {
		t.Error("Loaded() = true before any load")
	}
	_, err := ds.Snapshot()
	if err == nil {
		t.Fatal("expected error before load, got nil")
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperrors.ErrUnavailable {
		t.Errorf("expected unavailable error, got %v", err)
	}
}

func TestDatasetLoad(t *testing.T) {
	ds := testutil.NewLoadedDataset(t)

	snap, err := ds.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Constituencies) != 3 {
		t.Errorf("constituencies = %d, want 3", len(snap.Constituencies))
	}
	if len(snap.Detailed) != 6 {
		t.Errorf("detailed rows = %d, want 6", len(snap.Detailed))
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt not set")
	}
}

func TestDatasetDistinctLists(t *testing.T) {
	ds := testutil.NewLoadedDataset(t)

	snap, err := ds.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	wantStates := []string{"North State", "South State"}
	if len(snap.States) != len(wantStates) {
		t.Fatalf("states = %v, want %v", snap.States, wantStates)
	}
	for i, s := range wantStates {
		if snap.States[i] != s {
			t.Errorf("states[%d] = %q, want %q", i, snap.States[i], s)
		}
	}

	wantParties := []string{"Alpha Party", "Beta Party"}
	if len(snap.Parties) != len(wantParties) {
		t.Fatalf("parties = %v, want %v", snap.Parties, wantParties)
	}
	for i, p := range wantParties {
		if snap.Parties[i] != p {
			t.Errorf("parties[%d] = %q, want %q", i, snap.Parties[i], p)
		}
	}
}

func TestDatasetLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	ds := testutil.NewLoadedDataset(t)
	before, err := ds.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	failing := services.NewDatasetService(testutil.NewTestLogger(), mock.New(
		mock.WithDetailedError(errors.New("disk gone")),
	))
	if err := failing.Load(context.Background()); err == nil {
		t.Fatal("expected load error, got nil")
	}

	// The original service is untouched by the failed load elsewhere, and a
	// reload failure on the same service must not clear its snapshot either.
	after, err := ds.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot after failed load: %v", err)
	}
	if len(after.Constituencies) != len(before.Constituencies) {
		t.Error("snapshot changed after unrelated failed load")
	}
}

func TestDatasetPartialFailureAbortsLoad(t *testing.T) {
	cases := []struct {
		name string
		opts []mock.Option
	}{
		{"constituencies", []mock.Option{mock.WithConstituenciesError(errors.New("boom"))}},
		{"candidates", []mock.Option{mock.WithCandidatesError(errors.New("boom"))}},
		{"detailed", []mock.Option{mock.WithDetailedError(errors.New("boom"))}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := services.NewDatasetService(testutil.NewTestLogger(), mock.New(tc.opts...))
			if err := ds.Load(context.Background()); err == nil {
				t.Fatal("expected load error, got nil")
			}
			if ds.Loaded() {
				t.Error("Loaded() = true after failed load")
			}
		})
	}
}

func TestDatasetReloadSwapsSnapshot(t *testing.T) {
	source := mock.New(
		mock.WithConstituencies(testutil.SampleConstituencies()),
		mock.WithCandidates(testutil.SampleCandidates()),
		mock.WithDetailed(testutil.SampleDetailed()),
	)
	ds := services.NewDatasetService(testutil.NewTestLogger(), source)
	if err := ds.Load(context.Background()); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	first, _ := ds.Snapshot()

	if err := ds.Load(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	second, _ := ds.Snapshot()

	if first == second {
		t.Error("reload returned the same snapshot pointer")
	}
	if second.LoadedAt.Before(first.LoadedAt) {
		t.Error("reload did not refresh LoadedAt")
	}
}
