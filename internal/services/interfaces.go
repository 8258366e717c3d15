package services

import (
	"context"

	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/views"
)

// DatasetServicer defines the interface for dataset lifecycle operations
type DatasetServicer interface {
	Load(ctx context.Context) error
	Snapshot() (*Snapshot, error)
	Loaded() bool
}

// StatsServicer defines the interface for derived-statistics operations
type StatsServicer interface {
	Overview() (*Overview, error)
	Parties(limit int) ([]models.PartyStats, error)
	VoteShare(limit int) ([]models.PartyStats, error)
	States() ([]models.StateStats, error)
	State(name string) (*StateDetail, error)
	Constituencies(q ConstituencyQuery) ([]models.ConstituencyResult, error)
	CompareParties(a, b string) (*views.PartyComparison, error)
	CompareStates(a, b string) (*views.StateComparison, error)
}

// AskServicer defines the interface for the question panel
type AskServicer interface {
	Ask(ctx context.Context, question string, history []models.AskMessage) (*Answer, error)
}

// ShareServicer defines the interface for dashboard share links
type ShareServicer interface {
	DashboardURL() string
	QRImage() ([]byte, error)
}

// Ensure concrete types implement interfaces
var (
	_ DatasetServicer = (*DatasetService)(nil)
	_ StatsServicer   = (*StatsService)(nil)
	_ AskServicer     = (*AskService)(nil)
	_ ShareServicer   = (*ShareService)(nil)
)
