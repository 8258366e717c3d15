package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/electoscope/electoscope/internal/models"
)

// SQLiteSource reads the three record sets from a prepared results
// database. The database is an ingestion format only; this source never
// writes to it.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens a results database at the given path.
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLiteSource{db: db}, nil
}

// NewSQLiteSourceFromDB wraps an existing connection (for testing).
func NewSQLiteSourceFromDB(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive.
func (s *SQLiteSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Constituencies reads the constituency summary table in stored order.
func (s *SQLiteSource) Constituencies(ctx context.Context) ([]models.ConstituencyResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT constituency, const_no, leading_candidate, leading_party,
		       trailing_candidate, trailing_party, margin, status
		FROM constituencies
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query constituencies: %w", err)
	}
	defer rows.Close()

	var results []models.ConstituencyResult
	for rows.Next() {
		var r models.ConstituencyResult
		if err := rows.Scan(&r.Constituency, &r.ConstNo, &r.LeadingCandidate, &r.LeadingParty,
			&r.TrailingCandidate, &r.TrailingParty, &r.Margin, &r.Status); err != nil {
			return nil, fmt.Errorf("scan constituency row: %w", err)
		}
		if r.Constituency == "" {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Candidates reads the flat candidate table in stored order.
func (s *SQLiteSource) Candidates(ctx context.Context) ([]models.CandidateResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sn, candidate, party, evm_votes, postal_votes, total_votes,
		       vote_percentage, state, constituency
		FROM candidates
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var results []models.CandidateResult
	for rows.Next() {
		var r models.CandidateResult
		if err := rows.Scan(&r.SN, &r.Candidate, &r.Party, &r.EVMVotes, &r.PostalVotes,
			&r.TotalVotes, &r.VotePercentage, &r.State, &r.Constituency); err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		if r.Candidate == "" {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Detailed reads the per-constituency-per-candidate table in stored order.
func (s *SQLiteSource) Detailed(ctx context.Context) ([]models.DetailedResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT state, pc_no, pc_name, sl_no, candidate, party,
		       evm_votes, postal_votes, total_votes, vote_share
		FROM results
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []models.DetailedResult
	for rows.Next() {
		var r models.DetailedResult
		if err := rows.Scan(&r.State, &r.PCNo, &r.PCName, &r.SlNo, &r.Candidate, &r.Party,
			&r.EVMVotes, &r.PostalVotes, &r.TotalVotes, &r.VoteShare); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		if r.Candidate == "" {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
