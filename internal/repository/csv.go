package repository

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/parser"
)

// Default file names inside a dataset directory.
const (
	ConstituenciesFile = "constituencies.csv"
	CandidatesFile     = "candidates.csv"
	DetailedFile       = "results.csv"
)

// CSVSource reads the three record sets from comma-delimited exports in a
// single filesystem directory.
type CSVSource struct {
	fsys fs.FS
}

// NewCSVSource creates a source over an fs.FS holding the dataset files.
func NewCSVSource(fsys fs.FS) *CSVSource {
	return &CSVSource{fsys: fsys}
}

// NewCSVDir creates a source over a directory on disk.
func NewCSVDir(dir string) *CSVSource {
	return NewCSVSource(os.DirFS(dir))
}

func (s *CSVSource) read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// Constituencies reads and parses the constituency summary export.
func (s *CSVSource) Constituencies(ctx context.Context) ([]models.ConstituencyResult, error) {
	text, err := s.read(ctx, ConstituenciesFile)
	if err != nil {
		return nil, err
	}
	return parser.Constituencies(text)
}

// Candidates reads and parses the flat candidate export.
func (s *CSVSource) Candidates(ctx context.Context) ([]models.CandidateResult, error) {
	text, err := s.read(ctx, CandidatesFile)
	if err != nil {
		return nil, err
	}
	return parser.Candidates(text)
}

// Detailed reads and parses the per-constituency-per-candidate export.
func (s *CSVSource) Detailed(ctx context.Context) ([]models.DetailedResult, error) {
	text, err := s.read(ctx, DetailedFile)
	if err != nil {
		return nil, err
	}
	return parser.Detailed(text)
}
