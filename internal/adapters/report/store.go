// Package report persists and renders verification reports.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/airgapci/airlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore using a flat JSON file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save writes the report to path, replacing any previous run's report.
func (s *Store) Save(path string, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrReportMarshalFailed, zerr.Wrap(err, "failed to marshal report"))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, zerr.With(zerr.Wrap(err, "failed to create report directory"), "path", dir))
	}

	//nolint:gosec // Path comes from the verification plan
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, zerr.With(zerr.Wrap(err, "failed to write report"), "path", path))
	}

	return nil
}

// Load reads the report at path. A missing file returns nil, nil.
func (s *Store) Load(path string) (*domain.Report, error) {
	//nolint:gosec // Path comes from the verification plan
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrReportReadFailed, zerr.With(zerr.Wrap(err, "failed to read report"), "path", path))
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Join(domain.ErrReportUnmarshalFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal report"), "path", path))
	}

	return &report, nil
}
