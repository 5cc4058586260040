package ports

import "github.com/airgapci/airlock/internal/core/domain"

// ReportStore persists verification reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=report_store.go -destination=mocks/mock_report_store.go -package=mocks
type ReportStore interface {
	// Save writes the report to path, creating parent directories as
	// needed. An existing report is replaced.
	Save(path string, report domain.Report) error

	// Load reads the report at path.
	// Returns nil, nil if no report exists there.
	Load(path string) (*domain.Report, error)
}
