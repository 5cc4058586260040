package ports

import "github.com/airgapci/airlock/internal/core/domain"

// ConfigLoader defines the interface for loading the verification plan.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path and returns the plan it
	// describes, with defaults applied and relative paths resolved.
	// An empty path means discovery in the current directory; a run
	// without a config file gets the default plan.
	Load(path string) (*domain.Plan, error)
}
