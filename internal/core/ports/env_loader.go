package ports

import "github.com/airgapci/airlock/internal/core/domain"

// EnvLoader reads a prefetched environment file into an overlay.
//
//go:generate mockgen -source=env_loader.go -destination=mocks/mock_env_loader.go -package=mocks
type EnvLoader interface {
	// Load parses the shell-sourceable KEY=VALUE file at path. The file is
	// read once and never modified. A missing or malformed file is an
	// error wrapping domain.ErrEnvironmentLoad.
	Load(path string) (*domain.Overlay, error)
}
