package ports

import "github.com/airgapci/airlock/internal/core/domain"

// ArtifactInspector examines build inputs and outputs on disk.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type ArtifactInspector interface {
	// VerifySource checks that the source tree exists and is not empty.
	// It returns an error wrapping domain.ErrSourceTreeMissing or
	// domain.ErrSourceTreeEmpty otherwise.
	VerifySource(dir string) error

	// Inspect checks that the artifact exists and carries the executable
	// bit, and records its size and content fingerprint. It returns an
	// error wrapping domain.ErrArtifactMissing or
	// domain.ErrArtifactNotExecutable otherwise.
	Inspect(path string) (*domain.ArtifactInfo, error)
}
