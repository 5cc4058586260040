// Package fs implements filesystem checks on build inputs and outputs.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactInspector = (*Inspector)(nil)

// Inspector implements ports.ArtifactInspector.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// VerifySource checks that the source tree exists, is a directory and
// contains at least one entry.
func (i *Inspector) VerifySource(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrSourceTreeMissing, "cannot read source tree"), "path", dir)
		}
		return zerr.With(zerr.Wrap(err, "failed to read source tree"), "path", dir)
	}
	if len(entries) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrSourceTreeEmpty, "nothing to build"), "path", dir)
	}
	return nil
}

// Inspect checks that the artifact at path exists as a regular executable
// file and records its size, mode and content fingerprint.
func (i *Inspector) Inspect(path string) (*domain.ArtifactInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "build produced no artifact"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}

	mode := info.Mode()
	if mode.IsDir() || !mode.IsRegular() {
		return nil, zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "not a regular file"), "path", path)
	}
	if mode&0o111 == 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrArtifactNotExecutable, "missing executable bit"), "mode", mode.String()), "path", path)
	}

	fingerprint, err := fingerprintFile(path)
	if err != nil {
		return nil, err
	}

	return &domain.ArtifactInfo{
		Path:        path,
		Size:        info.Size(),
		Mode:        mode.String(),
		Fingerprint: fingerprint,
	}, nil
}

// fingerprintFile computes the XXHash of the file's content.
func fingerprintFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the verification plan
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash artifact"), "path", path)
	}

	return fmt.Sprintf("xxh64:%016x", hasher.Sum64()), nil
}
