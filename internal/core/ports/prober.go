// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"time"

	"github.com/airgapci/airlock/internal/core/domain"
)

// Prober checks whether well-known network targets are reachable.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe contacts each target with the given per-attempt timeout and
	// reports what it observed. A target that times out, refuses the
	// connection or fails DNS resolution is recorded as unreachable.
	//
	// Probe returns an error only when the check itself cannot be carried
	// out (no targets, unparsable target URL). Reachability is never an
	// error here; deciding that reachable means failure is the pipeline's
	// job.
	Probe(ctx context.Context, targets []string, timeout time.Duration) (domain.ProbeResult, error)
}
