package ports

import (
	"context"
	"io"

	"github.com/airgapci/airlock/internal/core/domain"
)

// Executor defines the interface for running pipeline commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given command with the specified environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE"
	// format, typically the loaded dependency overlay. It is merged over
	// the harness's own environment, with overlay entries winning on
	// collision.
	//
	// Combined process output is streamed to stdout and stderr. It returns
	// an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.Command, env []string, stdout, stderr io.Writer) error
}
