package logger

import (
	"context"
	"os"

	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			if path := os.Getenv("AIRLOCK_LOG_FILE"); path != "" {
				return NewRotating(path), nil
			}
			return New(), nil
		},
	})
}
