package telemetry

import (
	"context"
	"os"

	"github.com/airgapci/airlock/internal/adapters/telemetry/progrock"
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// CI log collectors choke on the animated tape.
			if os.Getenv("CI") != "" || os.Getenv("AIRLOCK_PLAIN") != "" {
				return NewNoOp(), nil
			}
			return progrock.New(), nil
		},
	})
}
