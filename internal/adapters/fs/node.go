package fs

import (
	"context"

	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the inspector Graft node.
const NodeID graft.ID = "adapter.fs.inspector"

func init() {
	graft.Register(graft.Node[ports.ArtifactInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactInspector, error) {
			return NewInspector(), nil
		},
	})
}
