package netprobe

import (
	"context"

	"github.com/airgapci/airlock/internal/adapters/logger"
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Prober, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(log), nil
		},
	})
}
