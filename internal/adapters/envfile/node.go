package envfile

import (
	"context"

	"github.com/airgapci/airlock/internal/adapters/logger"
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the environment loader Graft node.
const NodeID graft.ID = "adapter.env_loader"

func init() {
	graft.Register(graft.Node[ports.EnvLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
