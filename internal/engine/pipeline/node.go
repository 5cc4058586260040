package pipeline

import (
	"context"

	"github.com/airgapci/airlock/internal/adapters/envfile"   //nolint:depguard // Wired in engine wiring
	"github.com/airgapci/airlock/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/airgapci/airlock/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/airgapci/airlock/internal/adapters/netprobe"  //nolint:depguard // Wired in engine wiring
	"github.com/airgapci/airlock/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"github.com/airgapci/airlock/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			netprobe.NodeID,
			envfile.NodeID,
			shell.NodeID,
			fs.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			envLoader, err := graft.Dep[ports.EnvLoader](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			inspector, err := graft.Dep[ports.ArtifactInspector](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(prober, envLoader, executor, inspector, tel, log), nil
		},
	})
}
