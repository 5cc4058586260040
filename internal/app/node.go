package app

import (
	"context"

	"github.com/airgapci/airlock/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/airgapci/airlock/internal/adapters/envfile"   //nolint:depguard // Wired in app layer
	"github.com/airgapci/airlock/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/airgapci/airlock/internal/adapters/netprobe"  //nolint:depguard // Wired in app layer
	"github.com/airgapci/airlock/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"github.com/airgapci/airlock/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/airgapci/airlock/internal/engine/pipeline"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			netprobe.NodeID,
			envfile.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			envLoader, err := graft.Dep[ports.EnvLoader](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, pipe, prober, envLoader, store, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
