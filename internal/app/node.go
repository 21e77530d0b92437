package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.heftrun.dev/heft/internal/adapters/config"
	"go.heftrun.dev/heft/internal/adapters/logger"
	"go.heftrun.dev/heft/internal/adapters/telemetry/progrock"
	"go.heftrun.dev/heft/internal/core/ports"
	"go.heftrun.dev/heft/internal/dispatch"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
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
			return New(loader, dispatch.NewDispatcher(), tel, log), nil
		},
	})
}
