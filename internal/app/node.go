package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcmp/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcmp/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcmp/internal/adapters/source" //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcmp/internal/adapters/telemetry"
	"go.trai.ch/lockcmp/internal/core/ports"
	"go.trai.ch/lockcmp/internal/engine/reconciler"
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
			source.NodeID,
			telemetry.TracerNodeID,
			reconciler.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			src, err := graft.Dep[ports.LockfileSource](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			rec, err := graft.Dep[*reconciler.Reconciler](ctx)
			if err != nil {
				return nil, err
			}

			return New(src, tracer, rec), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
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

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		Tracer:       tracer,
	}, nil
}
