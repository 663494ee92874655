package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcmp/internal/adapters/cargo"
	"go.trai.ch/lockcmp/internal/core/ports"
)

// NodeID is the unique identifier for the lockfile source Graft node.
const NodeID graft.ID = "adapter.lockfile_source"

func init() {
	graft.Register(graft.Node[ports.LockfileSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.NodeID},
		Run: func(ctx context.Context) (ports.LockfileSource, error) {
			parser, err := graft.Dep[ports.LockfileParser](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(parser), nil
		},
	})
}
