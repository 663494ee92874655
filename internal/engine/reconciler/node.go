package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Reconciler, error) {
			return New(), nil
		},
	})
}
