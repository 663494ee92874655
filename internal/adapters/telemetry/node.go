package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcmp/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
// The no-op tracer is the default; the progrock recorder replaces it when
// progress reporting is requested on the command line.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewNoOpTracer(), nil
		},
	})
}
