package ports

import "context"

// Tracer records the coarse stages of a comparison run (loading each side,
// the convergence, the diff) for progress reporting.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins recording a stage.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span is one recorded stage.
type Span interface {
	// End completes the stage.
	End()
	// RecordError attaches a failure to the stage before End.
	RecordError(err error)
}
