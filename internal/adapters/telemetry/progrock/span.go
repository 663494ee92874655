package progrock

import (
	"github.com/vito/progrock"
)

// span implements ports.Span wrapping *progrock.VertexRecorder.
type span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// RecordError attaches a failure to the stage. The vertex is marked errored
// when the span ends.
func (s *span) RecordError(err error) {
	s.err = err
}

// End marks the vertex as finished, successfully or with the recorded error.
func (s *span) End() {
	s.vertex.Done(s.err)
}
