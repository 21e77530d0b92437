package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex, wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer a task may use to stream output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer a task may use to stream error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as skipped because an upstream dependency
// already failed.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
