// Package progrock provides the progrock-backed implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.heftrun.dev/heft/internal/core/ports"
)

// Recorder implements ports.Telemetry using github.com/vito/progrock.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a Recorder backed by a fresh in-memory tape.
func New() ports.Telemetry {
	tape := progrock.NewTape()
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Record starts a vertex for the named task. The vertex digest is derived
// from the task name so the same task produces a stable vertex identity
// across a run.
func (r *Recorder) Record(_ context.Context, taskName string) ports.Vertex {
	d := digest.FromString(taskName)
	return &Vertex{vertex: r.rec.Vertex(d, taskName)}
}

// Close flushes and closes the recording tape.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
