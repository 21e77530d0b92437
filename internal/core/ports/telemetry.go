// Package ports defines the interfaces the engine and dispatcher depend on,
// decoupling them from concrete adapters.
package ports

import (
	"context"
	"io"
)

// Vertex represents a single recorded unit of work (one task's execution)
// in the telemetry stream.
type Vertex interface {
	// Stdout returns a writer a task may use to stream output.
	Stdout() io.Writer
	// Stderr returns a writer a task may use to stream error output.
	Stderr() io.Writer
	// Complete marks the vertex finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped because an upstream dependency
	// already failed (a dependency_error short-circuit, not a cache hit in
	// the traditional sense, but the same "didn't really run" semantics).
	Cached()
}

// Telemetry is the factory for recording per-task execution vertices.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex for the named task.
	Record(ctx context.Context, taskName string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}
