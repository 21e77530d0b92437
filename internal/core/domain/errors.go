package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when AddTask is called with a TaskID
	// already present in the graph.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a Dependency references a TaskID
	// that is not present in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested TaskID is not in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrMalformedArgSpec is returned when an ArgSpec has a Kind not matching
	// any of the single/sequence/keyed shapes.
	ErrMalformedArgSpec = zerr.New("malformed argument specification")

	// ErrNonFiniteCost is returned when a compute or communication cost is
	// negative, NaN, or infinite.
	ErrNonFiniteCost = zerr.New("cost must be non-negative and finite")

	// ErrInvalidExtractPath is returned when an extraction key path cannot be
	// applied to a producer's result (index out of range, missing map key, or
	// a lookup against a non-indexable value).
	ErrInvalidExtractPath = zerr.New("invalid extraction path")

	// ErrDependencyFailed is the cause wrapped by a dependency_error Err when
	// at least one upstream dependency resolved to a failure.
	ErrDependencyFailed = zerr.New("upstream dependency failed")

	// ErrTaskTimeout is the cause wrapped by a task_timeout Err, whether from a
	// per-read deadline inside a worker or the dispatcher's collection
	// deadline.
	ErrTaskTimeout = zerr.New("task timed out")
)
