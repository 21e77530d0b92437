package domain

import "fmt"

// ErrKind tags the reason a task produced an Err result instead of a value.
type ErrKind string

const (
	// ErrKindTask marks a failure raised by the user's Func during invocation.
	ErrKindTask ErrKind = "task_failure"
	// ErrKindDependency marks a task that was not invoked because at least one
	// of its dependency values was itself an Err.
	ErrKindDependency ErrKind = "dependency_error"
	// ErrKindTimeout marks a task whose dependency read, or the dispatcher's
	// overall collection, exceeded its configured deadline.
	ErrKindTimeout ErrKind = "task_timeout"
)

// Err is the sentinel wrapping a task failure. It is the zero-value-safe
// error type placed in a Result when a task does not produce a usable
// value.
type Err struct {
	Kind  ErrKind
	Cause error
}

// Error implements the error interface.
func (e *Err) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return string(e.Kind)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Err) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// TaskFailure wraps a failure raised by a task's own Func.
func TaskFailure(cause error) *Err {
	return &Err{Kind: ErrKindTask, Cause: cause}
}

// DependencyError builds the sentinel placed on a task skipped because an
// upstream dependency failed.
func DependencyError() *Err {
	return &Err{Kind: ErrKindDependency, Cause: ErrDependencyFailed}
}

// Timeout wraps a per-read or collection deadline failure.
func Timeout(cause error) *Err {
	return &Err{Kind: ErrKindTimeout, Cause: cause}
}

// Result is what a task produces: either a Value, or a non-nil Err
// describing why no value is available.
type Result struct {
	Value any
	Err   *Err
}

// Ok reports whether the result represents a successfully computed value.
func (r Result) Ok() bool {
	return r.Err == nil
}

// OkResult builds a successful Result.
func OkResult(v any) Result {
	return Result{Value: v}
}

// ErrResult builds a failed Result.
func ErrResult(err *Err) Result {
	return Result{Err: err}
}
