// Package domain contains the core graph, task, and result models shared by
// the scheduler and dispatcher.
package domain

import (
	"fmt"
	"strings"
	"sync"
	"unique"
)

// TaskID is an opaque, comparable identifier for a task. Any comparable Go
// value can be wrapped with NewID; fixed-length ordered sequences of IDs can
// be wrapped with NewStructuredID to support Prefix composition and result
// Inflation (see internal/engine/compose and internal/result).
//
// TaskID wraps a unique.Handle so that values with equal canonical form
// compare equal with == and are cheap to use as map keys.
type TaskID struct {
	h unique.Handle[string]
}

var (
	structMu    sync.RWMutex
	structParts = make(map[string][]TaskID)
)

// NewID wraps any comparable Go value as a scalar TaskID. token's plain
// string form (fmt.Sprint, not a Go-syntax quoting like %#v) becomes the
// ID's canonical and human-readable form, so a string token such as "left"
// round-trips through String() as "left", not a quoted Go literal.
func NewID(token any) TaskID {
	return TaskID{h: unique.Make(fmt.Sprint(token))}
}

// NewStructuredID builds a fixed-length structured TaskID from its ordered
// parts. Structured IDs are what Inflate groups into nested maps and what
// Prefix produces when composing independent graphs.
func NewStructuredID(parts ...TaskID) TaskID {
	enc := make([]string, len(parts))
	for i, p := range parts {
		enc[i] = p.h.Value()
	}
	canon := fmt.Sprintf("t:%d:%s", len(parts), strings.Join(enc, "\x1f"))

	structMu.Lock()
	if _, ok := structParts[canon]; !ok {
		stored := make([]TaskID, len(parts))
		copy(stored, parts)
		structParts[canon] = stored
	}
	structMu.Unlock()

	return TaskID{h: unique.Make(canon)}
}

// String returns a stable, human-readable representation of the ID. HEFT
// priority ties are broken using this string form to keep placement order
// deterministic across runs.
func (id TaskID) String() string {
	return id.h.Value()
}

// Parts reports whether id was built with NewStructuredID, and if so returns
// its ordered component IDs.
func (id TaskID) Parts() ([]TaskID, bool) {
	structMu.RLock()
	parts, ok := structParts[id.h.Value()]
	structMu.RUnlock()
	return parts, ok
}
