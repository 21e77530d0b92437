// Package dedup canonicalizes a task graph by collapsing tasks with
// identical function identity and fully-expanded argument trees into a
// single survivor, rewiring dependents to reference the survivor.
package dedup

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.heftrun.dev/heft/internal/core/domain"
)

// canonicalForm computes the structurally-hashed canonical form of a task:
// (function identity, normalized argument tree), where every Dependency
// marker is replaced by (survivor(producer), extraction key) so that two
// tasks depending on what turns out to be the same survivor hash equal even
// if they were written against different (later-merged) producer IDs.
func canonicalForm(t domain.Task, survivor func(domain.TaskID) domain.TaskID) string {
	h := xxhash.New()

	_, _ = fmt.Fprintf(h, "fn:%#v\x00kind:%d\x00", t.FnID, t.Args.Kind)

	writeLeaf := func(v any) {
		if dep, ok := v.(domain.Dependency); ok {
			_, _ = fmt.Fprintf(h, "dep:%s:%#v\x00", survivor(dep.Producer).String(), dep.ExtractKey)
			return
		}
		_, _ = fmt.Fprintf(h, "val:%#v\x00", v)
	}

	switch t.Args.Kind {
	case domain.ArgSingle:
		writeLeaf(t.Args.Value)
	case domain.ArgSequence:
		for _, v := range t.Args.Seq {
			writeLeaf(v)
		}
	case domain.ArgKeyed:
		for _, k := range sortedKeys(t.Args.Keyed) {
			_, _ = fmt.Fprintf(h, "key:%s\x00", k)
			writeLeaf(t.Args.Keyed[k])
		}
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
