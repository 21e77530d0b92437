package result

import "go.heftrun.dev/heft/internal/core/domain"

// Inflate transforms a flat mapping keyed by TaskID into a nested mapping of
// string keys: every structured ID (built by domain.NewStructuredID, most
// commonly via compose.Prefix) expands into one map level per component
// token, outer token first; non-structured keys and structured keys of a
// different depth coexist as entries alongside the nested ones. Inflation
// never drops a key and is independent of the map's iteration order.
func Inflate(tasks map[domain.TaskID]domain.Result) map[string]any {
	out := make(map[string]any, len(tasks))
	for id, res := range tasks {
		parts, ok := id.Parts()
		if !ok {
			out[id.String()] = res
			continue
		}
		insert(out, parts, res)
	}
	return out
}

// insert descends one nesting level per remaining part, creating
// intermediate maps as needed, and places res at the leaf.
func insert(level map[string]any, parts []domain.TaskID, res domain.Result) {
	key := parts[0].String()
	if len(parts) == 1 {
		level[key] = res
		return
	}

	sub, ok := level[key].(map[string]any)
	if !ok {
		sub = make(map[string]any)
		level[key] = sub
	}
	insert(sub, parts[1:], res)
}
