package domain

import "fmt"

// ExtractKey is the "single key OR sequence of keys" lookup applied to a
// producer's result. Per design note, the ambiguity is resolved
// conservatively: a key built with Path is always treated as a multi-step
// lookup, even a Path of length one; a key built with Key is always a
// single lookup, even if the token itself happens to be slice-like.
type ExtractKey struct {
	path []any
}

// NoKey is the zero ExtractKey: the producer's whole result is used as-is.
var NoKey = ExtractKey{}

// Key builds a single-token extraction key.
func Key(token any) ExtractKey {
	return ExtractKey{path: []any{token}}
}

// Path builds a multi-step extraction key, applied left to right.
func Path(tokens ...any) ExtractKey {
	return ExtractKey{path: append([]any(nil), tokens...)}
}

// IsNone reports whether the key is the zero value (no extraction).
func (k ExtractKey) IsNone() bool {
	return len(k.path) == 0
}

// Apply applies the extraction key to a producer's result value, performing
// successive index/map lookups for each token in the path.
func (k ExtractKey) Apply(value any) (any, error) {
	cur := value
	for _, token := range k.path {
		next, err := extractOne(cur, token)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func extractOne(value, token any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("%w: map key %#v is not a string", ErrInvalidExtractPath, token)
		}
		val, ok := v[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing map key %q", ErrInvalidExtractPath, key)
		}
		return val, nil
	case []any:
		idx, ok := asInt(token)
		if !ok || idx < 0 || idx >= len(v) {
			return nil, fmt.Errorf("%w: index %#v out of range for length %d", ErrInvalidExtractPath, token, len(v))
		}
		return v[idx], nil
	default:
		return nil, fmt.Errorf("%w: value of type %T is not indexable", ErrInvalidExtractPath, value)
	}
}

func asInt(token any) (int, bool) {
	switch t := token.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	default:
		return 0, false
	}
}

// Dependency is an incoming edge: a reference to a producer's TaskID, an
// optional extraction key applied to the producer's result, and an
// estimated communication cost incurred only when producer and consumer
// are placed on different workers.
type Dependency struct {
	Producer TaskID
	ExtractKey
	CommCost float64
}

// Dep constructs a Dependency.
func Dep(producer TaskID, key ExtractKey, commCost float64) Dependency {
	return Dependency{Producer: producer, ExtractKey: key, CommCost: commCost}
}
