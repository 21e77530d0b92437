package domain

import "sort"

// ArgKind discriminates the three shapes an ArgSpec can take. It is modeled
// as an explicit tagged union rather than overloading a single container,
// per the design note that the single/sequence/keyed trichotomy must stay a
// first-class sum type.
type ArgKind int

const (
	// ArgSingle wraps exactly one positional value.
	ArgSingle ArgKind = iota
	// ArgSequence wraps an ordered list of positional values.
	ArgSequence
	// ArgKeyed wraps a keyword mapping of values.
	ArgKeyed
)

// ArgSpec describes the shape of a task's arguments. Any leaf value
// (Value, an element of Seq, or a value in Keyed) may itself be a
// Dependency marker denoting an incoming edge from a producer task.
type ArgSpec struct {
	Kind  ArgKind
	Value any
	Seq   []any
	Keyed map[string]any
}

// Single builds a single-value ArgSpec.
func Single(v any) ArgSpec {
	return ArgSpec{Kind: ArgSingle, Value: v}
}

// Sequence builds an ordered-sequence ArgSpec.
func Sequence(vs ...any) ArgSpec {
	return ArgSpec{Kind: ArgSequence, Seq: vs}
}

// Keyed builds a keyword-mapping ArgSpec.
func Keyed(m map[string]any) ArgSpec {
	return ArgSpec{Kind: ArgKeyed, Keyed: m}
}

// Validate reports ErrMalformedArgSpec if the ArgSpec's Kind does not match
// one of the three known shapes.
func (a ArgSpec) Validate() error {
	switch a.Kind {
	case ArgSingle, ArgSequence, ArgKeyed:
		return nil
	default:
		return ErrMalformedArgSpec
	}
}

// leaves yields every leaf value in the ArgSpec along with a stable visit
// order: for ArgKeyed, keys are visited in sorted order so that dependency
// discovery and canonical-form hashing do not depend on Go's randomized map
// iteration.
func (a ArgSpec) leaves(visit func(v any)) {
	switch a.Kind {
	case ArgSingle:
		visit(a.Value)
	case ArgSequence:
		for _, v := range a.Seq {
			visit(v)
		}
	case ArgKeyed:
		for _, k := range sortedKeys(a.Keyed) {
			visit(a.Keyed[k])
		}
	}
}

// Dependencies returns every Dependency marker reachable in the ArgSpec, in
// the same stable order used by leaves.
func (a ArgSpec) Dependencies() []Dependency {
	var deps []Dependency
	a.leaves(func(v any) {
		if d, ok := v.(Dependency); ok {
			deps = append(deps, d)
		}
	})
	return deps
}

// Resolve walks the ArgSpec, replacing every Dependency marker with the
// value returned by resolve, and returns a new ArgSpec of the same shape
// with no Dependency markers remaining.
func (a ArgSpec) Resolve(resolve func(Dependency) (any, error)) (ArgSpec, error) {
	substitute := func(v any) (any, error) {
		d, ok := v.(Dependency)
		if !ok {
			return v, nil
		}
		return resolve(d)
	}

	switch a.Kind {
	case ArgSingle:
		v, err := substitute(a.Value)
		if err != nil {
			return ArgSpec{}, err
		}
		return Single(v), nil
	case ArgSequence:
		out := make([]any, len(a.Seq))
		for i, v := range a.Seq {
			rv, err := substitute(v)
			if err != nil {
				return ArgSpec{}, err
			}
			out[i] = rv
		}
		return Sequence(out...), nil
	case ArgKeyed:
		out := make(map[string]any, len(a.Keyed))
		for _, k := range sortedKeys(a.Keyed) {
			rv, err := substitute(a.Keyed[k])
			if err != nil {
				return ArgSpec{}, err
			}
			out[k] = rv
		}
		return Keyed(out), nil
	default:
		return ArgSpec{}, ErrMalformedArgSpec
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
