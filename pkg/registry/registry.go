// Package registry provides uniqueness-checked string sets with
// deterministic iteration, used for built-in ids, overload ids, and
// function type-descriptor ids.
package registry

import "sort"

// Registry is a set of strings supporting insert-if-absent and
// lexicographic in-order traversal. The zero value is not usable;
// call New.
type Registry struct {
	names map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Insert adds name to the set, reporting false if it was already
// present.
func (r *Registry) Insert(name string) bool {
	if _, ok := r.names[name]; ok {
		return false
	}
	r.names[name] = struct{}{}
	return true
}

// Contains reports whether name is in the set.
func (r *Registry) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.names) }

// InOrder returns the entries in ascending lexicographic order.
func (r *Registry) InOrder() []string {
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
