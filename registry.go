package overlaycounter

import "slices"

// Registry maps counter names to their types, in registration order.
type Registry struct {
	names []string
	types map[string]CounterType
}

func NewRegistry() *Registry {
	return &Registry{
		names: make([]string, 0),
		types: make(map[string]CounterType),
	}
}

// Register adds t under t.Name(). Registering a name twice replaces the
// type but keeps its original position.
func (r *Registry) Register(t CounterType) {
	name := t.Name()
	if _, ok := r.types[name]; !ok {
		r.names = append(r.names, name)
	}
	r.types[name] = t
}

func (r *Registry) Lookup(name string) (CounterType, bool) {
	t, ok := r.types[name]
	return t, ok
}

func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// CounterOrder reorders or filters the registered names before the
// manager instantiates them.
type CounterOrder func(names []string) []string

// DefaultOrder keeps registration order.
func DefaultOrder(names []string) []string {
	return names
}

// OrderBy moves the given names to the front in the given order. Names
// not mentioned keep their relative order after them; unknown names are
// ignored.
func OrderBy(first ...string) CounterOrder {
	return func(names []string) []string {
		result := make([]string, 0, len(names))
		for _, name := range first {
			if slices.Contains(names, name) && !slices.Contains(result, name) {
				result = append(result, name)
			}
		}
		for _, name := range names {
			if !slices.Contains(result, name) {
				result = append(result, name)
			}
		}
		return result
	}
}

// Only keeps the given names, in the given order.
func Only(keep ...string) CounterOrder {
	return func(names []string) []string {
		result := make([]string, 0, len(keep))
		for _, name := range keep {
			if slices.Contains(names, name) && !slices.Contains(result, name) {
				result = append(result, name)
			}
		}
		return result
	}
}

// Without drops the given names.
func Without(drop ...string) CounterOrder {
	return func(names []string) []string {
		return slices.DeleteFunc(slices.Clone(names), func(name string) bool {
			return slices.Contains(drop, name)
		})
	}
}
