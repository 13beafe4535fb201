// Package category holds the set of categories a product may be filed under.
package category

import "strings"

// Defaults are the built-in categories, in display order.
var Defaults = []string{"Food", "Medication", "Cleaning", "Other"}

// Fallback is used for products submitted without a category.
const Fallback = "Other"

// Registry is an insertion-ordered set of category names.
// Built-in names cannot be removed. Names are matched case-sensitively.
// A Registry is not safe for concurrent use; callers serialise access.
type Registry struct {
	names   []string
	index   map[string]struct{}
	builtin map[string]struct{}
}

// NewRegistry creates a registry seeded with Defaults followed by custom.
// Blank and duplicate custom names are dropped.
func NewRegistry(custom ...string) *Registry {
	r := &Registry{
		names:   make([]string, 0, len(Defaults)+len(custom)),
		index:   make(map[string]struct{}, len(Defaults)+len(custom)),
		builtin: make(map[string]struct{}, len(Defaults)),
	}
	for _, name := range Defaults {
		r.names = append(r.names, name)
		r.index[name] = struct{}{}
		r.builtin[name] = struct{}{}
	}
	for _, name := range custom {
		r.Add(name)
	}
	return r
}

// Add appends name after trimming. It returns false when the trimmed
// name is empty or already present.
func (r *Registry) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || r.Contains(name) {
		return false
	}
	r.names = append(r.names, name)
	r.index[name] = struct{}{}
	return true
}

// Remove deletes a custom category. Built-ins and unknown names return false.
func (r *Registry) Remove(name string) bool {
	name = strings.TrimSpace(name)
	if r.IsBuiltin(name) || !r.Contains(name) {
		return false
	}
	delete(r.index, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	return true
}

// Contains checks if a category exists in the registry.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// IsBuiltin reports whether name is one of Defaults.
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.builtin[name]
	return ok
}

// All returns every category, defaults first.
func (r *Registry) All() []string {
	return append([]string(nil), r.names...)
}

// Custom returns the user-added categories in addition order.
func (r *Registry) Custom() []string {
	out := make([]string, 0, len(r.names)-len(r.builtin))
	for _, n := range r.names {
		if !r.IsBuiltin(n) {
			out = append(out, n)
		}
	}
	return out
}

// Size returns the number of categories in the registry.
func (r *Registry) Size() int {
	return len(r.names)
}
