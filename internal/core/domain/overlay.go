package domain

import "slices"

// Overlay is the dependency environment loaded from a prefetched environment
// file. It is an explicit value handed to build invocations and is never
// applied to the harness's own process environment.
type Overlay struct {
	source string
	keys   []string
	values map[string]string
}

// NewOverlay creates an empty overlay associated with its source file.
func NewOverlay(source string) *Overlay {
	return &Overlay{
		source: source,
		values: make(map[string]string),
	}
}

// Source returns the path of the file the overlay was loaded from.
func (o *Overlay) Source() string {
	return o.source
}

// Set records a variable. A later assignment to the same key replaces the
// earlier value, matching shell source semantics.
func (o *Overlay) Set(key, value string) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether it is defined.
func (o *Overlay) Get(key string) (string, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of defined variables.
func (o *Overlay) Len() int {
	return len(o.keys)
}

// Keys returns the variable names in file order.
func (o *Overlay) Keys() []string {
	return slices.Clone(o.keys)
}

// Environ returns the overlay as KEY=VALUE pairs in file order.
func (o *Overlay) Environ() []string {
	env := make([]string, 0, len(o.keys))
	for _, k := range o.keys {
		env = append(env, k+"="+o.values[k])
	}
	return env
}
