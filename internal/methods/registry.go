// Package methods holds the daemon's RPC surface as data and resolves
// method names to their argument coercers.
package methods

import (
	"fmt"
	"strings"

	"elementsrpc/internal/coerce"
)

// CoercionError reports an argument that could not be converted to its
// declared type. It is returned before any request is sent.
type CoercionError struct {
	Method   string
	Position int
	Tag      coerce.Tag
	Err      error
}

// Error implements the error interface
func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: param %d (%s): %v", e.Method, e.Position, e.Tag, e.Err)
}

// Unwrap returns the underlying conversion error
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// Method is a resolved table entry
type Method struct {
	Name string
	Spec string
	Args []coerce.Arg
}

// Coerce applies the declared coercers positionally and returns a new slice.
// Positions past the signature pass through unchanged.
func (m *Method) Coerce(args []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(args))
	for i, a := range args {
		if i >= len(m.Args) {
			out[i] = a
			continue
		}
		v, err := m.Args[i].Func(a)
		if err != nil {
			return nil, &CoercionError{
				Method:   m.Name,
				Position: i,
				Tag:      m.Args[i].Tag,
				Err:      err,
			}
		}
		out[i] = v
	}
	return out, nil
}

// Registry indexes methods under their table key and its lowercase alias
type Registry struct {
	byName  map[string]*Method
	ordered []*Method
}

// NewRegistry builds a registry from table entries
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		byName:  make(map[string]*Method, len(entries)*2),
		ordered: make([]*Method, 0, len(entries)),
	}

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry[%d]: name is required", i)
		}
		lower := strings.ToLower(e.Name)
		if prev, ok := r.byName[lower]; ok {
			return nil, fmt.Errorf("entry[%d]: '%s' collides with '%s'", i, e.Name, prev.Name)
		}

		m := &Method{
			Name: e.Name,
			Spec: e.Args,
			Args: coerce.Parse(e.Args),
		}
		r.byName[e.Name] = m
		r.byName[lower] = m
		r.ordered = append(r.ordered, m)
	}

	return r, nil
}

// Lookup resolves a method by exact table key or, failing that, case-insensitively
func (r *Registry) Lookup(name string) (*Method, bool) {
	if m, ok := r.byName[name]; ok {
		return m, true
	}
	m, ok := r.byName[strings.ToLower(name)]
	return m, ok
}

// MustLookup is Lookup for names known to be in the table
func (r *Registry) MustLookup(name string) *Method {
	m, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("methods: unknown method %q", name))
	}
	return m
}

// Methods returns all methods in table order
func (r *Registry) Methods() []*Method {
	out := make([]*Method, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Names returns every registered key, aliases included
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for k := range r.byName {
		names = append(names, k)
	}
	return names
}

// Default is the registry for the built-in table
var Default = mustRegistry(table)

func mustRegistry(entries []Entry) *Registry {
	r, err := NewRegistry(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves a method in the default registry
func Lookup(name string) (*Method, bool) {
	return Default.Lookup(name)
}
