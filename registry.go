package konfig

import (
	"fmt"
	"reflect"
	"sort"
)

// Registry maps section names to the sections registered under them.
//
// The registry holds references only: the sections stay owned by the
// application and are kept alive by the garbage collector for as long as
// they are registered. A Registry is not safe for concurrent use on its own;
// Manager serializes every access to it.
type Registry struct {
	sections map[string]Section
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sections: make(map[string]Section)}
}

// Register adds section under its name. It fails with ErrRegistration, leaving the
// registry unchanged, when the name is empty or already taken or the section is nil.
func (r *Registry) Register(section Section) error {
	if isNil(section) {
		return fmt.Errorf("%w: section must not be nil", ErrRegistration)
	}

	name := section.Name()
	if name == "" {
		return fmt.Errorf("%w: section name must not be empty", ErrRegistration)
	}

	if _, exists := r.sections[name]; exists {
		return fmt.Errorf("%w: failed to register %q, name already registered", ErrRegistration, name)
	}

	r.sections[name] = section

	return nil
}

// Get returns the section registered under name.
//
//nolint:ireturn // sections are heterogeneous
func (r *Registry) Get(name string) (Section, bool) {
	section, ok := r.sections[name]

	return section, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sections))
	for name := range r.sections {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered sections.
func (r *Registry) Len() int {
	return len(r.sections)
}

func isNil(section Section) bool {
	if section == nil {
		return true
	}

	value := reflect.ValueOf(section)

	switch value.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}
