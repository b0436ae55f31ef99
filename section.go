package konfig

import "github.com/0xalexb/hjarta-konfig/format"

// Section is a named configuration structure managed by a Manager.
//
// The name doubles as the top-level key under which the section is stored in
// the config file and must be unique within a Manager. The section value is
// owned by the application; the Manager only keeps a reference to it, so
// Section is normally implemented by a pointer type.
//
// Use NewSection to get a Section for any plain struct.
type Section interface {
	// Name returns the stable identifier of the section.
	Name() string
	// Validate checks the current state. It must not have side effects.
	Validate() error
	// OnLoad is called after the section has been overwritten from the config file.
	OnLoad() error
	// ToBytes encodes the current state with the given handler.
	ToBytes(handler format.Handler) ([]byte, error)
	// UpdateFromBytes replaces the current state with the decoded data.
	// On error the section must be left unchanged.
	UpdateFromBytes(data []byte, handler format.Handler) error
}

// TreeSection is implemented by sections that can exchange their state as a
// format-independent tree value (map[string]any, []any and scalars) directly.
// The Manager then skips encoding each section to bytes during Load and Save.
type TreeSection interface {
	Section
	Tree() (any, error)
	SetTree(tree any) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// OnLoader is implemented by configuration structures that recompute derived
// state after being loaded.
type OnLoader interface {
	OnLoad() error
}

// Defaulter defines an interface for setting default values in configuration structures.
// It is applied after every successful update of a section, before validation.
type Defaulter interface {
	SetDefaults() (changed bool)
}
