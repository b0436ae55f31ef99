package konfig

import "github.com/0xalexb/hjarta-konfig/format"

// StructSection turns any struct into a Section.
//
// Validate, OnLoad and SetDefaults are forwarded to the target when *T
// implements Validator, OnLoader or Defaulter, and succeed trivially
// otherwise. Field names in the config file follow the struct tags of the
// active format (json, yaml or toml).
type StructSection[T any] struct {
	name   string
	target *T
}

// NewSection creates a Section named name that is backed by target.
// The Manager reads and writes target in place; a nil target is replaced by a new zero value.
func NewSection[T any](name string, target *T) *StructSection[T] {
	if target == nil {
		target = new(T)
	}

	return &StructSection[T]{name: name, target: target}
}

// Name returns the section name.
func (s *StructSection[T]) Name() string {
	return s.name
}

// Target returns the backing struct.
func (s *StructSection[T]) Target() *T {
	return s.target
}

// Validate forwards to the target's Validate method, if any.
func (s *StructSection[T]) Validate() error {
	validator, ok := any(s.target).(Validator)
	if !ok {
		return nil
	}

	return validator.Validate()
}

// OnLoad forwards to the target's OnLoad method, if any.
func (s *StructSection[T]) OnLoad() error {
	loader, ok := any(s.target).(OnLoader)
	if !ok {
		return nil
	}

	return loader.OnLoad()
}

// SetDefaults forwards to the target's SetDefaults method, if any.
func (s *StructSection[T]) SetDefaults() bool {
	defaulter, ok := any(s.target).(Defaulter)
	if !ok {
		return false
	}

	return defaulter.SetDefaults()
}

// ToBytes encodes the target.
func (s *StructSection[T]) ToBytes(handler format.Handler) ([]byte, error) {
	return handler.Marshal(s.target) //nolint:wrapcheck // handler errors are already classified
}

// UpdateFromBytes decodes data into a fresh value and swaps it in only when
// decoding succeeds. Fields absent from data end up with their zero value,
// to be filled by SetDefaults.
func (s *StructSection[T]) UpdateFromBytes(data []byte, handler format.Handler) error {
	var next T

	err := handler.Unmarshal(data, &next)
	if err != nil {
		return err //nolint:wrapcheck // handler errors are already classified
	}

	*s.target = next

	return nil
}
