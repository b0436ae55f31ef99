package format

import (
	"errors"
	"fmt"
)

var (
	errNoMarshalFunc   = errors.New("no marshal function")
	errNoUnmarshalFunc = errors.New("no unmarshal function")
)

// Funcs adapts a pair of encode/decode functions to the Handler interface,
// which is the quickest way to plug in a format that is not built in.
//
// Errors returned by the functions are wrapped with ErrMarshal or ErrUnmarshal
// so callers can classify them the same way as built-in failures.
type Funcs struct {
	FormatName    string
	MarshalFunc   func(v any) ([]byte, error)
	UnmarshalFunc func(data []byte, v any) error
}

// Name returns FormatName, or "custom" when it is empty.
func (f Funcs) Name() string {
	if f.FormatName == "" {
		return "custom"
	}

	return f.FormatName
}

// Marshal calls MarshalFunc.
func (f Funcs) Marshal(v any) ([]byte, error) {
	if f.MarshalFunc == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMarshal, f.Name(), errNoMarshalFunc)
	}

	data, err := f.MarshalFunc(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMarshal, f.Name(), err)
	}

	return data, nil
}

// Unmarshal calls UnmarshalFunc.
func (f Funcs) Unmarshal(data []byte, v any) error {
	if f.UnmarshalFunc == nil {
		return fmt.Errorf("%w: %s: %w", ErrUnmarshal, f.Name(), errNoUnmarshalFunc)
	}

	err := f.UnmarshalFunc(data, v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnmarshal, f.Name(), err)
	}

	return nil
}
