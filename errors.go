package konfig

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-konfig/format"
)

// Error categories returned by this package. Every error carries one of them
// in its chain, so callers classify failures with errors.Is.
var (
	// ErrValidation is returned when a section's Validate callback fails.
	ErrValidation = errors.New("validation error")
	// ErrOnLoad is returned when a section's OnLoad callback fails.
	ErrOnLoad = errors.New("on-load error")
	// ErrMarshal is returned when a value cannot be encoded in the active format.
	ErrMarshal = format.ErrMarshal
	// ErrUnmarshal is returned when data cannot be decoded in the active format.
	ErrUnmarshal = format.ErrUnmarshal
	// ErrLoad is returned when the config file cannot be read or has an invalid shape.
	ErrLoad = errors.New("load error")
	// ErrSave is returned when the config file cannot be written.
	ErrSave = errors.New("save error")
	// ErrRegistration is returned when a section cannot be registered.
	ErrRegistration = errors.New("registration error")
	// ErrConfig is returned by New when the options are incomplete or inconsistent.
	ErrConfig = errors.New("invalid manager configuration")
)

// Section operations reported in SectionError.
const (
	OpEncode   = "encode"
	OpDecode   = "decode"
	OpUpdate   = "update"
	OpValidate = "validate"
	OpOnLoad   = "on-load"
)

// SectionError reports a failure that happened while processing a single section.
type SectionError struct {
	// Section is the name of the section that failed.
	Section string
	// Op is the step that failed, one of the Op constants.
	Op string
	// Err is the underlying error, wrapping one of the package error categories.
	Err error
}

// Error implements the error interface.
func (e *SectionError) Error() string {
	return fmt.Sprintf("section %q: %s: %v", e.Section, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *SectionError) Unwrap() error {
	return e.Err
}

func newSectionError(name, op string, category, err error) *SectionError {
	return &SectionError{Section: name, Op: op, Err: classify(category, err)}
}

// classify makes sure err carries category in its chain.
func classify(category, err error) error {
	if errors.Is(err, category) {
		return err
	}

	return fmt.Errorf("%w: %w", category, err)
}
