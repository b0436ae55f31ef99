package format

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// TOMLHandler implements Handler for TOML using pelletier/go-toml/v2.
// TOML documents are always tables, so only mappings and structs can be marshaled.
type TOMLHandler struct{}

// NewTOML creates a TOML handler.
func NewTOML() *TOMLHandler {
	return &TOMLHandler{}
}

// Name returns "toml".
func (h *TOMLHandler) Name() string {
	return TOML.String()
}

// Marshal encodes v as a TOML document.
func (h *TOMLHandler) Marshal(v any) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrMarshal, err)
	}

	return data, nil
}

// Unmarshal decodes TOML data into v. Data that is not valid UTF-8 is rejected
// before parsing.
func (h *TOMLHandler) Unmarshal(data []byte, v any) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: toml: %w", ErrUnmarshal, errInvalidUTF8)
	}

	err := toml.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("%w: toml: %w", ErrUnmarshal, err)
	}

	return nil
}
