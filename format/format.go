package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMarshal is returned when a value cannot be encoded.
var ErrMarshal = errors.New("marshal error")

// ErrUnmarshal is returned when data cannot be decoded.
var ErrUnmarshal = errors.New("unmarshal error")

// ErrUnsupportedFormat is returned for unknown kinds, format names and file extensions.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Handler encodes values to and decodes values from a single wire format.
//
// Unmarshal decodes into v, which must be a non-nil pointer. Decoding into
// a pointer to an empty interface produces the format-independent tree value:
// map[string]any for mappings, []any for sequences and scalars otherwise.
type Handler interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Kind selects one of the built-in formats.
type Kind int

// Built-in formats. The zero Kind is unspecified.
const (
	JSON Kind = iota + 1
	YAML
	TOML
)

func (k Kind) String() string {
	switch k {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// New creates the handler for the given kind.
//
//nolint:ireturn // callers work with the Handler abstraction
func New(kind Kind) (Handler, error) {
	switch kind {
	case JSON:
		return NewJSON(), nil
	case YAML:
		return NewYAML(), nil
	case TOML:
		return NewTOML(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
}

// ParseKind converts a format name such as "json", "yaml", "yml" or "toml" into a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// KindFromPath infers the Kind from a file extension.
func KindFromPath(path string) (Kind, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: no file extension in %q", ErrUnsupportedFormat, path)
	}

	return ParseKind(strings.TrimPrefix(ext, "."))
}
