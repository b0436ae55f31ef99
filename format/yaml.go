package format

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// YAMLHandler implements Handler for YAML using goccy/go-yaml.
// Struct fields without a yaml tag fall back to their json tag.
type YAMLHandler struct{}

// NewYAML creates a YAML handler.
func NewYAML() *YAMLHandler {
	return &YAMLHandler{}
}

// Name returns "yaml".
func (h *YAMLHandler) Name() string {
	return YAML.String()
}

// Marshal encodes v as YAML.
func (h *YAMLHandler) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrMarshal, err)
	}

	return data, nil
}

// Unmarshal decodes YAML data into v.
func (h *YAMLHandler) Unmarshal(data []byte, v any) error {
	err := yaml.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrUnmarshal, err)
	}

	return nil
}
