package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONHandler implements Handler for JSON.
type JSONHandler struct{}

// NewJSON creates a JSON handler.
func NewJSON() *JSONHandler {
	return &JSONHandler{}
}

// Name returns "json".
func (h *JSONHandler) Name() string {
	return JSON.String()
}

// Marshal encodes v as indented JSON.
func (h *JSONHandler) Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMarshal, err)
	}

	return data, nil
}

// Unmarshal decodes a single JSON document into v.
// Numbers decoded into interface values become json.Number so that
// integers are not widened to float64.
func (h *JSONHandler) Unmarshal(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	err := decoder.Decode(v)
	if err != nil {
		return fmt.Errorf("%w: json: %w", ErrUnmarshal, err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: json: unexpected data after top-level value", ErrUnmarshal)
	}

	return nil
}
