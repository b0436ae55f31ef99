// Package format provides the wire formats a configuration file can be stored in.
//
// Each format is exposed through the Handler interface so the rest of the
// module can encode and decode values without knowing which format is active:
//   - JSON: encoding/json, numbers are decoded as json.Number
//   - YAML: github.com/goccy/go-yaml
//   - TOML: github.com/pelletier/go-toml/v2
//
// Formats beyond the built-ins are plugged in either by implementing Handler
// directly or by wrapping two functions with Funcs.
//
// Usage:
//
//	handler, err := format.New(format.YAML)
//	if err != nil {
//	    // Handle error: unsupported kind
//	}
//	data, err := handler.Marshal(map[string]any{"port": 8080})
//
// Error Handling:
//   - Encoding failures wrap ErrMarshal
//   - Decoding failures wrap ErrUnmarshal
//   - Unknown kinds, names and file extensions wrap ErrUnsupportedFormat
package format
