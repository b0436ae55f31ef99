// Package konfig keeps independently typed configuration sections in a single file.
//
// Applications register sections once, near start-up, and then load and save
// all of them together in one of the supported formats (JSON, YAML, TOML, or a
// custom format.Handler). The package uses an interface-based design:
//   - Section: a named structure that can encode and decode itself
//   - Validator / OnLoader: callbacks run after a section is loaded
//   - Defaulter: fills zero values after a section is loaded
//   - Storage: reads and writes the raw file bytes (see storage/file)
//
// # Sections
//
// Any struct becomes a section with NewSection:
//
//	type Server struct {
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//
//	server := &Server{Host: "localhost", Port: 8080}
//	manager, err := konfig.New(konfig.WithPath("config.json"), konfig.WithCallbacks(true))
//	err = manager.RegisterSection(konfig.NewSection("server", server))
//	err = manager.Load()  // server now holds the persisted values
//	err = manager.Save()  // {"server": {"host": "localhost", "port": 8080}}
//
// The file is a mapping from section name to section payload. Unknown names
// are ignored on load, and sections missing from the file keep their values.
//
// # Concurrency
//
// A Manager serializes all of its operations with one mutex. Sections are
// plain Go values owned by the application; to change them while other
// goroutines use the Manager, register them with Bind and go through the
// returned Handle.
//
// # Fx integration
//
// NewModule provides a *Manager to an Fx application, registers every section
// supplied with AsSection, loads on start and saves on stop when auto-save is
// enabled. The app package wraps this into a ready-made application.
package konfig
