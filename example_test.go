package konfig_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	konfig "github.com/0xalexb/hjarta-konfig"
	"github.com/0xalexb/hjarta-konfig/logging"
)

// Server is an application section. It implements konfig.Defaulter,
// konfig.Validator and konfig.OnLoader.
type Server struct {
	Host    string `json:"host"    toml:"host"    yaml:"host"`
	Port    int    `json:"port"    toml:"port"    yaml:"port"`
	Timeout int    `json:"timeout" toml:"timeout" yaml:"timeout"`

	address string
}

// SetDefaults fills zero values.
func (s *Server) SetDefaults() bool {
	if s.Timeout != 0 {
		return false
	}

	s.Timeout = 30

	return true
}

// Validate checks the port range.
func (s *Server) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// OnLoad recomputes the listen address.
func (s *Server) OnLoad() error {
	s.address = fmt.Sprintf("%s:%d", s.Host, s.Port)

	return nil
}

// Auth is a plain section without callbacks.
type Auth struct {
	Token string `json:"token" toml:"token" yaml:"token"`
}

func Example_load() {
	server := &Server{Host: "localhost", Port: 8080}

	manager, err := konfig.New(
		konfig.WithPath("testdata/config.yaml"),
		konfig.WithCallbacks(true),
		konfig.WithLogger(logging.Discard()),
	)
	if err != nil {
		fmt.Printf("Error creating manager: %v\n", err)

		return
	}

	err = manager.RegisterSection(konfig.NewSection("server", server))
	if err != nil {
		fmt.Printf("Error registering section: %v\n", err)

		return
	}

	err = manager.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)

		return
	}

	fmt.Printf("Server address: %s\n", server.address)
	fmt.Printf("Timeout: %d\n", server.Timeout)
	// Output:
	// Server address: api.example.com:9000
	// Timeout: 30
}

func Example_save() {
	dir, err := os.MkdirTemp("", "konfig-example")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)

		return
	}

	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "config.json")

	manager, err := konfig.New(konfig.WithPath(path), konfig.WithLogger(logging.Discard()))
	if err != nil {
		fmt.Printf("Error creating manager: %v\n", err)

		return
	}

	_ = manager.RegisterSection(konfig.NewSection("server", &Server{Host: "localhost", Port: 8080, Timeout: 30}))
	_ = manager.RegisterSection(konfig.NewSection("auth", &Auth{Token: "secret"}))

	err = manager.Save()
	if err != nil {
		fmt.Printf("Error saving config: %v\n", err)

		return
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is built from a temp dir
	if err != nil {
		fmt.Printf("Error reading config: %v\n", err)

		return
	}

	fmt.Println(string(data))
	// Output:
	// {
	//   "auth": {
	//     "token": "secret"
	//   },
	//   "server": {
	//     "host": "localhost",
	//     "port": 8080,
	//     "timeout": 30
	//   }
	// }
}
