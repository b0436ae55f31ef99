package konfig_test

import (
	"errors"
	"sync"

	"github.com/0xalexb/hjarta-konfig/format"
)

type serverConfig struct {
	Host string `json:"host" toml:"host" yaml:"host"`
	Port int    `json:"port" toml:"port" yaml:"port"`
}

type authConfig struct {
	Token string `json:"token" toml:"token" yaml:"token"`
}

type limitsConfig struct {
	MaxConns int     `json:"max_conns" toml:"max_conns" yaml:"max_conns"`
	Ratio    float64 `json:"ratio"     toml:"ratio"     yaml:"ratio"`
}

type appConfig struct {
	Name    string       `json:"name"    toml:"name"    yaml:"name"`
	Debug   bool         `json:"debug"   toml:"debug"   yaml:"debug"`
	Workers int          `json:"workers" toml:"workers" yaml:"workers"`
	Tags    []string     `json:"tags"    toml:"tags"    yaml:"tags"`
	Limits  limitsConfig `json:"limits"  toml:"limits"  yaml:"limits"`
}

// memStorage keeps the config file in memory.
type memStorage struct {
	mu       sync.Mutex
	data     []byte
	readErr  error
	writeErr error
	writes   int
}

func (s *memStorage) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readErr != nil {
		return nil, s.readErr
	}

	return append([]byte(nil), s.data...), nil
}

func (s *memStorage) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}

	s.data = append([]byte(nil), data...)
	s.writes++

	return nil
}

func (s *memStorage) bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]byte(nil), s.data...)
}

// callRecorder collects section callbacks across sections in call order.
type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call)
}

func (r *callRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.calls...)
}

// trackedSection is a hand-written Section that records every callback.
type trackedSection struct {
	name        string
	data        authConfig
	validateErr error
	onLoadErr   error
	updateErr   error
	recorder    *callRecorder
}

func newTrackedSection(name, token string, recorder *callRecorder) *trackedSection {
	return &trackedSection{name: name, data: authConfig{Token: token}, recorder: recorder}
}

func (s *trackedSection) Name() string {
	return s.name
}

func (s *trackedSection) Validate() error {
	s.recorder.record(s.name + ":validate")

	return s.validateErr
}

func (s *trackedSection) OnLoad() error {
	s.recorder.record(s.name + ":on_load")

	return s.onLoadErr
}

func (s *trackedSection) ToBytes(handler format.Handler) ([]byte, error) {
	return handler.Marshal(s.data)
}

func (s *trackedSection) UpdateFromBytes(data []byte, handler format.Handler) error {
	s.recorder.record(s.name + ":update")

	if s.updateErr != nil {
		return s.updateErr
	}

	var next authConfig

	err := handler.Unmarshal(data, &next)
	if err != nil {
		return err
	}

	s.data = next

	return nil
}

var errBoom = errors.New("boom")
