package konfig

import (
	"log/slog"

	"github.com/0xalexb/hjarta-konfig/format"
)

// Storage reads and writes the raw bytes of the config file.
// See storage/file for the file-system implementation used by default.
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Options holds configuration settings for a Manager.
type Options struct {
	// Path is the config file location. It is required unless Storage is set.
	Path string
	// Format selects a built-in format. When zero it is inferred from Path.
	Format format.Kind
	// Handler is a custom format handler. It takes precedence over Format.
	Handler format.Handler
	// AutoSave makes Close, SaveOnPanic and the Fx stop hook save the sections.
	AutoSave bool
	// UseCallbacks makes Load call Validate and OnLoad on every updated section.
	UseCallbacks bool
	// Storage overrides the file-system storage derived from Path.
	Storage Storage
	// Logger receives diagnostic messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithPath sets the config file path.
func WithPath(path string) Option {
	return func(opts *Options) {
		opts.Path = path
	}
}

// WithFormat selects a built-in format.
func WithFormat(kind format.Kind) Option {
	return func(opts *Options) {
		opts.Format = kind
	}
}

// WithHandler plugs in a custom format handler.
func WithHandler(handler format.Handler) Option {
	return func(opts *Options) {
		opts.Handler = handler
	}
}

// WithAutoSave enables or disables saving on Close, on panic and on Fx stop.
func WithAutoSave(enabled bool) Option {
	return func(opts *Options) {
		opts.AutoSave = enabled
	}
}

// WithCallbacks enables or disables the Validate and OnLoad callbacks during Load.
func WithCallbacks(enabled bool) Option {
	return func(opts *Options) {
		opts.UseCallbacks = enabled
	}
}

// WithStorage replaces the file-system storage.
func WithStorage(storage Storage) Option {
	return func(opts *Options) {
		opts.Storage = storage
	}
}

// WithLogger sets the logger used by the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
