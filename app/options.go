package app

import (
	konfig "github.com/0xalexb/hjarta-konfig"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	Sections  []any
	Konfig    []konfig.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithKonfig enables the configuration manager with the given options.
// The manager is available in the container as *konfig.Manager.
func WithKonfig(opts ...konfig.Option) Option {
	return func(o *Options) {
		o.Konfig = append(o.Konfig, opts...)
		if o.Konfig == nil {
			o.Konfig = []konfig.Option{}
		}
	}
}

// WithSections adds constructors whose results are registered as configuration sections.
// Each constructor must return a type implementing konfig.Section.
func WithSections(constructors ...any) Option {
	return func(opts *Options) {
		opts.Sections = append(opts.Sections, constructors...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
