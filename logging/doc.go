// Package logging builds the slog loggers used by the configuration manager
// and the Fx application in package app.
//
// NewLogger writes JSON by default and switches to slog's text handler when
// LoggerConfig.Format is "text". Discard returns a logger that drops every
// record, which keeps tests and examples quiet.
package logging
