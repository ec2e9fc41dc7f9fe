// Package logging builds the slog loggers used across warren.
//
// It provides a console handler for interactive use, a JSON handler for
// machine consumption, helpers for attaching standardized attributes, and
// component loggers so every subsystem tags its output consistently. Use
// NewNop in tests that do not assert on log output.
package logging
