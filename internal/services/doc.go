// Package services defines the shared failure taxonomy for the mapping
// pipeline and its external integrations.
//
// Errors are tagged with sentinel markers (configuration, extraction,
// parse, validation, not-found) via Wrap so commands can classify a
// failure without inspecting message text. Every marker is terminal for
// the current run: the pipeline is fail-fast and whole-room-atomic, so
// callers report the error and exit rather than retrying.
package services
