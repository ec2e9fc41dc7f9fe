// Package spatialmap holds the room annotation data model and the persisted
// multi-room map store.
//
// An Annotation is one labeled point of interest in a room wallpaper, with
// normalized [0,1] coordinates. The Store persists all rooms' annotation
// lists as a single human-readable JSON document keyed by room identifier.
//
// # Storage
//
// The store file is UTF-8 JSON with 2-space indentation, a trailing newline,
// and non-ASCII characters (the descriptions are full of emoji) written
// literally. Writes replace exactly one room's entry and go through a
// temp-file-and-rename swap under a flock sidecar lock, so a concurrent
// invocation mapping another room cannot lose its update.
//
// The package also contains the response normalizer that converts raw
// extraction output into annotation records: fence stripping, strict JSON
// decoding, and field validation are each separate steps with separate
// failure modes so a bad room update never reaches the store.
package spatialmap
