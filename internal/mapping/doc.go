// Package mapping runs the room mapping pipeline: build the extraction
// request for a room wallpaper, call the vision extraction capability,
// normalize and validate the response, and hand the accepted annotation
// list to the spatial map store.
//
// The pipeline is strictly sequential and fail-fast. There is no retry at
// any layer and no partial acceptance: either every annotation for the room
// is accepted and merged, or the store is left exactly as it was. The
// extraction capability is consumed through the Extractor interface so tests
// use a deterministic stub and callers can layer retry behaviour without
// touching the pipeline.
package mapping
