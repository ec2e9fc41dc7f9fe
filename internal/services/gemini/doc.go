// Package gemini wraps the Gemini generateContent REST API for vision
// extraction requests.
//
// The client sends exactly one inline image part plus one text prompt part
// and disables the model's thinking budget so responses come back fast. It
// performs no retries: a failed call aborts the caller's run, matching the
// fail-fast contract of the mapping pipeline. Callers that want retry or
// backoff behaviour should decorate the mapping.Extractor interface instead
// of extending this client.
package gemini
