package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	underlying := errors.New("boom")
	err := Wrap(ErrParse, "spatialmap", "decode", "invalid payload", underlying)

	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse marker, got %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected underlying error preserved, got %v", err)
	}
	if !strings.Contains(err.Error(), "spatialmap: decode: invalid payload") {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestWrapWithoutUnderlying(t *testing.T) {
	err := Wrap(ErrValidation, "spatialmap", "validate", "missing field", nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation marker, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsToExtraction(t *testing.T) {
	err := Wrap(nil, "gemini", "request", "", errors.New("timeout"))
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction fallback, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrNotFound, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %v", err)
	}
}
