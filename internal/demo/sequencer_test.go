package demo

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sprite-who-codes/claudron-dashboard/internal/config"
	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

func writeScript(t *testing.T, dir string, steps []Step) string {
	t.Helper()
	data, err := json.Marshal(steps)
	if err != nil {
		t.Fatalf("marshal script: %v", err)
	}
	path := filepath.Join(dir, "script.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func testSettings(t *testing.T, dir string) config.Demo {
	t.Helper()
	locations := filepath.Join(dir, "locations.json")
	template := `{"current": "fireplace", "fireplace": {"x": 0.2, "y": 0.7}, "desk": {"x": 0.8, "y": 0.4}}`
	if err := os.WriteFile(locations, []byte(template), 0o644); err != nil {
		t.Fatalf("write locations template: %v", err)
	}
	return config.Demo{
		CaptureCommand: []string{"true"},
		LocationsPath:  locations,
		MoodPath:       filepath.Join(dir, "mood.json"),
		OutputPath:     filepath.Join(dir, "demo.mp4"),
		LeadInSeconds:  0,
		StepSeconds:    0,
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, []Step{
		{Location: "fireplace", Mood: "happy", Status: "hey! 👋"},
		{Location: "stool", Mood: "sleeping"},
	})

	steps, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript returned error: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Status != "hey! 👋" {
		t.Fatalf("status not preserved: %q", steps[0].Status)
	}
	if steps[1].Status != "" {
		t.Fatalf("expected empty status on quiet step, got %q", steps[1].Status)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadScript(filepath.Join(dir, "absent.json")); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("missing file: expected ErrNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write bad script: %v", err)
	}
	if _, err := LoadScript(bad); !errors.Is(err, services.ErrParse) {
		t.Errorf("malformed file: expected ErrParse, got %v", err)
	}

	empty := writeScript(t, dir, []Step{})
	if _, err := LoadScript(empty); !errors.Is(err, services.ErrValidation) {
		t.Errorf("empty script: expected ErrValidation, got %v", err)
	}

	missingMood := writeScript(t, dir, []Step{{Location: "desk"}})
	if _, err := LoadScript(missingMood); !errors.Is(err, services.ErrValidation) {
		t.Errorf("missing mood: expected ErrValidation, got %v", err)
	}
}

func TestRunRewritesStateFiles(t *testing.T) {
	dir := t.TempDir()
	settings := testSettings(t, dir)
	seq := NewSequencer(settings, nil)

	steps := []Step{
		{Location: "desk", Mood: "thinking", Status: "📝 drafting"},
		{Location: "fireplace", Mood: "excited", Status: "✨ done!"},
	}
	if err := seq.Run(context.Background(), steps); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	locData, err := os.ReadFile(settings.LocationsPath)
	if err != nil {
		t.Fatalf("read locations: %v", err)
	}
	var locations map[string]any
	if err := json.Unmarshal(locData, &locations); err != nil {
		t.Fatalf("decode locations: %v", err)
	}
	if locations["current"] != "fireplace" {
		t.Fatalf("current location = %v, want final step location", locations["current"])
	}
	if _, ok := locations["desk"]; !ok {
		t.Fatal("template entries must survive the rewrite")
	}

	moodData, err := os.ReadFile(settings.MoodPath)
	if err != nil {
		t.Fatalf("read mood: %v", err)
	}
	var mood map[string]string
	if err := json.Unmarshal(moodData, &mood); err != nil {
		t.Fatalf("decode mood: %v", err)
	}
	if mood["mood"] != "excited" || mood["status"] != "✨ done!" {
		t.Fatalf("unexpected final mood file: %v", mood)
	}
}

func TestRunWithoutCaptureCommand(t *testing.T) {
	dir := t.TempDir()
	settings := testSettings(t, dir)
	settings.CaptureCommand = nil
	seq := NewSequencer(settings, nil)

	if err := seq.Run(context.Background(), []Step{{Location: "desk", Mood: "happy"}}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRunMissingLocationsTemplate(t *testing.T) {
	dir := t.TempDir()
	settings := testSettings(t, dir)
	settings.LocationsPath = filepath.Join(dir, "absent.json")
	seq := NewSequencer(settings, nil)

	err := seq.Run(context.Background(), []Step{{Location: "desk", Mood: "happy"}})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunCaptureFailure(t *testing.T) {
	dir := t.TempDir()
	settings := testSettings(t, dir)
	settings.CaptureCommand = []string{"false"}
	seq := NewSequencer(settings, nil)

	err := seq.Run(context.Background(), []Step{{Location: "desk", Mood: "happy"}})
	if err == nil {
		t.Fatal("expected error when capture command fails")
	}
}
