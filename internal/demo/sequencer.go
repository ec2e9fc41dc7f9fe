package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/sprite-who-codes/claudron-dashboard/internal/config"
	"github.com/sprite-who-codes/claudron-dashboard/internal/logging"
	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

// Step is one beat of the demo script: where the companion stands, how it
// feels, and what it says. Status may be empty for quiet moments.
type Step struct {
	Location string `json:"location"`
	Mood     string `json:"mood"`
	Status   string `json:"status"`
}

// LoadScript reads a demo script from a JSON file.
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "demo", "load-script", "read script", err)
	}
	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, services.Wrap(services.ErrParse, "demo", "load-script", "decode script", err)
	}
	if len(steps) == 0 {
		return nil, services.Wrap(services.ErrValidation, "demo", "load-script", "script has no steps", nil)
	}
	for i, step := range steps {
		if step.Location == "" {
			return nil, services.Wrap(services.ErrValidation, "demo", "load-script",
				fmt.Sprintf("step %d is missing a location", i), nil)
		}
		if step.Mood == "" {
			return nil, services.Wrap(services.ErrValidation, "demo", "load-script",
				fmt.Sprintf("step %d is missing a mood", i), nil)
		}
	}
	return steps, nil
}

// Sequencer drives a scripted demo run.
type Sequencer struct {
	settings config.Demo
	logger   *slog.Logger
}

// NewSequencer creates a sequencer from demo settings.
func NewSequencer(settings config.Demo, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Sequencer{
		settings: settings,
		logger:   logging.NewComponentLogger(logger, "demo"),
	}
}

// Run plays the script. It starts the configured capture command, waits for
// the lead-in, then rewrites the dashboard state files once per step. The
// locations file keeps its existing entries; only the "current" key changes.
func (s *Sequencer) Run(ctx context.Context, steps []Step) error {
	locations, err := s.loadLocations()
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	s.logger.Info("demo run starting",
		logging.String(logging.FieldSessionID, sessionID),
		logging.Int("steps", len(steps)),
		logging.String("output", s.settings.OutputPath))

	capture, err := s.startCapture(ctx)
	if err != nil {
		return err
	}

	if err := s.pause(ctx, s.settings.LeadInSeconds); err != nil {
		return err
	}

	for i, step := range steps {
		locations["current"] = step.Location
		if err := writeJSONFile(s.settings.LocationsPath, locations); err != nil {
			return services.Wrap(services.ErrConfiguration, "demo", "run", "write locations", err)
		}
		mood := map[string]string{"mood": step.Mood, "status": step.Status}
		if err := writeJSONFile(s.settings.MoodPath, mood); err != nil {
			return services.Wrap(services.ErrConfiguration, "demo", "run", "write mood", err)
		}
		s.logger.Info("demo step",
			logging.Int("step", i+1),
			logging.String("location", step.Location),
			logging.String("mood", step.Mood),
			logging.String("status", step.Status))
		if err := s.pause(ctx, s.settings.StepSeconds); err != nil {
			return err
		}
	}

	if capture != nil {
		s.logger.Info("waiting for capture to finish")
		if err := capture.Wait(); err != nil {
			return services.Wrap(services.ErrExtraction, "demo", "run", "capture command failed", err)
		}
	}
	s.logger.Info("demo run complete", logging.String("output", s.settings.OutputPath))
	return nil
}

func (s *Sequencer) loadLocations() (map[string]any, error) {
	data, err := os.ReadFile(s.settings.LocationsPath)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "demo", "run", "read locations template", err)
	}
	var locations map[string]any
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, services.Wrap(services.ErrParse, "demo", "run", "decode locations template", err)
	}
	return locations, nil
}

func (s *Sequencer) startCapture(ctx context.Context) (*exec.Cmd, error) {
	if len(s.settings.CaptureCommand) == 0 {
		s.logger.Warn("no capture command configured, stepping without recording")
		return nil, nil
	}
	args := append(append([]string{}, s.settings.CaptureCommand[1:]...), s.settings.OutputPath)
	cmd := exec.CommandContext(ctx, s.settings.CaptureCommand[0], args...)
	cmd.Stdin = nil
	if err := cmd.Start(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "demo", "run", "start capture command", err)
	}
	return cmd, nil
}

func (s *Sequencer) pause(ctx context.Context, seconds int) error {
	if seconds <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(seconds) * time.Second)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func writeJSONFile(path string, value any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
