package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. The Gemini API key is not
// required here: only map-room needs it, and it checks the credential itself
// before any I/O so the other commands work without one.
func (c *Config) Validate() error {
	if err := c.validateGemini(); err != nil {
		return err
	}
	if err := c.validateGrid(); err != nil {
		return err
	}
	if err := c.validateDemo(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGemini() error {
	if c.Gemini.ThinkingBudget < 0 {
		return errors.New("gemini.thinking_budget must be zero or positive")
	}
	return nil
}

func (c *Config) validateGrid() error {
	if c.Grid.MajorEvery%c.Grid.Spacing != 0 {
		return fmt.Errorf("grid.major_every (%d) must be a multiple of grid.spacing (%d)",
			c.Grid.MajorEvery, c.Grid.Spacing)
	}
	return nil
}

func (c *Config) validateDemo() error {
	if len(c.Demo.CaptureCommand) == 1 && c.Demo.CaptureCommand[0] == "" {
		return errors.New("demo.capture_command must not contain an empty executable")
	}
	return nil
}

// RequireGeminiKey reports a configuration error when the extraction
// credential is absent. Called before any file or network I/O.
func (c *Config) RequireGeminiKey() error {
	if c.Gemini.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/claudron/config.toml"
		}
		return fmt.Errorf("gemini.api_key is required. Set GEMINI_API_KEY or edit %s (create with 'claudron config init')", defaultPath)
	}
	return nil
}
