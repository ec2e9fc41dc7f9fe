package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeDemo(); err != nil {
		return err
	}
	c.normalizeGemini()
	c.normalizeGrid()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.SpatialMapPath) == "" {
		c.Paths.SpatialMapPath = defaultSpatialMapPath
	}
	if c.Paths.SpatialMapPath, err = expandPath(c.Paths.SpatialMapPath); err != nil {
		return fmt.Errorf("paths.spatial_map_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeGemini() {
	c.Gemini.APIKey = strings.TrimSpace(c.Gemini.APIKey)
	if c.Gemini.APIKey == "" {
		if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.Gemini.APIKey = strings.TrimSpace(value)
		}
	}
	c.Gemini.BaseURL = strings.TrimSpace(c.Gemini.BaseURL)
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = defaultGeminiBaseURL
	}
	c.Gemini.Model = strings.TrimSpace(c.Gemini.Model)
	if c.Gemini.Model == "" {
		c.Gemini.Model = defaultGeminiModel
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = defaultGeminiTimeout
	}
}

func (c *Config) normalizeGrid() {
	if c.Grid.Spacing <= 0 {
		c.Grid.Spacing = defaultGridSpacing
	}
	if c.Grid.MajorEvery <= 0 {
		c.Grid.MajorEvery = defaultGridMajorEvery
	}
}

func (c *Config) normalizeDemo() error {
	var err error
	if strings.TrimSpace(c.Demo.LocationsPath) != "" {
		if c.Demo.LocationsPath, err = expandPath(c.Demo.LocationsPath); err != nil {
			return fmt.Errorf("demo.locations_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Demo.MoodPath) != "" {
		if c.Demo.MoodPath, err = expandPath(c.Demo.MoodPath); err != nil {
			return fmt.Errorf("demo.mood_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Demo.OutputPath) != "" {
		if c.Demo.OutputPath, err = expandPath(c.Demo.OutputPath); err != nil {
			return fmt.Errorf("demo.output_path: %w", err)
		}
	}
	if c.Demo.LeadInSeconds < 0 {
		c.Demo.LeadInSeconds = defaultDemoLeadIn
	}
	if c.Demo.StepSeconds <= 0 {
		c.Demo.StepSeconds = defaultDemoStep
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
