package config

const (
	defaultLogDir         = "~/.local/share/claudron/logs"
	defaultSpatialMapPath = "~/.local/share/claudron/spatial-map.json"
	defaultGeminiBaseURL  = "https://generativelanguage.googleapis.com"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultGeminiTimeout  = 60
	defaultGridSpacing    = 50
	defaultGridMajorEvery = 100
	defaultDemoLeadIn     = 1
	defaultDemoStep       = 4
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:         defaultLogDir,
			SpatialMapPath: defaultSpatialMapPath,
		},
		Gemini: Gemini{
			BaseURL:        defaultGeminiBaseURL,
			Model:          defaultGeminiModel,
			ThinkingBudget: 0,
			TimeoutSeconds: defaultGeminiTimeout,
		},
		Grid: Grid{
			Spacing:    defaultGridSpacing,
			MajorEvery: defaultGridMajorEvery,
		},
		Demo: Demo{
			LocationsPath: "locations.json",
			MoodPath:      "mood.json",
			OutputPath:    "demo.mp4",
			LeadInSeconds: defaultDemoLeadIn,
			StepSeconds:   defaultDemoStep,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
