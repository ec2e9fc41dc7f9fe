package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	storePath  string
}

func setupCLITestEnv(t *testing.T, geminiBaseURL string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("GEMINI_API_KEY", "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		storePath:  filepath.Join(base, "spatial-map.json"),
	}
	writeTestConfig(t, env, geminiBaseURL, "test-key")
	return env
}

func writeTestConfig(t *testing.T, env *cliTestEnv, geminiBaseURL, apiKey string) {
	t.Helper()
	content := fmt.Sprintf(`
[paths]
log_dir = %q
spatial_map_path = %q

[gemini]
api_key = %q
base_url = %q
timeout_seconds = 5

[logging]
format = "json"
level = "error"
`,
		filepath.Join(env.baseDir, "logs"),
		env.storePath,
		apiKey,
		geminiBaseURL,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}
