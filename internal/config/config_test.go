package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	loader, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	// Missing file: defaults apply.
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.prepdeck.app", cfg.Server.BaseURL)
	assert.Equal(t, 10, cfg.Server.TimeoutSeconds)
	assert.Equal(t, 2, cfg.Study.PollIntervalSeconds)
	assert.Equal(t, 10, cfg.Study.QuestionCount)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: http://localhost:9000
  timeout_seconds: 5
study:
  poll_interval_seconds: 3
  question_count: 5
log:
  level: debug
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Server.BaseURL)
	assert.Equal(t, 5, cfg.Server.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Study.PollIntervalSeconds)
	assert.Equal(t, 5, cfg.Study.QuestionCount)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name: "question count above range",
			contents: `
study:
  question_count: 50
`,
		},
		{
			name: "bad base url",
			contents: `
server:
  base_url: "not a url"
`,
		},
		{
			name: "unknown log level",
			contents: `
log:
  level: loud
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := NewLoader(writeConfig(t, tt.contents))
			require.NoError(t, err)

			_, err = loader.Load()
			assert.Error(t, err)
		})
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("PREPDECK_BASE_URL", "http://staging.internal:8080")

	loader, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://staging.internal:8080", cfg.Server.BaseURL)
}
