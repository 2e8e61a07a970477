package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "data/courses.json", cfg.Catalog.CoursesPath)
	assert.Equal(t, 12, cfg.Planner.MinCredits)
	assert.Equal(t, 18, cfg.Planner.MaxCredits)
	assert.Equal(t, 6, cfg.Planner.MaxCourses)
	assert.Equal(t, 8, cfg.Planner.Semesters)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 10*time.Second, cfg.GeminiTimeout())
	assert.False(t, cfg.NarrationEnabled())
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
planner:
  min_credits: 9
  max_credits: 15
gemini:
  timeout: "5s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 9, cfg.Planner.MinCredits)
	assert.Equal(t, 15, cfg.Planner.MaxCredits)
	assert.Equal(t, 5*time.Second, cfg.GeminiTimeout())
	// Untouched sections keep their defaults.
	assert.Equal(t, 8, cfg.Planner.Semesters)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.NarrationEnabled())
}

func TestLoadConfig_InvalidCreditBand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planner:\n  min_credits: 20\n  max_credits: 10\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "credit band")
}

func TestLoadConfig_InvalidGeminiTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini:\n  timeout: \"soon\"\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
