package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_ENV", "LISTEN_ADDR", "DATABASE_URL", "REDIS_URL", "MAX_CONNS", "LOG_VERBOSE",
	"TAX_TABLE_PATH", "NARRATIVE_WORKERS", "NARRATIVE_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL",
	"LLM_ENDPOINT", "LLM_API_KEY", "GITHUB_TOKEN", "LLM_MODEL", "NARRATIVE_TIMEOUT_SECONDS",
	"NARRATIVE_CACHE_TTL_MINUTES", "NARRATIVE_ATTEMPTS", "SWEEP_SPEC",
}

// clearEnv blanks every key so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 256, cfg.MaxConns)
	assert.Equal(t, 2, cfg.NarrativeWorkers)
	assert.Equal(t, ProviderNone, cfg.NarrativeProvider)
	assert.Equal(t, 60*time.Second, cfg.NarrativeTimeout)
	assert.Equal(t, 24*time.Hour, cfg.NarrativeCacheTTL)
	assert.Equal(t, "@every 1m", cfg.SweepSpec)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAX_CONNS", "16")
	t.Setenv("LOG_VERBOSE", "true")
	t.Setenv("NARRATIVE_TIMEOUT_SECONDS", "5")
	t.Setenv("GITHUB_TOKEN", "ghp")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 16, cfg.MaxConns)
	assert.True(t, cfg.LogVerbose)
	assert.Equal(t, 5*time.Second, cfg.NarrativeTimeout)
	assert.Equal(t, ProviderOpenAI, cfg.NarrativeProvider, "inferred from token")
	assert.Equal(t, "ghp", cfg.LLMAPIKey)
}

func TestLoadReportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_CONNS", "lots")
	t.Setenv("NARRATIVE_PROVIDER", "gemini")
	t.Setenv("LOG_VERBOSE", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "MAX_CONNS")
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
	assert.ErrorContains(t, err, "LOG_VERBOSE")

	clearEnv(t)
	t.Setenv("NARRATIVE_PROVIDER", "claude")
	_, err = Load()
	assert.ErrorContains(t, err, "unknown provider")
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LISTEN_ADDR=:9999\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LISTEN_ADDR") })
	require.NoError(t, os.Unsetenv("LISTEN_ADDR"))

	require.NoError(t, LoadDotenv(path))
	assert.Equal(t, ":9999", os.Getenv("LISTEN_ADDR"))

	assert.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), "missing.env")))
}
