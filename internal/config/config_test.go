package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, 0.8, cfg.Estimator.QuestionsPerMinute, 0.001)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.LogCalls)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("SURVEYFORGE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
estimator:
  questions_per_minute: 1.0
distribution:
  core_per_minute: 2.0
output:
  dir: /tmp/surveys
log_calls: true
`)
	require.NoError(t, os.WriteFile(path, body, 0644))
	t.Setenv("SURVEYFORGE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cfg.Estimator.QuestionsPerMinute, 0.001)
	assert.InDelta(t, 2.0, cfg.Distribution.CorePerMinute, 0.001)
	// Unset fields keep their defaults.
	assert.InDelta(t, 0.3, cfg.Distribution.ScreenerPerMinute, 0.001)
	assert.Equal(t, "/tmp/surveys", cfg.Output.Dir)
	assert.True(t, cfg.LogCalls)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("estimator:\n  questions_per_minute: 1.0\n"), 0644))
	t.Setenv("SURVEYFORGE_CONFIG", path)
	t.Setenv("SURVEYFORGE_QUESTIONS_PER_MINUTE", "0.7")
	t.Setenv("SURVEYFORGE_OUTPUT_DIR", "/var/out")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.7, cfg.Estimator.QuestionsPerMinute, 0.001)
	assert.Equal(t, "/var/out", cfg.Output.Dir)
}

func TestLoad_EnvOverridesDistribution(t *testing.T) {
	t.Setenv("SURVEYFORGE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("SURVEYFORGE_SCREENER_PER_MINUTE", "0.4")
	t.Setenv("SURVEYFORGE_CORE_PER_MINUTE", "2.0")
	t.Setenv("SURVEYFORGE_DEMOGRAPHICS_PER_MINUTE", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, cfg.Distribution.ScreenerPerMinute, 0.001)
	assert.InDelta(t, 2.0, cfg.Distribution.CorePerMinute, 0.001)
	assert.InDelta(t, 0.5, cfg.Distribution.DemographicsPerMinute, 0.001)
}

func TestLoad_SanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("estimator:\n  questions_per_minute: -1\n"), 0644))
	t.Setenv("SURVEYFORGE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.8, cfg.Estimator.QuestionsPerMinute, 0.001)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("estimator: ["), 0644))
	t.Setenv("SURVEYFORGE_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestDistributionPolicy(t *testing.T) {
	cfg := Default()
	policy := cfg.DistributionPolicy()
	assert.InDelta(t, 1.5, policy.CorePerMinute, 0.001)
	assert.Equal(t, 5, policy.MinScreener)
}
