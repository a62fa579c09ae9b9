// SPDX-License-Identifier: MIT
package experiment_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarrisonGreenlee/isohash/experiment"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := experiment.NewConfig()

	assert.Equal(t, uint64(1), cfg.Seed())
	assert.Equal(t, "results", cfg.OutputDir())
	assert.Empty(t, cfg.Scenarios())
	assert.Zero(t, cfg.TrialsOverride())
	assert.Equal(t, runtime.NumCPU(), cfg.TrialWorkers())
	assert.Equal(t, 1, cfg.EngineWorkers())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.True(t, cfg.MetricsEnabled())
}

func TestConfigLoadFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "isohash.yaml")
	body := `run:
  seed: 42
  output_dir: out
  scenarios: [directed_isomorphic, overflow_undirected_isomorphic]
  trials_override: 3
performance:
  trial_workers: 2
  engine_workers: 4
logging:
  level: debug
metrics:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := experiment.NewConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, uint64(42), cfg.Seed())
	assert.Equal(t, "out", cfg.OutputDir())
	assert.Equal(t, []string{"directed_isomorphic", "overflow_undirected_isomorphic"}, cfg.Scenarios())
	assert.Equal(t, 3, cfg.TrialsOverride())
	assert.Equal(t, 2, cfg.TrialWorkers())
	assert.Equal(t, 4, cfg.EngineWorkers())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.False(t, cfg.MetricsEnabled())
}

func TestConfigLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg := experiment.NewConfig()
	assert.Error(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestConfigCreateLogger(t *testing.T) {
	t.Parallel()

	cfg := experiment.NewConfig()
	cfg.Set("logging.level", "warn")
	assert.Equal(t, zerolog.WarnLevel, cfg.CreateLogger().GetLevel())

	cfg.Set("logging.level", "not-a-level")
	assert.Equal(t, zerolog.InfoLevel, cfg.CreateLogger().GetLevel())
}
