package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/pipeline"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvStoreDSN, "")
	t.Setenv(EnvMapsDir, "")
	t.Setenv(EnvLogLevel, "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.8, cfg.Contours.Epsilon)
	assert.Equal(t, 2, cfg.Contours.Iterations)
	assert.Equal(t, 10000, cfg.Contours.MaxSteps)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "floormap.yaml")

	cfg := DefaultConfig()
	cfg.Contours.Epsilon = 1.5
	cfg.Store.DSN = "/var/lib/floormap/maps.db"
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "floormap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contours:\n  iterations: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Contours.Iterations)
	assert.Equal(t, 0.8, cfg.Contours.Epsilon)
	assert.Equal(t, "maps", cfg.Store.MapsDir)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvStoreDSN, ":memory:")
	t.Setenv(EnvMapsDir, "/tmp/maps")
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	assert.Equal(t, ":memory:", cfg.Store.DSN)
	assert.Equal(t, "/tmp/maps", cfg.Store.MapsDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"NegativeEpsilon": func(c *Config) { c.Contours.Epsilon = -1 },
		"NegativeIters":   func(c *Config) { c.Contours.Iterations = -1 },
		"ZeroMaxSteps":    func(c *Config) { c.Contours.MaxSteps = 0 },
		"UnknownLevel":    func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v; want ErrInvalid", err)
			}
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "floormap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contours: [oops"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestPipelineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contours.Iterations = 0
	g, err := grid.FromRows(1, "......", ".####.", ".####.", ".####.", ".####.", "......")
	require.NoError(t, err)

	st, err := pipeline.Run(g, cfg.PipelineOptions()...)
	require.NoError(t, err)
	assert.Equal(t, st.Simplified, st.Smoothed)
}
