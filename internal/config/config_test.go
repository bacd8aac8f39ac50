package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/units"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	got, err := cfg.Output.Units()
	require.NoError(t, err)
	assert.Equal(t, Units{Distance: units.Meter, Time: units.Second}, got)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: DEBUG
output:
  distance_unit: kilometers
  time_unit: Hours
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	got, err := cfg.Output.Units()
	require.NoError(t, err)
	assert.Equal(t, units.Kilometer, got.Distance)
	assert.Equal(t, units.Hour, got.Time)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
output:
  distance_unit: kilometers
`)
	t.Setenv("UNITS_OUTPUT_DISTANCE_UNIT", "miles")
	t.Setenv("UNITS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "miles", cfg.Output.DistanceUnit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown log level", map[string]string{"UNITS_LOG_LEVEL": "verbose"}},
		{"unknown distance unit", map[string]string{"UNITS_OUTPUT_DISTANCE_UNIT": "furlongs"}},
		{"unknown time unit", map[string]string{"UNITS_OUTPUT_TIME_UNIT": "fortnights"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUnitByName(t *testing.T) {
	t.Parallel()

	for _, u := range units.DistanceUnits() {
		got, err := DistanceUnitByName(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
	for _, u := range units.TimeUnits() {
		got, err := TimeUnitByName(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}

	_, err := DistanceUnitByName("parsecs")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	_, err = TimeUnitByName("")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
