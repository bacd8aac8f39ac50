// Package config loads the command-line tool's settings from an optional config
// file and UNITS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/cxd309/units"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. UNITS_LOG_LEVEL or UNITS_OUTPUT_DISTANCE_UNIT.
const EnvPrefix = "UNITS"

// ErrUnknownUnit is returned when a configured unit name matches no defined unit.
var ErrUnknownUnit = errors.New("unknown unit")

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// OutputConfig names the units simulation logs are written in. Names match
// units.DistanceUnit / units.TimeUnit String values, case-insensitively.
type OutputConfig struct {
	DistanceUnit string `mapstructure:"distance_unit" validate:"required"`
	TimeUnit     string `mapstructure:"time_unit" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("output.distance_unit", "meters")
	v.SetDefault("output.time_unit", "seconds")
}

// Load reads configuration from path (if non-empty) and the environment.
// Environment variables take precedence over values from the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if _, err := cfg.Output.Units(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Units resolves the configured unit names.
func (o OutputConfig) Units() (Units, error) {
	d, err := DistanceUnitByName(o.DistanceUnit)
	if err != nil {
		return Units{}, err
	}
	t, err := TimeUnitByName(o.TimeUnit)
	if err != nil {
		return Units{}, err
	}
	return Units{Distance: d, Time: t}, nil
}

// Units is a resolved OutputConfig.
type Units struct {
	Distance units.DistanceUnit
	Time     units.TimeUnit
}

// DistanceUnitByName finds the distance unit whose name is name, ignoring case.
func DistanceUnitByName(name string) (units.DistanceUnit, error) {
	for _, u := range units.DistanceUnits() {
		if strings.EqualFold(u.String(), name) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: distance unit %q", ErrUnknownUnit, name)
}

// TimeUnitByName finds the time unit whose name is name, ignoring case.
func TimeUnitByName(name string) (units.TimeUnit, error) {
	for _, u := range units.TimeUnits() {
		if strings.EqualFold(u.String(), name) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: time unit %q", ErrUnknownUnit, name)
}
