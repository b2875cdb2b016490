// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the nandsim configuration.
//
// Values come, in increasing priority, from built-in defaults, a YAML file, a
// .env file and NANDSIM_* environment variables. Command line flags are
// applied on top by the caller.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "nandsim.yaml"

// EnvPrefix prefixes all environment overrides.
const EnvPrefix = "NANDSIM_"

// Config holds all nandsim configuration.
type Config struct {
	// Simulation
	Workers       int           `yaml:"workers"`
	StepsPerCycle uint          `yaml:"steps_per_cycle"`
	Hold          uint          `yaml:"hold"`
	Period        time.Duration `yaml:"period"`

	// Outputs
	VCD string `yaml:"vcd"`
	DB  string `yaml:"db"`

	LogLevel string `yaml:"log_level"`

	Analog AnalogConfig `yaml:"analog"`
}

// AnalogConfig configures the CMOS transient run. Times are in nanoseconds,
// below the resolution of time.Duration.
type AnalogConfig struct {
	Cell     string  `yaml:"cell"` // inv or nand2
	CSV      string  `yaml:"csv"`
	StepNS   float64 `yaml:"step_ns"`
	EndNS    float64 `yaml:"end_ns"`
	WidthNS  float64 `yaml:"width_ns"`
	PeriodNS float64 `yaml:"period_ns"`
	Vdd      float64 `yaml:"vdd"`
	LoadPF   float64 `yaml:"load_pf"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StepsPerCycle: 16,
		Hold:          1,
		Period:        10 * time.Nanosecond,
		LogLevel:      "info",
		Analog: AnalogConfig{
			Cell:     "nand2",
			StepNS:   0.1,
			EndNS:    50,
			WidthNS:  5,
			PeriodNS: 10,
			Vdd:      5,
			LoadPF:   1,
		},
	}
}

// Load returns the defaults overridden by the YAML file at path, if it exists,
// then by the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrap(err, "failed to read config")
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadDotEnv loads the given .env file into the process environment. Variables
// already set are left alone and a missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

func (c *Config) applyEnvOverrides() error {
	str := func(key string, dst *string) {
		if v := os.Getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	uintv := func(key string, dst *uint) error {
		if v := os.Getenv(EnvPrefix + key); v != "" {
			n, err := strconv.ParseUint(v, 10, 0)
			if err != nil {
				return errors.Wrap(err, EnvPrefix+key)
			}
			*dst = uint(n)
		}
		return nil
	}
	str("VCD", &c.VCD)
	str("DB", &c.DB)
	str("LOG_LEVEL", &c.LogLevel)
	str("CSV", &c.Analog.CSV)
	if v := os.Getenv(EnvPrefix + "WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"WORKERS")
		}
		c.Workers = n
	}
	if err := uintv("HOLD", &c.Hold); err != nil {
		return err
	}
	if err := uintv("STEPS_PER_CYCLE", &c.StepsPerCycle); err != nil {
		return err
	}
	if v := os.Getenv(EnvPrefix + "PERIOD"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"PERIOD")
		}
		c.Period = d
	}
	return nil
}

// Validate checks the configuration for values the simulator cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 0:
		return errors.Errorf("invalid worker count %d", c.Workers)
	case c.Hold == 0:
		return errors.New("hold must be at least one clock cycle")
	case c.Period <= 0:
		return errors.Errorf("invalid clock period %v", c.Period)
	case c.Analog.StepNS <= 0 || c.Analog.EndNS < c.Analog.StepNS:
		return errors.Errorf("invalid analog time range: step %gns, end %gns", c.Analog.StepNS, c.Analog.EndNS)
	case c.Analog.WidthNS <= 0 || c.Analog.PeriodNS < c.Analog.WidthNS:
		return errors.Errorf("invalid analog pulse: width %gns, period %gns", c.Analog.WidthNS, c.Analog.PeriodNS)
	case c.Analog.Vdd <= 0 || c.Analog.LoadPF <= 0:
		return errors.New("analog supply and load must be positive")
	}
	return nil
}
