package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Serial    SerialConfig    `yaml:"serial"`
	Timing    TimingConfig    `yaml:"timing"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Settings  SettingsConfig  `yaml:"settings"`
}

// SerialConfig contains the Nextion panel serial port configuration.
// An empty port runs the emulator without a physical panel.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// TimingConfig contains the tick rates of the measurement loop.
type TimingConfig struct {
	SlowTick       time.Duration `yaml:"slow_tick"`       // aggregation period
	FastPerSlow    int           `yaml:"fast_per_slow"`   // sampler ticks between aggregations
	DisplayDivider int           `yaml:"display_divider"` // slow ticks per display tick
}

// DisplayTick returns the display tick period.
func (t TimingConfig) DisplayTick() time.Duration {
	return t.SlowTick * time.Duration(t.DisplayDivider)
}

// SimulatorConfig contains the simulated RF source configuration.
type SimulatorConfig struct {
	ForwardWatts float64       `yaml:"forward_watts"` // forward power into the bridge (W)
	Reflection   float64       `yaml:"reflection"`    // |Γ|, 0..1
	Noise        float64       `yaml:"noise"`         // peak noise on each line voltage (V)
	SweepPeriod  time.Duration `yaml:"sweep_period"`  // 0 holds forward power constant
}

// SettingsConfig contains the persisted settings location.
// An empty file keeps the settings in memory only.
type SettingsConfig struct {
	File string `yaml:"file"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "",
			Baud: 115200,
		},
		Timing: TimingConfig{
			SlowTick:       time.Millisecond,
			FastPerSlow:    8,
			DisplayDivider: 20, // 20 ms display tick
		},
		Simulator: SimulatorConfig{
			ForwardWatts: 10,
			Reflection:   0.2, // VSWR 1.5
			Noise:        0.05,
			SweepPeriod:  20 * time.Second,
		},
		Settings: SettingsConfig{
			File: "vswr_eeprom.bin",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults replaces zero or out of range values with defaults.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Baud <= 0 {
		c.Serial.Baud = def.Serial.Baud
	}

	if c.Timing.SlowTick <= 0 {
		c.Timing.SlowTick = def.Timing.SlowTick
	}
	if c.Timing.FastPerSlow <= 0 {
		c.Timing.FastPerSlow = def.Timing.FastPerSlow
	}
	if c.Timing.DisplayDivider <= 0 {
		c.Timing.DisplayDivider = def.Timing.DisplayDivider
	}

	if c.Simulator.ForwardWatts < 0 {
		c.Simulator.ForwardWatts = 0
	}
	if c.Simulator.Reflection < 0 {
		c.Simulator.Reflection = 0
	} else if c.Simulator.Reflection > 1 {
		c.Simulator.Reflection = 1
	}
	if c.Simulator.Noise < 0 {
		c.Simulator.Noise = 0
	}
	if c.Simulator.SweepPeriod < 0 {
		c.Simulator.SweepPeriod = 0
	}
}
