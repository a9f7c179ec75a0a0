package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, time.Millisecond, cfg.Timing.SlowTick)
	assert.Equal(t, 8, cfg.Timing.FastPerSlow)
	assert.Equal(t, 20, cfg.Timing.DisplayDivider)
	assert.Equal(t, 20*time.Millisecond, cfg.Timing.DisplayTick())
	assert.Equal(t, float64(10), cfg.Simulator.ForwardWatts)
	assert.Equal(t, 0.2, cfg.Simulator.Reflection)
	assert.Equal(t, 20*time.Second, cfg.Simulator.SweepPeriod)
	assert.Equal(t, "vswr_eeprom.bin", cfg.Settings.File)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	name := writeTemp(t, `
serial:
  port: "/dev/ttyUSB0"
  baud: 9600

timing:
  slow_tick: 2ms
  fast_per_slow: 4
  display_divider: 10

simulator:
  forward_watts: 100
  reflection: 0.5
  noise: 0
  sweep_period: 0s

settings:
  file: /tmp/meter.bin
`)

	cfg, err := Load(name)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.Equal(t, 2*time.Millisecond, cfg.Timing.SlowTick)
	assert.Equal(t, 4, cfg.Timing.FastPerSlow)
	assert.Equal(t, 10, cfg.Timing.DisplayDivider)
	assert.Equal(t, 20*time.Millisecond, cfg.Timing.DisplayTick())
	assert.Equal(t, float64(100), cfg.Simulator.ForwardWatts)
	assert.Equal(t, 0.5, cfg.Simulator.Reflection)
	assert.Zero(t, cfg.Simulator.Noise)
	assert.Zero(t, cfg.Simulator.SweepPeriod)
	assert.Equal(t, "/tmp/meter.bin", cfg.Settings.File)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeTemp(t, "invalid: yaml: content: ["))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
serial:
  port: "/dev/ttyACM0"
`))
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud)        // default
	assert.Equal(t, 20, cfg.Timing.DisplayDivider) // default
}

func TestLoad_OutOfRangeValues(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
timing:
  fast_per_slow: -1
  display_divider: 0
simulator:
  forward_watts: -5
  reflection: 3
  noise: -1
`))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Timing.FastPerSlow)
	assert.Equal(t, 20, cfg.Timing.DisplayDivider)
	assert.Zero(t, cfg.Simulator.ForwardWatts)
	assert.Equal(t, float64(1), cfg.Simulator.Reflection)
	assert.Zero(t, cfg.Simulator.Noise)
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB0"
	cfg.Simulator.ForwardWatts = 1500

	name := writeTemp(t, "")
	require.NoError(t, cfg.Save(name))

	loaded, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", loaded.Serial.Port)
	assert.Equal(t, float64(1500), loaded.Simulator.ForwardWatts)
	assert.Equal(t, cfg.Timing, loaded.Timing)
}
