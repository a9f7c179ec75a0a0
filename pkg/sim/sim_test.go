package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/calib"
	"github.com/itohio/govswr/pkg/config"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestReadChannel_MatchesCalibration(t *testing.T) {
	s := newSource(config.SimulatorConfig{ForwardWatts: 100, Reflection: 0.5}, time.Now, 1)

	fwd := calib.Volts(int(s.ReadChannel(bridge.Forward)))
	rev := calib.Volts(int(s.ReadChannel(bridge.Reverse)))

	// sqrt(100 * 50) and half of it
	assert.InDelta(t, 70.71, fwd, 1.0)
	assert.InDelta(t, 35.36, rev, 1.0)
}

func TestReadChannel_NoPower(t *testing.T) {
	s := newSource(config.SimulatorConfig{}, time.Now, 1)
	assert.Equal(t, uint16(0), s.ReadChannel(bridge.Forward))
	assert.Equal(t, uint16(0), s.ReadChannel(bridge.Reverse))
}

func TestReadChannel_SaturatesAtFullScale(t *testing.T) {
	s := newSource(config.SimulatorConfig{ForwardWatts: 1e6, Reflection: 1}, time.Now, 1)
	assert.Equal(t, uint16(calib.MaxCode), s.ReadChannel(bridge.Forward))
	assert.Equal(t, uint16(calib.MaxCode), s.ReadChannel(bridge.Reverse))
}

func TestReadChannel_NoiseIsBounded(t *testing.T) {
	s := newSource(config.SimulatorConfig{ForwardWatts: 10, Noise: 0.5}, time.Now, 7)
	lo := calib.Code(float32(math.Sqrt(500) - 0.5))
	hi := calib.Code(float32(math.Sqrt(500) + 0.5))

	for range 200 {
		code := int(s.ReadChannel(bridge.Forward))
		assert.GreaterOrEqual(t, code, lo)
		assert.LessOrEqual(t, code, hi)
	}
}

func TestSweep_Triangle(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	s := newSource(config.SimulatorConfig{ForwardWatts: 100, SweepPeriod: 10 * time.Second}, c.now, 1)

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{2500 * time.Millisecond, 50},
		{5 * time.Second, 100},
		{7500 * time.Millisecond, 50},
		{10 * time.Second, 0},
	}
	for _, tt := range tests {
		c.t = time.Unix(0, 0).Add(tt.at)
		assert.InDelta(t, tt.want, s.Forward(), 1e-9, "at %v", tt.at)
	}
}

func TestSetters_Clamp(t *testing.T) {
	s := newSource(config.SimulatorConfig{ForwardWatts: 10}, time.Now, 1)

	s.SetForward(-3)
	assert.Zero(t, s.Forward())

	s.SetForward(50)
	s.SetReflection(2)
	assert.InDelta(t, s.LineVoltage(bridge.Forward), s.LineVoltage(bridge.Reverse), 1e-9)

	s.SetReflection(-1)
	assert.Zero(t, s.LineVoltage(bridge.Reverse))
}

func TestBridge_ReadsSimulatedVSWR(t *testing.T) {
	// |Γ| = 0.5 gives VSWR 3
	b := bridge.New(newSource(config.SimulatorConfig{ForwardWatts: 100, Reflection: 0.5}, time.Now, 1))
	for range 4 {
		b.FastTick()
		b.FastTick()
		b.Tick()
	}
	assert.InDelta(t, 30, b.VSWR(), 2)
	assert.InDelta(t, 1000, b.PeakPowerTenths(bridge.Forward), 50)
}
