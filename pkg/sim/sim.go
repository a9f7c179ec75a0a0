// Package sim simulates the detector outputs of the RF bridge.
package sim

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/calib"
	"github.com/itohio/govswr/pkg/config"
)

// Source produces ADC codes for a transmitter driving a load with a fixed
// reflection coefficient.
type Source struct {
	mu         sync.Mutex
	forwardW   float64
	reflection float64
	noise      float64
	sweep      time.Duration

	rnd   *rand.Rand
	now   func() time.Time
	start time.Time
}

var _ bridge.Source = (*Source)(nil)

// New creates a simulated bridge from cfg.
func New(cfg config.SimulatorConfig) *Source {
	return newSource(cfg, time.Now, 1)
}

func newSource(cfg config.SimulatorConfig, now func() time.Time, seed int64) *Source {
	return &Source{
		forwardW:   cfg.ForwardWatts,
		reflection: cfg.Reflection,
		noise:      cfg.Noise,
		sweep:      cfg.SweepPeriod,
		rnd:        rand.New(rand.NewSource(seed)),
		now:        now,
		start:      now(),
	}
}

// SetForward sets the forward power in watts.
func (s *Source) SetForward(w float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forwardW = math.Max(w, 0)
}

// SetReflection sets |Γ|, clamped to 0..1.
func (s *Source) SetReflection(g float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflection = math.Min(math.Max(g, 0), 1)
}

// Forward returns the forward power currently applied, in watts.
func (s *Source) Forward() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forward()
}

// forward applies the sweep: a triangle from zero to the set power.
func (s *Source) forward() float64 {
	if s.sweep <= 0 {
		return s.forwardW
	}
	phase := float64(s.now().Sub(s.start)%s.sweep) / float64(s.sweep)
	if phase < 0.5 {
		return s.forwardW * 2 * phase
	}
	return s.forwardW * 2 * (1 - phase)
}

// LineVoltage returns the line voltage seen by a detector, before noise.
func (s *Source) LineVoltage(ch bridge.Channel) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lineVoltage(ch)
}

func (s *Source) lineVoltage(ch bridge.Channel) float64 {
	v := math.Sqrt(s.forward() * float64(bridge.Z0))
	if ch == bridge.Reverse {
		v *= s.reflection
	}
	return v
}

// ReadChannel returns the detector code of a channel.
func (s *Source) ReadChannel(ch bridge.Channel) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.lineVoltage(ch)
	if s.noise > 0 {
		v += s.noise * (2*s.rnd.Float64() - 1)
	}
	if v < 0 {
		v = 0
	}
	return uint16(calib.Code(float32(v)))
}
