// Package scale maps stored measurements onto display ranges: needle and
// meter angles, bargraph percentages and overscale indication.
package scale

import "github.com/itohio/govswr/pkg/bridge"

// FullScale lists the selectable full-scale power ranges in watts.
var FullScale = [Presets]int{2, 20, 200, 2000}

// Presets is the number of full-scale selections.
const Presets = 4

const (
	NeedleMinDegrees  float32 = 13.5 // 0 W
	NeedleFullDegrees float32 = 73.0 // full scale
	NeedleMaxDegrees  float32 = 90.0
	reverseFraction   float32 = 0.2 // reverse needle full scale relative to forward

	MeterMaxDegrees float32 = 180.0
	MaxPercent      float32 = 100.0

	logBarMin     float32 = -350.0 // tenths of dBm
	logBarMax     float32 = 650.0
	vswrFullScale float32 = 10.0
)

// OverscaleTicks is how many display passes an overscale stays lit.
const OverscaleTicks = 5

// Meter is the measurement view the scaling functions read.
type Meter interface {
	PeakOver(ch bridge.Channel, inTenths bool) int
	MeanOver(ch bridge.Channel, inTenths bool) int
	VSWR() int
	TenthdBm(ch bridge.Channel) int
}

var _ Meter = (*bridge.Bridge)(nil)

// Scaler converts readings of a Meter to display units and arms the
// per-channel overscale indicators whenever a value is clipped.
type Scaler struct {
	m         Meter
	overscale [2]Overscale
}

// New returns a Scaler reading from m.
func New(m Meter) *Scaler {
	return &Scaler{m: m}
}

// Overscale returns the indicator of a channel.
func (s *Scaler) Overscale(ch bridge.Channel) *Overscale {
	return &s.overscale[ch]
}

// Index clamps a full-scale selection to the preset range.
func Index(fs int) int {
	if fs < 0 || fs >= Presets {
		return 0
	}
	return fs
}

// power returns peak or mean power in tenths of a watt.
func (s *Scaler) power(ch bridge.Channel, peak bool) int {
	if peak {
		return s.m.PeakOver(ch, true)
	}
	return s.m.MeanOver(ch, true)
}

// clip limits v to limit and arms the channel's overscale when exceeded.
func (s *Scaler) clip(ch bridge.Channel, v, limit float32) float32 {
	if v > limit {
		s.overscale[ch].Arm()
		return limit
	}
	return v
}

// NeedleDegrees returns the crossed-needle angle for a channel, 13.5 to 90.
// The reverse needle uses a fifth of the selected full scale.
func (s *Scaler) NeedleDegrees(ch bridge.Channel, fs int, peak bool) int {
	full := float32(FullScale[Index(fs)])
	if ch == bridge.Reverse {
		full *= reverseFraction
	}

	// power is in tenths of a watt
	deg := NeedleMinDegrees + (NeedleFullDegrees-NeedleMinDegrees)*0.1*float32(s.power(ch, peak))/full
	return int(s.clip(ch, deg, NeedleMaxDegrees))
}

// MeterDegrees returns the analogue meter angle, 0 to 180.
func (s *Scaler) MeterDegrees(ch bridge.Channel, fs int, peak bool) int {
	full := float32(FullScale[Index(fs)])
	deg := 18.0 * float32(s.power(ch, peak)) / full
	return int(s.clip(ch, deg, MeterMaxDegrees))
}

// PowerPercent returns power as a percentage of full scale, 0 to 100.
func (s *Scaler) PowerPercent(ch bridge.Channel, fs int, peak bool) int {
	full := float32(FullScale[Index(fs)])
	pc := 10.0 * float32(s.power(ch, peak)) / full
	return int(s.clip(ch, pc, MaxPercent))
}

// VSWRPercent returns VSWR as a percentage of a 10:1 full scale.
func (s *Scaler) VSWRPercent() int {
	pc := float32(s.m.VSWR()) * 10.0 / vswrFullScale
	if pc > MaxPercent {
		return int(MaxPercent)
	}
	return int(pc)
}

// LogPercent returns log power as a percentage of the -35..+65 dBm window.
func (s *Scaler) LogPercent(ch bridge.Channel) int {
	pc := int((float32(s.m.TenthdBm(ch)) - logBarMin) * 100.0 / (logBarMax - logBarMin))
	switch {
	case pc < 0:
		return 0
	case pc > int(MaxPercent):
		return int(MaxPercent)
	}
	return pc
}
