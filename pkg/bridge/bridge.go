// Package bridge samples the forward and reverse detectors of a directional
// bridge and derives log power, linear power and VSWR from them.
//
// All derived quantities are integers in tenths of their unit. A Bridge is
// driven by two callbacks from a single cooperative loop: FastTick at the
// sampling rate and Tick at the aggregation rate (about 1 ms). Neither is
// safe for concurrent use.
package bridge

import "fmt"

// Channel selects one of the two detectors.
type Channel int

const (
	Forward Channel = iota
	Reverse
)

func (c Channel) String() string {
	switch c {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// MaxRaw is the largest raw code produced by the 10-bit ADC.
const MaxRaw = 1023

const (
	// dBm = dBmOffset + code*dBmScale + couplingLoss
	dBmOffset    float32 = -96.0
	dBmScale     float32 = 0.1253
	couplingLoss float32 = 50.0 // bridge coupling, dB

	// Z0 is the line characteristic impedance in ohms.
	Z0 float32 = 50.0

	// MaxPowerTenths is the ceiling applied to stored powers (6000 W).
	MaxPowerTenths = 60000

	// HighVSWR is the sentinel for an undefined or near infinite VSWR (999.9).
	HighVSWR = 9999

	// lowSignalVolts is the forward voltage under which VSWR reads 1.0.
	lowSignalVolts float32 = 0.1
)

// Source provides raw detector codes.
type Source interface {
	ReadChannel(ch Channel) uint16
}

// accumulator collects raw samples for one channel between aggregations.
type accumulator struct {
	peak  uint16
	sum   uint32
	count uint32
}

// channel holds the derived readings and statistics buffers of one detector.
type channel struct {
	tenthdBm        int
	avgVoltsTenths  int
	peakVoltsTenths int
	avgPowerTenths  int
	peakPowerTenths int
	peakVolts       float32

	peakBuf ring
	avgBuf  ring
}

// Bridge owns the sampler accumulators, the statistics buffers and the
// derived readings of one instrument.
type Bridge struct {
	src Source

	acc     [2]accumulator
	readRev bool // next FastTick reads the reverse channel

	ch      [2]channel
	peakPos int
	avgPos  int
	vswr    int
}

// Readings is a copy of the derived values of both channels.
type Readings struct {
	ForwardTenthdBm        int
	ReverseTenthdBm        int
	ForwardVoltsTenths     int
	ReverseVoltsTenths     int
	ForwardAvgPowerTenths  int
	ReverseAvgPowerTenths  int
	ForwardPeakPowerTenths int
	ReversePeakPowerTenths int
	VSWR                   int
}

// New creates a Bridge reading from src.
func New(src Source) *Bridge {
	b := &Bridge{src: src}
	b.Reset()
	return b
}

// Reset clears accumulators, statistics buffers and derived readings.
func (b *Bridge) Reset() {
	b.acc = [2]accumulator{}
	b.readRev = false
	b.ch = [2]channel{}
	b.peakPos = 0
	b.avgPos = 0
	b.vswr = 10
}

// TenthdBm returns the averaged log power in tenths of a dBm.
func (b *Bridge) TenthdBm(ch Channel) int { return b.ch[ch].tenthdBm }

// LineVoltageTenths returns the peak-derived line voltage in tenths of a volt.
func (b *Bridge) LineVoltageTenths(ch Channel) int { return b.ch[ch].peakVoltsTenths }

// AvgLineVoltageTenths returns the average-derived line voltage in tenths of a volt.
func (b *Bridge) AvgLineVoltageTenths(ch Channel) int { return b.ch[ch].avgVoltsTenths }

// AvgPowerTenths returns the most recent average-derived power in tenths of a watt.
func (b *Bridge) AvgPowerTenths(ch Channel) int { return b.ch[ch].avgPowerTenths }

// PeakPowerTenths returns the most recent peak-derived power in tenths of a watt.
func (b *Bridge) PeakPowerTenths(ch Channel) int { return b.ch[ch].peakPowerTenths }

// VSWR returns the standing wave ratio in tenths, or HighVSWR.
func (b *Bridge) VSWR() int { return b.vswr }

// PeakOver returns the largest peak power held in the channel's statistics
// buffer, in tenths of a watt or, when inTenths is false, whole watts.
func (b *Bridge) PeakOver(ch Channel, inTenths bool) int {
	v := b.ch[ch].peakBuf.max()
	if !inTenths {
		v /= 10
	}
	return v
}

// MeanOver returns the mean of the channel's average power buffer, in tenths
// of a watt or, when inTenths is false, whole watts.
func (b *Bridge) MeanOver(ch Channel, inTenths bool) int {
	v := b.ch[ch].avgBuf.mean()
	if !inTenths {
		v /= 10
	}
	return v
}

// Snapshot returns a copy of the current derived readings.
func (b *Bridge) Snapshot() Readings {
	f, r := &b.ch[Forward], &b.ch[Reverse]
	return Readings{
		ForwardTenthdBm:        f.tenthdBm,
		ReverseTenthdBm:        r.tenthdBm,
		ForwardVoltsTenths:     f.peakVoltsTenths,
		ReverseVoltsTenths:     r.peakVoltsTenths,
		ForwardAvgPowerTenths:  f.avgPowerTenths,
		ReverseAvgPowerTenths:  r.avgPowerTenths,
		ForwardPeakPowerTenths: f.peakPowerTenths,
		ReversePeakPowerTenths: r.peakPowerTenths,
		VSWR:                   b.vswr,
	}
}

func (r Readings) String() string {
	return fmt.Sprintf("fwd %.1f dBm %.1f/%.1f W, rev %.1f dBm %.1f/%.1f W, vswr %.1f",
		tenths(r.ForwardTenthdBm), tenths(r.ForwardAvgPowerTenths), tenths(r.ForwardPeakPowerTenths),
		tenths(r.ReverseTenthdBm), tenths(r.ReverseAvgPowerTenths), tenths(r.ReversePeakPowerTenths),
		tenths(r.VSWR))
}

func tenths(v int) float64 {
	return float64(v) / 10
}
