package bridge

import (
	"github.com/chewxy/math32"

	"github.com/itohio/govswr/pkg/calib"
)

// Tick drains both channel accumulators, derives log power, line voltage
// and power, writes the statistics buffers and recomputes VSWR.
// A channel that collected no samples keeps its previous readings.
func (b *Bridge) Tick() {
	if b.peakPos++; b.peakPos >= RingSize {
		b.peakPos = 0
	}
	if b.avgPos++; b.avgPos >= RingSize {
		b.avgPos = 0
	}

	b.aggregate(Forward)
	b.aggregate(Reverse)

	b.vswr = vswr(b.ch[Forward].peakVolts, b.ch[Reverse].peakVolts)
}

func (b *Bridge) aggregate(ch Channel) {
	a := b.acc[ch]
	b.acc[ch] = accumulator{}

	c := &b.ch[ch]
	if a.count > 0 {
		avg := int(a.sum / a.count)

		c.tenthdBm = int(math32.Round((dBmOffset + float32(avg)*dBmScale + couplingLoss) * 10))

		avgVolts := calib.Volts(avg)
		c.avgVoltsTenths = calib.TenthsOf(avgVolts)
		c.avgPowerTenths = powerTenths(avgVolts)

		c.peakVolts = calib.Volts(int(a.peak))
		c.peakVoltsTenths = calib.TenthsOf(c.peakVolts)
		c.peakPowerTenths = powerTenths(c.peakVolts)
	}

	c.avgBuf.put(b.avgPos, uint16(c.avgPowerTenths))
	c.peakBuf.put(b.peakPos, uint16(c.peakPowerTenths))
}

// powerTenths returns 10*V²/Z0 clipped to MaxPowerTenths.
func powerTenths(v float32) int {
	p := 10 * v * v / Z0
	if p > MaxPowerTenths {
		return MaxPowerTenths
	}
	return int(p)
}

// vswr computes the standing wave ratio in tenths from peak line voltages.
func vswr(fwd, rev float32) int {
	switch {
	case fwd < lowSignalVolts:
		return 10
	case fwd == rev:
		return HighVSWR
	}

	v := math32.Round(math32.Abs(10 * (fwd + rev) / (fwd - rev)))
	if v > HighVSWR {
		return HighVSWR
	}
	return int(v)
}
