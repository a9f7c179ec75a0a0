package bridge

// FastTick reads one detector, alternating forward and reverse on
// successive calls, and folds the code into that channel's peak and sum.
// It must run at least twice per Tick so both channels see a sample.
func (b *Bridge) FastTick() {
	ch := Forward
	if b.readRev {
		ch = Reverse
	}

	code := b.src.ReadChannel(ch)
	if code > MaxRaw {
		code = MaxRaw
	}

	a := &b.acc[ch]
	if code > a.peak {
		a.peak = code
	}
	a.sum += uint32(code)
	a.count++

	b.readRev = !b.readRev
}
