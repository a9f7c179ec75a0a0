package scale

// Overscale is a sticky overscale flag. Arm sets it for OverscaleTicks
// displays; each Show consumes one.
type Overscale struct {
	ticks int
}

// Arm (re)starts the indicator at the full hold count.
func (o *Overscale) Arm() {
	o.ticks = OverscaleTicks
}

// Show reports whether the indicator should be lit on this display pass
// and counts the pass down.
func (o *Overscale) Show() bool {
	if o.ticks == 0 {
		return false
	}
	o.ticks--
	return true
}

// Active reports whether the indicator is armed without consuming a pass.
func (o *Overscale) Active() bool {
	return o.ticks > 0
}
