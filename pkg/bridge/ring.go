package bridge

// RingSize is the number of aggregation results held per statistics buffer.
const RingSize = 32

// ring is a fixed circular buffer of tenths-of-a-watt values.
// Slots start at zero and are never marked unfilled, so for the first
// RingSize ticks Max and Mean include startup zeros.
type ring struct {
	slots [RingSize]uint16
}

func (r *ring) put(pos int, v uint16) {
	r.slots[pos] = v
}

func (r *ring) max() int {
	var m uint16
	for _, v := range r.slots {
		if v > m {
			m = v
		}
	}
	return int(m)
}

func (r *ring) mean() int {
	var sum uint32
	for _, v := range r.slots {
		sum += uint32(v)
	}
	return int(sum / RingSize)
}

func (r *ring) reset() {
	r.slots = [RingSize]uint16{}
}
