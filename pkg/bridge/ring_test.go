package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fill writes values into r at successive positions starting at pos,
// wrapping like the aggregator does, and returns the next position.
func fill(r *ring, pos int, values ...uint16) int {
	for _, v := range values {
		r.put(pos, v)
		if pos++; pos >= RingSize {
			pos = 0
		}
	}
	return pos
}

func TestRing_MaxAnyOrder(t *testing.T) {
	values := make([]uint16, RingSize)
	for i := range values {
		values[i] = uint16((i * 7919) % 1000)
	}
	values[13] = 5000

	var r ring
	fill(&r, 5, values...)
	assert.Equal(t, 5000, r.max())
}

func TestRing_EvictsOldest(t *testing.T) {
	var r ring
	pos := fill(&r, 0, 900)
	for range RingSize - 1 {
		pos = fill(&r, pos, 100)
	}
	assert.Equal(t, 900, r.max())

	fill(&r, pos, 50)
	assert.Equal(t, 100, r.max(), "33rd write evicts exactly the oldest value")
}

func TestRing_Mean(t *testing.T) {
	tests := []struct {
		name   string
		values func(i int) uint16
		want   int
	}{
		{"all equal", func(int) uint16 { return 123 }, 123},
		{"alternating 0 and 20", func(i int) uint16 { return uint16(i % 2 * 20) }, 10},
		{"truncates", func(i int) uint16 {
			if i == 0 {
				return 31
			}
			return 0
		}, 0},
		{"full scale", func(int) uint16 { return MaxPowerTenths }, MaxPowerTenths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r ring
			for i := range RingSize {
				r.put(i, tt.values(i))
			}
			assert.Equal(t, tt.want, r.mean())
		})
	}
}

func TestRing_StartupZeros(t *testing.T) {
	var r ring
	r.put(0, 320)
	assert.Equal(t, 320, r.max())
	assert.Equal(t, 10, r.mean())

	r.reset()
	assert.Zero(t, r.max())
}
