package unit

import (
	"math"
)

// float64(math.MaxUint64) rounds up to 2^64, so anything at or above it
// cannot be represented.
const maxBytes = float64(math.MaxUint64)

// ToBytes converts a magnitude expressed in u to a byte count. Fractional
// bytes are truncated. Results that do not fit in a uint64 saturate at
// math.MaxUint64, and negative or NaN products are 0.
func (u Unit) ToBytes(magnitude float64) uint64 {
	v := magnitude * float64(u.Divisor())
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= maxBytes:
		return math.MaxUint64
	default:
		return uint64(v)
	}
}

// FromBytes converts a byte count to a magnitude expressed in u.
func (u Unit) FromBytes(n uint64) float64 {
	if u == B {
		return float64(n)
	}

	return float64(n) / float64(u.Divisor())
}
