package domain

// MaxNodes is the largest number of internal nodes a Graph may hold.
// Every node owns exactly one bit of a Bits value.
const MaxNodes = 64

// Bits is the toggle state of a walk: bit i is the next direction of node i.
// A clear bit means the next visit leaves through Left, a set bit through Right.
type Bits uint64

// Test reports whether the bit for node i is set.
func (b Bits) Test(i int) bool {
	return b&(Bits(1)<<uint(i)) != 0
}

// Flip returns b with the bit for node i inverted.
func (b Bits) Flip(i int) Bits {
	return b ^ (Bits(1) << uint(i))
}

// Mask returns a Bits value with bits lo..hi-1 set.
// Out-of-range bounds are clamped to [0, MaxNodes].
func Mask(lo, hi int) Bits {
	if lo < 0 {
		lo = 0
	}
	if hi > MaxNodes {
		hi = MaxNodes
	}
	var m Bits
	for i := lo; i < hi; i++ {
		m |= Bits(1) << uint(i)
	}
	return m
}
