package vmath

// --- Arithmetic ---

func Abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative input and 1 otherwise
func Sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// --- Randomness ---

// FastRand is a xorshift64 generator. Not safe for concurrent use; the game
// loop owns its instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// SignedRange returns a magnitude in [lo, hi) with a random sign
func (r *FastRand) SignedRange(lo, hi float64) float64 {
	v := r.Range(lo, hi)
	if r.Next()&1 == 0 {
		return -v
	}
	return v
}
