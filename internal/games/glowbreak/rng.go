package glowbreak

import (
	"strconv"
	"time"
)

// LCG parameters. The modulus keeps the state below 2^31, so a*state fits in
// a uint64 without overflow.
const (
	lcgModulus    = 1 << 31
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// SeededRNG is a linear congruential generator. Two generators built from
// the same seed produce the same sequence, which is what makes the daily
// layout identical for every player.
type SeededRNG struct {
	state uint64
}

// NewSeededRNG creates a generator. Seeds are reduced modulo 2^31; negative
// seeds use their absolute value.
func NewSeededRNG(seed int64) *SeededRNG {
	if seed < 0 {
		seed = -seed
	}
	return &SeededRNG{state: uint64(seed) % lcgModulus} //#nosec G115 -- seed is non-negative here
}

// NextInt advances the generator and returns the new state.
func (r *SeededRNG) NextInt() uint64 {
	r.state = (lcgMultiplier*r.state + lcgIncrement) % lcgModulus
	return r.state
}

// NextFloat returns the next value scaled to [0, 1).
func (r *SeededRNG) NextFloat() float64 {
	return float64(r.NextInt()) / float64(lcgModulus)
}

// Intn returns a value in [0, n). It returns 0 for n <= 0.
func (r *SeededRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextFloat() * float64(n))
}

// Range returns a value in [lo, hi].
func (r *SeededRNG) Range(lo, hi float64) float64 {
	return lo + r.NextFloat()*(hi-lo)
}

// State returns the internal state for snapshots.
func (r *SeededRNG) State() uint64 {
	return r.state
}

// DailySeed turns a calendar date into a YYYYMMDD seed.
func DailySeed(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y*10000 + int(m)*100 + d)
}

// SeedString formats a seed as the leaderboard key.
func SeedString(seed int64) string {
	return strconv.FormatInt(seed, 10)
}
