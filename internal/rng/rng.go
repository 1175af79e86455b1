// Package rng provides the deterministic random number generation used by
// all dungeon and room generation. Streams depend only on the run seed and a
// string salt, so any room can be regenerated bit-for-bit without storing
// per-room generator state.
package rng

import "strconv"

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619

	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// HashString hashes a string into a 32-bit unsigned integer using FNV-1a.
// The exact bit pattern is part of the save format: derived seeds must match
// across implementations or old saves regenerate different dungeons.
func HashString(s string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	return h
}

// Rng is a 32-bit linear congruential generator. It is a pure function of
// its seed and call count; there is no ambient entropy anywhere in the core.
type Rng struct {
	state uint32
}

// New creates a generator with the given seed.
func New(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (r *Rng) Float64() float64 {
	r.state = lcgMultiplier*r.state + lcgIncrement
	return float64(r.state) / 4294967296.0
}

// Intn advances the generator and returns an integer in [0, n).
// n must be positive.
func (r *Rng) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// SubSeed derives a salted seed from the run seed and a label, giving each
// room and purpose an independent-looking stream.
func SubSeed(runSeed uint32, label string) uint32 {
	return HashString(strconv.FormatUint(uint64(runSeed), 10) + ":" + label)
}
