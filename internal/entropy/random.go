// Package entropy provides the injectable randomness source for event rolls.
// Engines take a Source instead of calling a global generator, so a fixed seed
// replays an identical negotiation. Falls back to crypto/rand when no seed is
// wired.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
	mrand "math/rand"
	"sync"
)

// Source yields floats in [0, 1). Implementations must be safe for use from
// a single engine goroutine; Seeded additionally tolerates concurrent use.
type Source interface {
	Float() float64
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded creates a deterministic source. Identical seeds reproduce
// identical roll sequences.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewSource(seed))}
}

// Float returns the next float64 in [0, 1).
func (s *Seeded) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Crypto is a non-deterministic Source backed by crypto/rand. The zero value
// is ready to use.
type Crypto struct{}

// Float returns a uniform float64 in [0, 1) from crypto/rand.
func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

func cryptoRandFloat() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Should never happen; 0.5 keeps probability gates sane.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Mix folds extra state into a seed, for deriving per-entity streams from one
// base seed.
func Mix(seed int64, salt uint64) int64 {
	x := uint64(seed) ^ bits.RotateLeft64(salt, 31)
	// splitmix64 finalizer.
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
