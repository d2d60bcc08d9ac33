package core

import (
	"math/rand"
	"sync"
)

// Sampler provides uniform random numbers for the sampling routines.
// Can be swapped out for deterministic testing.
type Sampler interface {
	// Get1D returns a value uniform in [0, 1)
	Get1D() float64
}

// SampleRange returns a value uniform in [min, max)
func SampleRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomSampler draws from a caller-owned *rand.Rand. Like the generator
// it wraps, it must not be shared between goroutines without LockedSampler.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler adopts random as the sample stream
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D draws the next value of the stream, in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// LockedSampler serializes access to a wrapped sampler so that several
// goroutines can draw from one sequence
type LockedSampler struct {
	mu      sync.Mutex
	sampler Sampler
}

// NewLockedSampler wraps sampler with a mutex
func NewLockedSampler(sampler Sampler) *LockedSampler {
	return &LockedSampler{sampler: sampler}
}

// Get1D returns the next value from the wrapped sampler
func (l *LockedSampler) Get1D() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sampler.Get1D()
}
