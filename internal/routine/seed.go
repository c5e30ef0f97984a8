package routine

import (
	"fmt"
	"math/rand/v2"
)

// Seed selects the randomness source for a generation run. The zero value
// is a random seed.
type Seed struct {
	fixed bool
	value uint64
}

// RandomSeed draws fresh randomness on every run.
func RandomSeed() Seed {
	return Seed{}
}

// FixedSeed makes generation reproducible for identical inputs.
func FixedSeed(n uint64) Seed {
	return Seed{fixed: true, value: n}
}

func (s Seed) IsFixed() bool {
	return s.fixed
}

// Value returns the caller-supplied seed; ok is false for a random seed.
func (s Seed) Value() (v uint64, ok bool) {
	return s.value, s.fixed
}

func (s Seed) String() string {
	if s.fixed {
		return fmt.Sprintf("fixed(%d)", s.value)
	}
	return "random"
}

// Rand returns a generator for this seed. A random seed is resolved once,
// so all draws of one run share a single stream.
func (s Seed) Rand() *rand.Rand {
	v := s.value
	if !s.fixed {
		v = rand.Uint64()
	}
	return rand.New(rand.NewPCG(v, v^0x9e3779b97f4a7c15))
}
