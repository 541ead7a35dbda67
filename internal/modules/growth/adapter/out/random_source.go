package out

import (
	"math/rand/v2"
	"sync"

	growthout "plant/internal/modules/growth/port/out"
)

// RandomSource draws from math/rand/v2. The zero seed uses the runtime's
// global generator; any other seed gives a reproducible PCG stream.
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSource(seed uint64) growthout.RandomSource {
	if seed == 0 {
		return &RandomSource{}
	}
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomSource) Float64() float64 {
	if r.rng == nil {
		return rand.Float64()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *RandomSource) Uint64() uint64 {
	if r.rng == nil {
		return rand.Uint64()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Uint64()
}
