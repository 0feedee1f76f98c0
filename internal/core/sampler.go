package core

import "math/rand"

// Sampler is the RNG contract every material, light and camera sample draws
// through. The renderer seeds one per image row (never per pixel or per
// sample), so every path traced for that row shares one reproducible stream;
// nothing in material, light or camera may reach for math/rand or time.Now
// directly (in core, only the BVH build's pivot choice uses math/rand).
type Sampler interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// Vec2 returns a pair of independent uniform samples in [0, 1)^2.
	Vec2() Vec2
}

// RandSampler is the default Sampler, backed by a private *rand.Rand so
// concurrent workers never contend on the global rand source.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler builds a RandSampler seeded deterministically from seed.
// Two RandSamplers built from the same seed produce identical streams.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandSampler) Float64() float64 {
	return s.rng.Float64()
}

func (s *RandSampler) Vec2() Vec2 {
	return Vec2{X: s.rng.Float64(), Y: s.rng.Float64()}
}
