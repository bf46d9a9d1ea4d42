package rand

import (
	"math/rand"

	omwrand "github.com/sw965/omw/math/rand"
)

func Rademacher(rng *rand.Rand) float32 {
	if omwrand.Bool(rng) {
		return 1.0
	}
	return -1.0
}

func Uniform(min, max float32, rng *rand.Rand) float32 {
	return rng.Float32()*(max-min) + min
}

func Uniforms(n int, min, max float32, rng *rand.Rand) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = Uniform(min, max, rng)
	}
	return xs
}
