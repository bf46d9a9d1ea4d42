package vector

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/sw965/functor"
	crand "github.com/sw965/functor/math/rand"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func NewRademacher(n int, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = crand.Rademacher(rng)
	}
	return vec
}

func NewUniform(n int, min, max float32, rng *rand.Rand) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: crand.Uniforms(n, min, max, rng),
	}
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:    vec.N,
		Inc:  vec.Inc,
		Data: slices.Clone(vec.Data),
	}
}

// Map は x の各要素に f を適用した新しいベクトル (Inc = 1) を返す。
func Map(x blas32.Vector, f functor.Unary) blas32.Vector {
	y := NewZerosLike(x)
	for i := 0; i < x.N; i++ {
		y.Data[i] = f.Call(x.Data[i*x.Inc])
	}
	return y
}

func Map2(a, b blas32.Vector, f functor.Binary) (blas32.Vector, error) {
	if a.N != b.N {
		return blas32.Vector{}, fmt.Errorf("vector.Map2 a.N(%d) != b.N(%d)", a.N, b.N)
	}
	y := NewZerosLike(a)
	for i := 0; i < a.N; i++ {
		y.Data[i] = f.Call(a.Data[i*a.Inc], b.Data[i*b.Inc])
	}
	return y, nil
}
