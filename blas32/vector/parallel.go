package vector

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"github.com/sw965/functor"
	"gonum.org/v1/gonum/blas/blas32"
)

// ParallelMap is Map with the elements split across the workers of pool.
// The same functor value is shared by every worker. A nil pool runs Map.
func ParallelMap(pool *workerpool.Pool, x blas32.Vector, f functor.Unary) blas32.Vector {
	if pool == nil {
		return Map(x, f)
	}
	y := NewZerosLike(x)
	pool.ParallelFor(x.N, func(start, end int) {
		for i := start; i < end; i++ {
			y.Data[i] = f.Call(x.Data[i*x.Inc])
		}
	})
	return y
}

func ParallelMap2(pool *workerpool.Pool, a, b blas32.Vector, f functor.Binary) (blas32.Vector, error) {
	if pool == nil {
		return Map2(a, b, f)
	}
	if a.N != b.N {
		return blas32.Vector{}, fmt.Errorf("vector.ParallelMap2 a.N(%d) != b.N(%d)", a.N, b.N)
	}
	y := NewZerosLike(a)
	pool.ParallelFor(a.N, func(start, end int) {
		for i := start; i < end; i++ {
			y.Data[i] = f.Call(a.Data[i*a.Inc], b.Data[i*b.Inc])
		}
	})
	return y, nil
}
