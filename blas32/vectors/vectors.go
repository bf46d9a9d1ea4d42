package vectors

import (
	"fmt"

	"github.com/sw965/functor"
	"github.com/sw965/functor/blas32/vector"
	"gonum.org/v1/gonum/blas/blas32"
)

func Clone(vs []blas32.Vector) []blas32.Vector {
	clone := make([]blas32.Vector, len(vs))
	for i, v := range vs {
		clone[i] = vector.Clone(v)
	}
	return clone
}

// Copy writes each src[i] into dst[i].
func Copy(src, dst []blas32.Vector) error {
	if len(src) != len(dst) {
		return fmt.Errorf("vectors.Copy len(src) != len(dst)")
	}

	for i, x := range src {
		y := dst[i]
		if x.N != y.N {
			return fmt.Errorf("vectors.Copy src[%d].N(%d) != dst[%d].N(%d)", i, x.N, i, y.N)
		}
		blas32.Copy(x, y)
	}
	return nil
}

func Axpy(alpha float32, xs, ys []blas32.Vector) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("vectors.Axpy len(xs) != len(ys)")
	}

	for i, x := range xs {
		y := ys[i]
		if x.N != y.N {
			return fmt.Errorf("vectors.Axpy xs[%d].N(%d) != ys[%d].N(%d)", i, x.N, i, y.N)
		}
		blas32.Axpy(alpha, x, y)
	}
	return nil
}

func Map2(as, bs []blas32.Vector, f functor.Binary) ([]blas32.Vector, error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("vectors.Map2 len(as) != len(bs)")
	}

	ys := make([]blas32.Vector, len(as))
	for i, a := range as {
		y, err := vector.Map2(a, bs[i], f)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}
