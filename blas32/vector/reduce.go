package vector

import (
	"fmt"

	"github.com/chewxy/math32"
	omath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/blas/blas32"
)

func values(x blas32.Vector) []float32 {
	if x.Inc == 1 {
		return x.Data[:x.N]
	}
	vs := make([]float32, x.N)
	for i := range vs {
		vs[i] = x.Data[i*x.Inc]
	}
	return vs
}

// LogSumExp returns log(Σ exp(x_i)), the logz consumed by the softmax
// family. An empty vector yields -Inf.
func LogSumExp(x blas32.Vector) float32 {
	if x.N == 0 {
		return math32.Inf(-1)
	}
	vs := values(x)
	maxX := omath.Max(vs...) // オーバーフロー対策
	if math32.IsInf(maxX, 0) {
		return maxX
	}
	sum := float32(0.0)
	for _, v := range vs {
		sum += math32.Exp(v - maxX)
	}
	return maxX + math32.Log(sum)
}

// SoftmaxOffDiagSum returns -Σ y_j d_j for forward probabilities y and
// upstream gradient d.
func SoftmaxOffDiagSum(y, d blas32.Vector) (float32, error) {
	if y.N != d.N {
		return 0, fmt.Errorf("vector.SoftmaxOffDiagSum y.N(%d) != d.N(%d)", y.N, d.N)
	}
	return -blas32.Dot(y, d), nil
}

// LogSoftmaxOffDiagSum returns -Σ d_j.
func LogSoftmaxOffDiagSum(d blas32.Vector) float32 {
	sum := float32(0.0)
	for _, v := range values(d) {
		sum += v
	}
	return -sum
}
