package functor_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/sw965/functor"
	"github.com/sw965/functor/blas32/vector"
	orand "github.com/sw965/omw/math/rand"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestSoftmaxNormalize(t *testing.T) {
	if result := functor.NewSoftmaxNormalize(0.0).Call(0.0); result != 1.0 {
		t.Errorf("SoftmaxNormalize(0)(0) = %v, want 1", result)
	}

	x := blas32.Vector{N: 4, Inc: 1, Data: []float32{1.0, -2.0, 0.5, 3.0}}
	logz := vector.LogSumExp(x)
	y := vector.Map(x, functor.NewSoftmaxNormalize(logz))
	sum := float32(0.0)
	for _, e := range y.Data {
		sum += e
	}
	if math32.Abs(sum-1.0) > 1e-6 {
		t.Errorf("Σ softmax = %v, want 1", sum)
	}

	direct := float32(0.0)
	for _, e := range x.Data {
		direct += math32.Exp(e)
	}
	if math32.Abs(math32.Log(direct)-logz) > 1e-5 {
		t.Errorf("LogSumExp = %v, want %v", logz, math32.Log(direct))
	}
}

func TestLogSoftmaxNormalize(t *testing.T) {
	tests := []struct {
		logz float32
		x    float32
	}{
		{logz: 0.0, x: 1.25},
		{logz: 2.5, x: -3.0},
		{logz: -1.0, x: 0.0},
		{logz: 100.0, x: 7.5},
	}
	for _, tt := range tests {
		result := functor.NewLogSoftmaxNormalize(tt.logz).Call(tt.x)
		if result != tt.x-tt.logz {
			t.Errorf("LogSoftmaxNormalize(%v)(%v) = %v, want %v", tt.logz, tt.x, result, tt.x-tt.logz)
		}
	}
}

// Full Jacobian of softmax: dx_i = Σ_j y_i (δ_ij - y_j) d_j
func softmaxJacobianProduct(y, d []float32) []float32 {
	dx := make([]float32, len(y))
	for i := range y {
		sum := float32(0.0)
		for j := range y {
			if i == j {
				sum += y[i] * (1 - y[j]) * d[j]
			} else {
				sum -= y[i] * y[j] * d[j]
			}
		}
		dx[i] = sum
	}
	return dx
}

func TestSoftmaxBackward(t *testing.T) {
	rng := orand.NewMt19937()
	n := 6
	x := vector.NewUniform(n, -3.0, 3.0, rng)
	d := vector.NewUniform(n, -1.0, 1.0, rng)

	y := vector.Map(x, functor.NewSoftmaxNormalize(vector.LogSumExp(x)))
	offDiagSum, err := vector.SoftmaxOffDiagSum(y, d)
	if err != nil {
		t.Fatal(err)
	}
	dx, err := vector.Map2(y, d, functor.NewSoftmaxBackward(offDiagSum))
	if err != nil {
		t.Fatal(err)
	}

	expected := softmaxJacobianProduct(y.Data, d.Data)
	for i := range expected {
		if math32.Abs(dx.Data[i]-expected[i]) > 1e-5 {
			t.Errorf("dx[%d] = %v, want %v", i, dx.Data[i], expected[i])
		}
	}

	if result := functor.NewSoftmaxBackward(0.5).Call(0.25, 1.5); result != 0.5 {
		t.Errorf("SoftmaxBackward(0.5)(0.25, 1.5) = %v, want 0.5", result)
	}
}

func TestLogSoftmaxBackward(t *testing.T) {
	if result := functor.NewLogSoftmaxBackward(-2.0).Call(0.0, 1.5); result != -0.5 {
		t.Errorf("LogSoftmaxBackward(-2)(0, 1.5) = %v, want -0.5", result)
	}

	rng := orand.NewMt19937()
	n := 5
	x := vector.NewUniform(n, -2.0, 2.0, rng)
	d := vector.NewUniform(n, -1.0, 1.0, rng)

	logY := vector.Map(x, functor.NewLogSoftmaxNormalize(vector.LogSumExp(x)))
	dx, err := vector.Map2(logY, d, functor.NewLogSoftmaxBackward(vector.LogSoftmaxOffDiagSum(d)))
	if err != nil {
		t.Fatal(err)
	}

	// Σ_j d_j log_softmax(x)_j を x_i で数値微分する。
	loss := func(x blas32.Vector) float32 {
		logY := vector.Map(x, functor.NewLogSoftmaxNormalize(vector.LogSumExp(x)))
		return blas32.Dot(logY, d)
	}
	h := float32(1e-2)
	for i := 0; i < n; i++ {
		plus := vector.Clone(x)
		plus.Data[i] += h
		minus := vector.Clone(x)
		minus.Data[i] -= h
		numGrad := (loss(plus) - loss(minus)) / (2.0 * h)
		if math32.Abs(dx.Data[i]-numGrad) > 1e-3 {
			t.Errorf("dx[%d] = %v, numerical = %v", i, dx.Data[i], numGrad)
		}
	}
}

func TestNegLogSoftmaxBackward(t *testing.T) {
	f := functor.NewNegLogSoftmaxBackward(0.0, 2.0)
	if result := f.Call(0.0); result != 2.0 {
		t.Errorf("NegLogSoftmaxBackward(0, 2)(0) = %v, want 2", result)
	}

	logz := float32(1.5)
	err := float32(-0.75)
	g := functor.NewNegLogSoftmaxBackward(logz, err)
	for _, x := range grid(-3.0, 3.0, 0.5) {
		result := g.Call(x)
		expected := functor.NewSoftmaxNormalize(logz).Call(x) * err
		if math32.Abs(result-expected) > 1e-6 {
			t.Errorf("NegLogSoftmaxBackward(%v, %v)(%v) = %v, want %v", logz, err, x, result, expected)
		}
	}
}

func TestWeightedError(t *testing.T) {
	literal := functor.WeightedError{}
	reduced := functor.ReducedWeightedError{}
	for _, y := range grid(-20.0, 20.0, 0.5) {
		for _, d := range []float32{-3.0, 0.0, 0.125, 7.5} {
			result := literal.Call(y, d)
			if math32.Abs(result-d) > 1e-6*math32.Abs(d) {
				t.Errorf("WeightedError(%v, %v) = %v, want %v", y, d, result, d)
			}
			if result := reduced.Call(y, d); result != d {
				t.Errorf("ReducedWeightedError(%v, %v) = %v, want %v", y, d, result, d)
			}
		}
	}

	if result := literal.Call(200.0, 1.0); !math32.IsNaN(result) {
		t.Errorf("WeightedError(200, 1) = %v, want NaN", result)
	}
	if result := reduced.Call(200.0, 1.0); result != 1.0 {
		t.Errorf("ReducedWeightedError(200, 1) = %v, want 1", result)
	}
}
