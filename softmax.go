package functor

import (
	"github.com/chewxy/math32"
)

// SoftmaxNormalize は exp(x - logz) を返す。logz は上流の総和リダクションで計算済み。
type SoftmaxNormalize struct {
	LogZ float32
}

func NewSoftmaxNormalize(logz float32) SoftmaxNormalize {
	return SoftmaxNormalize{LogZ: logz}
}

func (f SoftmaxNormalize) Call(x float32) float32 {
	return math32.Exp(x - f.LogZ)
}

type LogSoftmaxNormalize struct {
	LogZ float32
}

func NewLogSoftmaxNormalize(logz float32) LogSoftmaxNormalize {
	return LogSoftmaxNormalize{LogZ: logz}
}

func (f LogSoftmaxNormalize) Call(x float32) float32 {
	return x - f.LogZ
}

// SoftmaxBackward computes one element of the softmax Jacobian-vector
// product. t is the forward probability and d the upstream gradient.
type SoftmaxBackward struct {
	OffDiagSum float32
}

func NewSoftmaxBackward(offDiagSum float32) SoftmaxBackward {
	return SoftmaxBackward{OffDiagSum: offDiagSum}
}

func (f SoftmaxBackward) Call(t, d float32) float32 {
	return (f.OffDiagSum + d) * t
}

// LogSoftmaxBackward takes t as a log-probability. With OffDiagSum equal to
// minus the sum of the upstream gradients this is the exact log-softmax
// gradient; it is intentionally not the (OffDiagSum + d) * t form used by
// SoftmaxBackward.
type LogSoftmaxBackward struct {
	OffDiagSum float32
}

func NewLogSoftmaxBackward(offDiagSum float32) LogSoftmaxBackward {
	return LogSoftmaxBackward{OffDiagSum: offDiagSum}
}

func (f LogSoftmaxBackward) Call(t, d float32) float32 {
	return f.OffDiagSum*math32.Exp(t) + d
}

type NegLogSoftmaxBackward struct {
	LogZ float32
	Err  float32
}

func NewNegLogSoftmaxBackward(logz, err float32) NegLogSoftmaxBackward {
	return NegLogSoftmaxBackward{LogZ: logz, Err: err}
}

func (f NegLogSoftmaxBackward) Call(t float32) float32 {
	return math32.Exp(t-f.LogZ) * f.Err
}

// WeightedError keeps the literal exp(t) * d / exp(t) form. It equals d up
// to rounding whenever exp(t) is a finite non-zero float32, and yields NaN
// when exp(t) overflows or underflows (t above ~88.7 or below ~-103.9).
type WeightedError struct{}

func (WeightedError) Call(t, d float32) float32 {
	e := math32.Exp(t)
	return e * d / e
}

// ReducedWeightedError is WeightedError after cancellation.
type ReducedWeightedError struct{}

func (ReducedWeightedError) Call(_, d float32) float32 {
	return d
}
