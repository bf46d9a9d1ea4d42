package functor

import (
	"github.com/chewxy/math32"
)

type Negate struct{}

func (Negate) Call(x float32) float32 {
	return -x
}

type ConstantMinus struct {
	C float32
}

func NewConstantMinus(c float32) ConstantMinus {
	return ConstantMinus{C: c}
}

func (f ConstantMinus) Call(x float32) float32 {
	return f.C - x
}

type Rectify struct{}

func (Rectify) Call(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// LogisticSigmoid relies on math32.Exp saturating to +Inf or 0, so the
// result stays inside [0, 1] and never becomes NaN for finite x.
type LogisticSigmoid struct{}

func (LogisticSigmoid) Call(x float32) float32 {
	return 1.0 / (1.0 + math32.Exp(-x))
}

type Tanh struct{}

func (Tanh) Call(x float32) float32 {
	return math32.Tanh(x)
}

// TanhBackward takes the forward output t = tanh(x), not x.
type TanhBackward struct{}

func (TanhBackward) Call(t, d float32) float32 {
	return (1.0 - t*t) * d
}

// RectifyBackward gates d on the forward output. At t == 0 the gradient is 0.
type RectifyBackward struct{}

func (RectifyBackward) Call(t, d float32) float32 {
	if t != 0 {
		return d
	}
	return 0
}

// LogisticSigmoidBackward takes the forward output t = sigmoid(x), not x.
type LogisticSigmoidBackward struct{}

func (LogisticSigmoidBackward) Call(t, d float32) float32 {
	return (1.0 - t) * t * d
}
