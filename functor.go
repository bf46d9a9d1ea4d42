// Package functor holds the elementwise operators used by forward and
// backward passes. Each functor is a value type whose Call method is a pure
// function of its captured fields and its arguments, so one instance may be
// called from many goroutines at once.
package functor

type Unary interface {
	Call(x float32) float32
}

type Binary interface {
	Call(a, b float32) float32
}

type UnaryFunc func(float32) float32

func (f UnaryFunc) Call(x float32) float32 {
	return f(x)
}

type BinaryFunc func(float32, float32) float32

func (f BinaryFunc) Call(a, b float32) float32 {
	return f(a, b)
}
