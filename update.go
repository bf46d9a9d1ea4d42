package functor

// L2SGDUpdate returns the change to apply to a parameter: a descent step on
// the raw gradient fused with weight decay. Scale is stored negated, so
// callers pass a positive learning rate.
type L2SGDUpdate struct {
	Lambda float32
	Scale  float32
}

func NewL2SGDUpdate(lambda, scale float32) L2SGDUpdate {
	return L2SGDUpdate{Lambda: lambda, Scale: -scale}
}

func (f L2SGDUpdate) Call(x, g float32) float32 {
	return f.Scale*g - x*f.Lambda
}
