package functor

type SqDist struct{}

func (SqDist) Call(a, b float32) float32 {
	d := a - b
	return d * d
}

type PairwiseRankLoss struct {
	Margin float32
}

func NewPairwiseRankLoss(margin float32) PairwiseRankLoss {
	return PairwiseRankLoss{Margin: margin}
}

func (f PairwiseRankLoss) Call(a, b float32) float32 {
	d := f.Margin - a + b
	if d > 0 {
		return d
	}
	return 0
}

// EuclideanBackward differentiates SqDist with respect to operand I
// (0 for a, anything else for b) and scales by the upstream scalar gradient.
//
// Scalar is borrowed. It must stay valid and unmodified for the whole apply
// call that uses this functor; the functor only reads it.
type EuclideanBackward struct {
	I      int
	Scalar *float32
}

func NewEuclideanBackward(i int, scalar *float32) EuclideanBackward {
	return EuclideanBackward{I: i, Scalar: scalar}
}

func (f EuclideanBackward) Call(a, b float32) float32 {
	var sign float32 = -2.0
	if f.I == 0 {
		sign = 2.0
	}
	return sign * (*f.Scalar) * (a - b)
}
