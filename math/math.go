package math

import (
	"golang.org/x/exp/constraints"
)

func CentralDifference[F constraints.Float](plusY, minusY, h F) F {
	return (plusY - minusY) / (2.0 * h)
}

// Derivative は中心差分による数値微分。
func Derivative[F constraints.Float](f func(F) F, x, h F) F {
	return CentralDifference(f(x+h), f(x-h), h)
}
