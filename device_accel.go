//go:build accel

package functor

// accel ビルドでも関数本体は同一ソース。
const (
	Accelerated = true
	Backend     = "accel"
)
