//go:build !accel

package functor

const (
	Accelerated = false
	Backend     = "host"
)
