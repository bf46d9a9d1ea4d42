package optimizer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"
	"github.com/sw965/functor"
	"github.com/sw965/functor/blas32/vectors"
	"gonum.org/v1/gonum/blas/blas32"
)

// L2SGD is plain gradient descent with weight decay. Each Step adds
// functor.L2SGDUpdate(Lambda, LearningRate)(x, g) to every parameter x.
// A nil Logger discards output.
type L2SGD struct {
	Lambda       float32
	LearningRate float32
	Logger       *zerolog.Logger
}

func (opt *L2SGD) logger() *zerolog.Logger {
	if opt.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return opt.Logger
}

// Step updates params in place. If any updated element is NaN or ±Inf the
// params are restored to their values before the call and an error is
// returned.
func (opt *L2SGD) Step(params, grads []blas32.Vector) error {
	log := opt.logger()
	f := functor.NewL2SGDUpdate(opt.Lambda, opt.LearningRate)
	deltas, err := vectors.Map2(params, grads, f)
	if err != nil {
		return err
	}

	backup := vectors.Clone(params)
	err = vectors.Axpy(1.0, deltas, params)
	if err != nil {
		return err
	}

	log.Debug().
		Int("params", len(params)).
		Float32("lr", opt.LearningRate).
		Float32("lambda", opt.Lambda).
		Msg("l2 sgd step")

	for i, p := range params {
		for j := 0; j < p.N; j++ {
			e := p.Data[j*p.Inc]
			if math32.IsNaN(e) || math32.IsInf(e, 0) {
				log.Warn().
					Int("param", i).
					Int("index", j).
					Float32("value", e).
					Msg("parameter diverged, rolling back")
				if err := vectors.Copy(backup, params); err != nil {
					return err
				}
				return fmt.Errorf("optimizer.L2SGD.Step params[%d][%d] diverged to %v", i, j, e)
			}
		}
	}
	return nil
}
