package transducer

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Clock supplies wall-clock time to the model.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NoiseSource draws one Gaussian sample per call.
type NoiseSource interface {
	Gaussian(mean, stddev float64) float64
}

// GaussianNoise samples a normal distribution from a seeded PCG stream.
type GaussianNoise struct {
	src rand.Source
}

// NewGaussianNoise creates a reproducible noise source for the given seed.
func NewGaussianNoise(seed uint64) *GaussianNoise {
	return &GaussianNoise{
		src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
}

func (g *GaussianNoise) Gaussian(mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: g.src}.Rand()
}

// NoNoise always returns the mean.
type NoNoise struct{}

func (NoNoise) Gaussian(mean, _ float64) float64 { return mean }
