package transducer

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/stat"
)

func TestGaussianNoiseIsReproducible(t *testing.T) {
	a, b := NewGaussianNoise(42), NewGaussianNoise(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Gaussian(0, 1), b.Gaussian(0, 1)
		if va != vb {
			t.Fatalf("sample %d differs for equal seeds: %v != %v", i, va, vb)
		}
	}
}

func TestGaussianNoiseMoments(t *testing.T) {
	n := NewGaussianNoise(1)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = n.Gaussian(0.5, DefaultNoiseStdDev)
	}

	mean, sd := stat.MeanStdDev(samples, nil)
	if math.Abs(mean-0.5) > 0.005 {
		t.Errorf("mean = %v, want ~0.5", mean)
	}
	if math.Abs(sd-DefaultNoiseStdDev) > 0.005 {
		t.Errorf("stddev = %v, want ~%v", sd, DefaultNoiseStdDev)
	}
}

func TestGaussianNoiseZeroStdDev(t *testing.T) {
	n := NewGaussianNoise(3)
	for _, sd := range []float64{0, -1} {
		if got := n.Gaussian(1.25, sd); got != 1.25 {
			t.Errorf("Gaussian(1.25, %v) = %v, want mean", sd, got)
		}
	}
}

func TestSystemClockAdvances(t *testing.T) {
	before := time.Now()
	got := SystemClock{}.Now()
	if got.Before(before) {
		t.Errorf("SystemClock.Now() = %v, before %v", got, before)
	}
}
