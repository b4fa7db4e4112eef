// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of xs.
func Bounds(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	return floats.Min(xs), floats.Max(xs)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// This is constant time if s.Sorted.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 || !s.Sorted {
		return Bounds(s.Xs)
	}
	return s.Xs[0], s.Xs[len(s.Xs)-1]
}

// Sum returns the sum of the Sample.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Weight returns the number of points in the Sample.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	return stat.Mean(xs, nil)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	return Mean(s.Xs)
}

// Variance returns the sample variance of the Sample.  Samples with
// fewer than two points have NaN variance.
func (s Sample) Variance() float64 {
	if s.Weight() < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Quantile returns the sample value X at which a fraction q of the
// sample is <= X. This uses interpolation method R8 from Hyndman and Fan
// (1996).
//
// q will be capped to the range [0, 1]. If len(xs) == 0, returns NaN.
//
// Quantile(0.5) is the median. Quantile(0.25) and Quantile(0.75) are
// the first and third quartiles, respectively. Quantile(P/100) is the
// P'th percentile.
//
// This is constant time if s.Sorted.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	} else if q <= 0 {
		min, _ := s.Bounds()
		return min
	} else if q >= 1 {
		_, max := s.Bounds()
		return max
	}

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	N := float64(len(s.Xs))
	n := 1/3.0 + q*(N+1/3.0) // R8
	kf, frac := math.Modf(n)
	k := int(kf)
	if k <= 0 {
		return s.Xs[0]
	} else if k >= len(s.Xs) {
		return s.Xs[len(s.Xs)-1]
	}
	return s.Xs[k-1] + frac*(s.Xs[k]-s.Xs[k-1])
}

// HDI returns the narrowest interval [lo, hi] that contains a fraction
// mass of the Sample's points. mass must be in (0, 1].
//
// For an empty Sample, HDI returns NaN, NaN.
func (s Sample) HDI(mass float64) (lo, hi float64) {
	if mass <= 0 || mass > 1 {
		panic("HDI mass must be in (0, 1]")
	}
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	n := len(s.Xs)
	width := int(math.Floor(mass * float64(n)))
	if width >= n {
		width = n - 1
	}
	best := 0
	for i := 1; i+width < n; i++ {
		if s.Xs[i+width]-s.Xs[i] < s.Xs[best+width]-s.Xs[best] {
			best = i
		}
	}
	return s.Xs[best], s.Xs[best+width]
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}
