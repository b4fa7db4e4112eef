// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// KDE represents options for constructing a Gaussian kernel density
// estimate.
//
// A kernel density estimate is similar to a histogram, except that it
// is a smooth probability estimate and does not require choosing a
// bin size and discretizing the data. It is what the chart package
// draws for posterior samples.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf. Density that falls outside a finite
	// boundary is reflected back inside it.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	iqr := s.Quantile(0.75) - s.Quantile(0.25)
	hScale := 1.06 * math.Pow(s.Weight(), -1.0/5)
	stdDev := s.StdDev()
	if iqr > 0 && !(stdDev < iqr/1.349) {
		stdDev = iqr / 1.349
	}
	return hScale * stdDev
}

// From returns the kernel density estimate for s.
func (k KDE) From(s Sample) *KDEDist {
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) {
		// Degenerate sample (one point, or all equal).
		h = 1
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	return &KDEDist{NormalDist{0, h}, s.Xs, min, max}
}

// KDEDist is a kernel density estimate constructed by KDE.From.
type KDEDist struct {
	kernel   NormalDist
	xs       []float64
	min, max float64 // Support bounds
}

// Bandwidth returns the kernel bandwidth of the estimate.
func (d *KDEDist) Bandwidth() float64 {
	return d.kernel.Sigma
}

// y evaluates the unreflected density at x: the mean of the kernel
// shifted to each sample point.
func (d *KDEDist) y(x float64) float64 {
	txs := make([]float64, len(d.xs))
	for i, xi := range d.xs {
		txs[i] = x - xi
	}
	return Mean(d.kernel.PDFEach(txs))
}

// PDF returns the estimated density at x.
func (d *KDEDist) PDF(x float64) float64 {
	if len(d.xs) == 0 || x < d.min || x >= d.max {
		return 0
	}
	p := d.y(x)
	if !math.IsInf(d.min, -1) {
		p += d.y(2*d.min - x)
	}
	if !math.IsInf(d.max, 1) {
		p += d.y(2*d.max - x)
	}
	return p
}

// Bounds returns the range over which the estimate is worth
// evaluating: the sample range widened by three bandwidths and
// clipped to the support.
func (d *KDEDist) Bounds() (low, high float64) {
	low, high = Bounds(d.xs)
	h := 3 * d.kernel.Sigma
	return math.Max(low-h, d.min), math.Min(high+h, d.max)
}

// Curve evaluates the PDF at n evenly spaced points across Bounds and
// returns the points and densities.
func (d *KDEDist) Curve(n int) (xs, ys []float64) {
	if n < 2 {
		panic("Curve needs at least two points")
	}
	lo, hi := d.Bounds()
	xs, ys = make([]float64, n), make([]float64, n)
	for i := range xs {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		xs[i], ys[i] = x, d.PDF(x)
	}
	return
}
