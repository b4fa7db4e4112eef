// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// LogPDF returns the natural logarithm of PDF(x). It is -Inf
	// outside the support of the distribution.
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution.
var StdNormal = NormalDist{0, 1}

func (n NormalDist) uv() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64    { return n.uv().Prob(x) }
func (n NormalDist) LogPDF(x float64) float64 { return n.uv().LogProb(x) }
func (n NormalDist) CDF(x float64) float64    { return n.uv().CDF(x) }
func (n NormalDist) InvCDF(y float64) float64 { return n.uv().Quantile(y) }

// PDFEach returns PDF(xs[i]) for each i.
func (n NormalDist) PDFEach(xs []float64) []float64 {
	uv := n.uv()
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = uv.Prob(x)
	}
	return res
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// ExponentialDist is an exponential distribution with rate parameter
// Rate (often written λ). Its mean is 1/Rate.
type ExponentialDist struct {
	Rate float64
}

func (e ExponentialDist) uv() distuv.Exponential {
	return distuv.Exponential{Rate: e.Rate}
}

func (e ExponentialDist) PDF(x float64) float64 { return e.uv().Prob(x) }

func (e ExponentialDist) LogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return e.uv().LogProb(x)
}

func (e ExponentialDist) CDF(x float64) float64    { return e.uv().CDF(x) }
func (e ExponentialDist) InvCDF(y float64) float64 { return e.uv().Quantile(y) }

func (e ExponentialDist) Bounds() (float64, float64) {
	return 0, e.InvCDF(0.995)
}
