// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bayes fits small Bayesian models by Markov chain Monte Carlo.
//
// The model of interest is a simple linear regression
//
//	α ~ Normal(0, 1)
//	β ~ Normal(1, 1)
//	γ ~ Exponential(1)
//	yᵢ ~ Normal(α + β·xᵢ, γ)
//
// sampled with a component-wise random-walk Metropolis sampler.
package bayes // import "github.com/aclements/go-trillium/bayes"

import (
	"fmt"
	"math"

	"github.com/aclements/go-trillium/stats"
	"golang.org/x/exp/rand"
)

// A Model is an unnormalized posterior density over a parameter vector.
type Model interface {
	// Params returns the parameter names, in the order used by
	// parameter vectors.
	Params() []string

	// LogPosterior returns the log of the unnormalized posterior
	// density at theta, or -Inf if theta is outside the support.
	LogPosterior(theta []float64) float64

	// Init returns a starting point with finite LogPosterior.
	Init(r *rand.Rand) []float64
}

// LinearModel is the regression Y ~ Normal(Alpha + Beta*X, Gamma).
type LinearModel struct {
	Alpha, Beta, Gamma stats.Dist
	X, Y               []float64
}

// NewLinearModel returns a LinearModel of y against x with the default
// priors α ~ N(0, 1), β ~ N(1, 1) and γ ~ Exp(1).
func NewLinearModel(x, y []float64) (*LinearModel, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("have %d x values but %d y values", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("no observations")
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			return nil, &stats.ValueError{Index: i, Value: math.NaN()}
		}
	}
	return &LinearModel{
		Alpha: stats.NormalDist{Mu: 0, Sigma: 1},
		Beta:  stats.NormalDist{Mu: 1, Sigma: 1},
		Gamma: stats.ExponentialDist{Rate: 1},
		X:     x,
		Y:     y,
	}, nil
}

func (m *LinearModel) Params() []string {
	return []string{"alpha", "beta", "gamma"}
}

func (m *LinearModel) LogPosterior(theta []float64) float64 {
	alpha, beta, gamma := theta[0], theta[1], theta[2]
	if !(gamma > 0) {
		return math.Inf(-1)
	}
	lp := m.Alpha.LogPDF(alpha) + m.Beta.LogPDF(beta) + m.Gamma.LogPDF(gamma)
	if math.IsInf(lp, -1) {
		return lp
	}
	for i, x := range m.X {
		lp += stats.NormalDist{Mu: alpha + beta*x, Sigma: gamma}.LogPDF(m.Y[i])
	}
	return lp
}

// Init draws each parameter from the middle half of its prior.
func (m *LinearModel) Init(r *rand.Rand) []float64 {
	draw := func(d stats.Dist) float64 {
		return d.InvCDF(0.25 + 0.5*r.Float64())
	}
	return []float64{draw(m.Alpha), draw(m.Beta), draw(m.Gamma)}
}
