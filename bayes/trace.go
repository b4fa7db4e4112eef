// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aclements/go-trillium/stats"
)

// DefaultHDI is the probability mass of the highest density intervals
// reported by Summarize callers that do not choose one.
const DefaultHDI = 0.94

// A Trace holds the post-tuning draws of every chain.
type Trace struct {
	Params []string
	Chains int

	// Draws[p] holds all draws of Params[p], chain after chain.
	Draws [][]float64

	// Acceptance[c][p] is the fraction of accepted proposals for
	// Params[p] in chain c.
	Acceptance [][]float64
}

// Sample returns the draws of the named parameter.
func (t *Trace) Sample(param string) (stats.Sample, error) {
	for i, p := range t.Params {
		if p == param {
			return stats.Sample{Xs: t.Draws[i]}, nil
		}
	}
	return stats.Sample{}, fmt.Errorf("no parameter %q in trace", param)
}

// Summary describes the marginal posterior of one parameter.
type Summary struct {
	Param           string
	Mean, SD        float64
	HDILow, HDIHigh float64
	HDIMass         float64
}

// Summarize returns the mean, standard deviation and mass-HDI of each
// parameter in t.
func Summarize(t *Trace, mass float64) []Summary {
	res := make([]Summary, len(t.Params))
	for i, p := range t.Params {
		s := stats.Sample{Xs: t.Draws[i]}
		lo, hi := s.HDI(mass)
		res[i] = Summary{
			Param:   p,
			Mean:    s.Mean(),
			SD:      s.StdDev(),
			HDILow:  lo,
			HDIHigh: hi,
			HDIMass: mass,
		}
	}
	return res
}

// WriteSummary writes sums as an aligned table.
func WriteSummary(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	if len(sums) > 0 {
		pct := sums[0].HDIMass * 100
		fmt.Fprintf(tw, "\tmean\tsd\thdi_%g%%\thdi_%g%%\t\n", (100-pct)/2, 100-(100-pct)/2)
	}
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t\n", s.Param, s.Mean, s.SD, s.HDILow, s.HDIHigh)
	}
	return tw.Flush()
}
