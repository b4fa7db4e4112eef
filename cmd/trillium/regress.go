// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/aclements/go-trillium/bayes"
	"github.com/aclements/go-trillium/chart"
	"github.com/aclements/go-trillium/stats"
	"github.com/spf13/cobra"
)

func (a *app) regressCmd() *cobra.Command {
	var x, y, outDir string
	cmd := &cobra.Command{
		Use:   "regress",
		Short: "fit y ~ Normal(alpha + beta*x, gamma) by MCMC and summarize the posterior",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			if mass := a.v.GetFloat64(keyHDI); !(mass > 0 && mass <= 1) {
				return fmt.Errorf("%s must be in (0, 1], got %v", keyHDI, mass)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFrame()
			if err != nil {
				return err
			}
			xs, err := f.Floats(x)
			if err != nil {
				return err
			}
			ys, err := f.Floats(y)
			if err != nil {
				return err
			}
			xs, ys = completePairs(xs, ys)
			if skipped := f.Len() - len(xs); skipped > 0 {
				a.log.Warnf("ignoring %d rows with missing %s or %s", skipped, x, y)
			}

			m, err := bayes.NewLinearModel(xs, ys)
			if err != nil {
				return err
			}
			sampler := bayes.Sampler{
				Draws:  a.v.GetInt(keyDraws),
				Tune:   a.v.GetInt(keyTune),
				Chains: a.v.GetInt(keyChains),
				Seed:   a.v.GetUint64(keySeed),
				Log:    a.log.Named("sampler"),
			}
			trace, err := sampler.Sample(cmd.Context(), m)
			if err != nil {
				return err
			}
			mass := a.v.GetFloat64(keyHDI)
			if err := bayes.WriteSummary(cmd.OutOrStdout(), bayes.Summarize(trace, mass)); err != nil {
				return err
			}

			if outDir == "" {
				return nil
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, param := range trace.Params {
				s, err := trace.Sample(param)
				if err != nil {
					return err
				}
				var kde stats.KDE
				if param == "gamma" {
					kde.BoundaryMin, kde.BoundaryMax = 0, math.Inf(1)
				}
				p, err := chart.Posterior(param, s, mass, kde)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, param+".png")
				if err := chart.Save(p, path, 0, 0); err != nil {
					return err
				}
				a.log.Infof("wrote %s", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&x, "x", defaultX, "predictor column")
	cmd.Flags().StringVar(&y, "y", defaultY, "observed column")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory for posterior plots (default: no plots)")
	cmd.Flags().Uint64("seed", 0, "random seed")
	cmd.Flags().Int("draws", bayes.DefaultDraws, "draws per chain")
	cmd.Flags().Int("chains", bayes.DefaultChains, "number of chains")
	for key, flag := range map[string]string{keySeed: "seed", keyDraws: "draws", keyChains: "chains"} {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// completePairs returns the (x, y) pairs where neither value is NaN.
func completePairs(xs, ys []float64) (cx, cy []float64) {
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		cx = append(cx, xs[i])
		cy = append(cy, ys[i])
	}
	return
}
