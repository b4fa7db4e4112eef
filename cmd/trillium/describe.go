// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-trillium/stats"
	"github.com/spf13/cobra"
)

func (a *app) describeCmd() *cobra.Command {
	var sel selection
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "describe the distribution of a column or of numbers on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			xs, err := a.values(cmd, sel)
			if err != nil {
				return err
			}
			if len(xs) == 0 {
				return fmt.Errorf("no values")
			}
			s := stats.Sample{Xs: xs}
			s.Sort()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
			if len(s.Xs) > 1 {
				fmt.Fprintf(out, "  std dev %.6g  variance %.6g", s.StdDev(), s.Variance())
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out)

			// Quartiles and tails.
			labels := map[int]string{0: "min", 50: "median", 100: "max"}
			for _, p := range []int{0, 5, 25, 50, 75, 95, 100} {
				label, ok := labels[p]
				if !ok {
					label = fmt.Sprintf("%d%%ile", p)
				}
				fmt.Fprintf(out, "%8s %.6g\n", label, s.Quantile(float64(p)/100))
			}
			return nil
		},
	}
	sel.addFlags(cmd, "described")
	return cmd
}
