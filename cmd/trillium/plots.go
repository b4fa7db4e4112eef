// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-trillium/chart"
	"github.com/aclements/go-trillium/trillium"
	"github.com/spf13/cobra"
)

const (
	defaultY = "Citrulline"
	defaultX = "S-Adenosyl-L-methioninamine"
)

func (a *app) histCmd() *cobra.Command {
	var column, output string
	var bins int
	cmd := &cobra.Command{
		Use:   "hist",
		Short: "plot the histograms of a column for each location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFrame()
			if err != nil {
				return err
			}
			keys, groups, err := f.GroupBy(trillium.LocationColumn)
			if err != nil {
				return err
			}
			var gs []chart.Group
			for _, k := range keys {
				xs, err := groups[k].Floats(column)
				if err != nil {
					return err
				}
				gs = append(gs, chart.Group{Name: k, Values: xs})
			}
			p, err := chart.Histograms(gs, bins, column+" by location", column)
			if err != nil {
				return err
			}
			if err := chart.Save(p, output, 0, 0); err != nil {
				return err
			}
			a.log.Infof("wrote %s", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&column, "column", defaultY, "column to plot")
	cmd.Flags().StringVarP(&output, "output", "o", "hist.png", "output image")
	cmd.Flags().IntVar(&bins, "bins", chart.DefaultBins, "number of bins")
	return cmd
}

func (a *app) scatterCmd() *cobra.Command {
	var x, y, output string
	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "scatter plot of two columns, colored by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFrame()
			if err != nil {
				return err
			}
			keys, groups, err := f.GroupBy(a.v.GetString(keyStatusColumn))
			if err != nil {
				return err
			}
			var gs []chart.XYGroup
			for _, k := range keys {
				xs, err := groups[k].Floats(x)
				if err != nil {
					return err
				}
				ys, err := groups[k].Floats(y)
				if err != nil {
					return err
				}
				gs = append(gs, chart.XYGroup{Name: k, X: xs, Y: ys})
			}
			p, err := chart.Scatter(gs, y+" vs. "+x, x, y)
			if err != nil {
				return err
			}
			if err := chart.Save(p, output, 0, 0); err != nil {
				return err
			}
			a.log.Infof("wrote %s", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&x, "x", defaultX, "column on the x axis")
	cmd.Flags().StringVar(&y, "y", defaultY, "column on the y axis")
	cmd.Flags().StringVarP(&output, "output", "o", "scatter.png", "output image")
	return cmd
}
