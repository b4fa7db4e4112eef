// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-trillium/stats"
	"github.com/aclements/go-trillium/trillium"
	"github.com/spf13/cobra"
)

// selection names the values a command works on: a column of the data
// file, optionally restricted to one location, or numbers on stdin.
type selection struct {
	column   string
	location string
}

func (s *selection) addFlags(cmd *cobra.Command, what string) {
	cmd.Flags().StringVar(&s.column, "column", "", what+" column (default: read numbers from stdin)")
	cmd.Flags().StringVar(&s.location, "location", "", "restrict to one location, by name or site code")
}

// values returns the selected, non-NaN values.
func (a *app) values(cmd *cobra.Command, s selection) ([]float64, error) {
	if s.column == "" {
		if s.location != "" {
			return nil, fmt.Errorf("--location requires --column")
		}
		return readInput(cmd.InOrStdin())
	}

	f, err := a.loadFrame()
	if err != nil {
		return nil, err
	}
	if s.location != "" {
		loc := s.location
		if name, ok := trillium.LocationName(loc); ok {
			loc = name
		} else if _, ok := trillium.SiteCode(loc); !ok {
			return nil, fmt.Errorf("unknown location %q", s.location)
		}
		if f, err = f.Where(trillium.LocationColumn, loc); err != nil {
			return nil, err
		}
	}
	col, err := f.Floats(s.column)
	if err != nil {
		return nil, err
	}
	xs, dropped := trillium.DropNaN(col)
	if dropped > 0 {
		a.log.Warnf("%s: ignoring %d missing values", s.column, dropped)
	}
	return xs, nil
}

// readInput reads newline-separated numbers, skipping blank lines.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, value)
	}
	return xs, scanner.Err()
}

func (a *app) averagesCmd() *cobra.Command {
	var sel selection
	var size int
	cmd := &cobra.Command{
		Use:   "averages",
		Short: "print the means of consecutive triplets of the sorted values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			xs, err := a.values(cmd, sel)
			if err != nil {
				return err
			}
			means, err := stats.GroupMeans(xs, size)
			if err != nil {
				return err
			}
			a.log.Debugf("%d values in %d groups of %d", len(xs), len(means), size)
			out := cmd.OutOrStdout()
			for _, m := range means {
				fmt.Fprintln(out, strconv.FormatFloat(m, 'g', -1, 64))
			}
			return nil
		},
	}
	sel.addFlags(cmd, "averaged")
	cmd.Flags().IntVar(&size, "size", 3, "group size")
	cmd.PreRunE = func(*cobra.Command, []string) error {
		if size < 1 {
			return fmt.Errorf("--size must be positive, got %d", size)
		}
		return nil
	}
	return cmd
}
