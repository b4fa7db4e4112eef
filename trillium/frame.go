// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trillium holds the seed chemistry data set of Miller, Kwit
// and Whitehead (2021): per-sample metadata (distribution status,
// species, seed removal probability and collection site) followed by
// the LC-MS peak areas of the identified compounds.
package trillium // import "github.com/aclements/go-trillium/trillium"

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Column names added or used by the Frame methods.
const (
	StatusColumn   = "Status"
	SiteColumn     = "Site"
	LocationColumn = "Location"
	MaxColumn      = "Max"
)

// ErrNoColumn is returned (wrapped) when a named column does not exist
// or does not have the requested type.
var ErrNoColumn = errors.New("no such column")

// A Frame is a small column-oriented table. String columns hold the
// metadata; float columns hold the compound measurements and derived
// values. Missing measurements are NaN.
//
// String columns always precede float columns in column order, so a
// written Frame keeps its metadata in the leading columns.
type Frame struct {
	n         int
	names     []string
	strs      map[string][]string
	nums      map[string][]float64
	compounds []string
}

func newFrame(n int) *Frame {
	return &Frame{
		n:    n,
		strs: make(map[string][]string),
		nums: make(map[string][]float64),
	}
}

// Len returns the number of rows in f.
func (f *Frame) Len() int {
	return f.n
}

// Columns returns the column names of f in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Compounds returns the names of the measured compound columns.
func (f *Frame) Compounds() []string {
	return append([]string(nil), f.compounds...)
}

func (f *Frame) has(name string) bool {
	_, s := f.strs[name]
	_, n := f.nums[name]
	return s || n
}

func (f *Frame) addStrings(name string, col []string) error {
	if f.has(name) {
		return fmt.Errorf("duplicate column %q", name)
	}
	f.names = slices.Insert(f.names, len(f.strs), name)
	f.strs[name] = col
	return nil
}

func (f *Frame) addFloats(name string, col []float64) error {
	if f.has(name) {
		return fmt.Errorf("duplicate column %q", name)
	}
	f.names = append(f.names, name)
	f.nums[name] = col
	return nil
}

// Strings returns the string column name. The returned slice must not
// be modified.
func (f *Frame) Strings(name string) ([]string, error) {
	col, ok := f.strs[name]
	if !ok {
		return nil, fmt.Errorf("string column %q: %w", name, ErrNoColumn)
	}
	return col, nil
}

// Floats returns the float column name. The returned slice must not
// be modified.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, ok := f.nums[name]
	if !ok {
		return nil, fmt.Errorf("float column %q: %w", name, ErrNoColumn)
	}
	return col, nil
}

// rows returns a new Frame holding the given rows of f, in order.
func (f *Frame) rows(idx []int) *Frame {
	sub := newFrame(len(idx))
	sub.names = append(sub.names, f.names...)
	sub.compounds = f.compounds
	for name, col := range f.strs {
		nc := make([]string, len(idx))
		for i, r := range idx {
			nc[i] = col[r]
		}
		sub.strs[name] = nc
	}
	for name, col := range f.nums {
		nc := make([]float64, len(idx))
		for i, r := range idx {
			nc[i] = col[r]
		}
		sub.nums[name] = nc
	}
	return sub
}

// Where returns the rows of f whose string column equals value.
func (f *Frame) Where(column, value string) (*Frame, error) {
	col, err := f.Strings(column)
	if err != nil {
		return nil, err
	}
	var idx []int
	for i, v := range col {
		if v == value {
			idx = append(idx, i)
		}
	}
	return f.rows(idx), nil
}

// GroupBy splits f by the values of a string column. keys lists the
// distinct values in the order they first appear.
func (f *Frame) GroupBy(column string) (keys []string, groups map[string]*Frame, err error) {
	col, err := f.Strings(column)
	if err != nil {
		return nil, nil, err
	}
	idx := make(map[string][]int)
	for i, v := range col {
		if _, ok := idx[v]; !ok {
			keys = append(keys, v)
		}
		idx[v] = append(idx[v], i)
	}
	groups = make(map[string]*Frame, len(keys))
	for _, k := range keys {
		groups[k] = f.rows(idx[k])
	}
	return keys, groups, nil
}

// AddLocation adds LocationColumn, holding the full name of the site
// coded in siteColumn, after the existing string columns. It fails on
// the first unknown site code.
func (f *Frame) AddLocation(siteColumn string) error {
	sites, err := f.Strings(siteColumn)
	if err != nil {
		return err
	}
	locs := make([]string, len(sites))
	for i, code := range sites {
		name, ok := LocationName(code)
		if !ok {
			return fmt.Errorf("row %d: unknown site code %q", i+1, code)
		}
		locs[i] = name
	}
	return f.addStrings(LocationColumn, locs)
}

// AddRowMax adds MaxColumn, the largest compound measurement of each
// row. Missing measurements are skipped; a row with none is NaN.
func (f *Frame) AddRowMax() error {
	max := make([]float64, f.n)
	row := make([]float64, 0, len(f.compounds))
	for i := range max {
		row = row[:0]
		for _, c := range f.compounds {
			if v := f.nums[c][i]; !math.IsNaN(v) {
				row = append(row, v)
			}
		}
		if len(row) == 0 {
			max[i] = math.NaN()
			continue
		}
		max[i] = floats.Max(row)
	}
	return f.addFloats(MaxColumn, max)
}

// DropNaN returns the non-NaN values of xs and how many were dropped.
func DropNaN(xs []float64) (kept []float64, dropped int) {
	kept = make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsNaN(x) {
			dropped++
			continue
		}
		kept = append(kept, x)
	}
	return kept, dropped
}
