// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// A ValueError reports an input value that has no place in an
// ordering, such as NaN.
type ValueError struct {
	// Index is the position of the value in the caller's slice.
	Index int
	Value float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("stats: value %v at index %d is not ordered", e.Value, e.Index)
}

// Averages returns the means of consecutive triplets of the sorted
// values of xs. If len(xs) is not a multiple of three, the last mean
// is taken over the one or two remaining values.
//
// For example, Averages([]float64{6, 1, 5, 2, 4, 3}) is [2 5].
//
// xs is not modified. Averages returns a *ValueError if xs contains
// NaN. Infinities are ordered normally and propagate into the means.
func Averages(xs []float64) ([]float64, error) {
	return GroupMeans(xs, 3)
}

// GroupMeans sorts a copy of xs, splits it into consecutive groups of
// size values and returns the mean of each group in ascending order.
// The final group holds the remainder when len(xs) is not a multiple
// of size. The result has ceil(len(xs)/size) elements.
//
// GroupMeans panics if size < 1.
func GroupMeans(xs []float64, size int) ([]float64, error) {
	if size < 1 {
		panic(fmt.Sprintf("group size %d must be positive", size))
	}
	for i, x := range xs {
		if math.IsNaN(x) {
			return nil, &ValueError{i, x}
		}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	means := make([]float64, 0, (len(sorted)+size-1)/size)
	for lo := 0; lo < len(sorted); lo += size {
		hi := lo + size
		if hi > len(sorted) {
			hi = len(sorted)
		}
		means = append(means, stat.Mean(sorted[lo:hi], nil))
	}
	return means, nil
}
