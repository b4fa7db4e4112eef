// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the sample statistics used by the trillium
// tools: order-based group means, sample summaries, a few continuous
// distributions and kernel density estimation.
package stats // import "github.com/aclements/go-trillium/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
