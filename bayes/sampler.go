// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults for the zero fields of a Sampler.
const (
	DefaultDraws  = 1000
	DefaultTune   = 1000
	DefaultChains = 4
	DefaultStep   = 0.1
)

// targetAcceptance is the per-coordinate acceptance rate that tuning
// steers each proposal scale toward.
const targetAcceptance = 0.44

// Sampler is a component-wise random-walk Metropolis sampler. Each
// chain runs in its own goroutine with its own random source, so a
// fixed Seed gives reproducible traces.
//
// The zero value samples 4 chains of 1000 draws after 1000 tuning
// iterations.
type Sampler struct {
	Draws  int
	Tune   int // < 0 disables tuning
	Chains int
	Seed   uint64

	// Step is the initial proposal standard deviation for every
	// parameter. Tuning adapts it per parameter.
	Step float64

	// Log, if non-nil, receives per-chain progress.
	Log *zap.SugaredLogger
}

func (s Sampler) withDefaults() Sampler {
	if s.Draws <= 0 {
		s.Draws = DefaultDraws
	}
	if s.Tune < 0 {
		s.Tune = 0
	} else if s.Tune == 0 {
		s.Tune = DefaultTune
	}
	if s.Chains <= 0 {
		s.Chains = DefaultChains
	}
	if s.Step <= 0 {
		s.Step = DefaultStep
	}
	return s
}

// Sample draws from the posterior of m. If ctx is canceled before all
// chains finish, the returned error wraps ctx.Err().
func (s Sampler) Sample(ctx context.Context, m Model) (*Trace, error) {
	s = s.withDefaults()
	params := m.Params()

	chains := make([]chain, s.Chains)
	g, ctx := errgroup.WithContext(ctx)
	for c := range chains {
		c := c
		g.Go(func() error {
			src := rand.NewSource(s.Seed + uint64(c))
			ch, err := s.run(ctx, m, src)
			if err != nil {
				return fmt.Errorf("chain %d: %w", c, err)
			}
			chains[c] = ch
			if s.Log != nil {
				s.Log.Debugf("chain %d: acceptance %v, steps %v", c, ch.acceptance, ch.steps)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := &Trace{
		Params:     params,
		Chains:     s.Chains,
		Draws:      make([][]float64, len(params)),
		Acceptance: make([][]float64, s.Chains),
	}
	for p := range params {
		t.Draws[p] = make([]float64, 0, s.Chains*s.Draws)
	}
	for c, ch := range chains {
		for p := range params {
			t.Draws[p] = append(t.Draws[p], ch.draws[p]...)
		}
		t.Acceptance[c] = ch.acceptance
	}
	if s.Log != nil {
		s.Log.Infof("sampled %d chains x %d draws (%d tuning)", s.Chains, s.Draws, s.Tune)
	}
	return t, nil
}

type chain struct {
	draws      [][]float64 // [param][draw]
	acceptance []float64   // per param, over the kept draws
	steps      []float64   // tuned proposal scales
}

func (s Sampler) run(ctx context.Context, m Model, src rand.Source) (chain, error) {
	r := rand.New(src)
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	theta := m.Init(r)
	lp := m.LogPosterior(theta)
	if math.IsInf(lp, -1) || math.IsNaN(lp) {
		return chain{}, fmt.Errorf("initial point %v has log posterior %v", theta, lp)
	}

	k := len(theta)
	ch := chain{
		draws:      make([][]float64, k),
		acceptance: make([]float64, k),
		steps:      make([]float64, k),
	}
	for p := range ch.steps {
		ch.steps[p] = s.Step
		ch.draws[p] = make([]float64, 0, s.Draws)
	}
	accepted := make([]int, k)

	for it := 0; it < s.Tune+s.Draws; it++ {
		if it%64 == 0 {
			select {
			case <-ctx.Done():
				return chain{}, ctx.Err()
			default:
			}
		}
		tuning := it < s.Tune
		for p := 0; p < k; p++ {
			old := theta[p]
			theta[p] = old + ch.steps[p]*unit.Rand()
			nlp := m.LogPosterior(theta)
			ok := !math.IsInf(nlp, -1) && nlp-lp >= math.Log(r.Float64())
			if ok {
				lp = nlp
			} else {
				theta[p] = old
			}
			if tuning {
				a := 0.0
				if ok {
					a = 1
				}
				ch.steps[p] *= math.Exp((a - targetAcceptance) / math.Sqrt(float64(it+1)))
			} else if ok {
				accepted[p]++
			}
		}
		if !tuning {
			for p := 0; p < k; p++ {
				ch.draws[p] = append(ch.draws[p], theta[p])
			}
		}
	}
	for p := range accepted {
		ch.acceptance[p] = float64(accepted[p]) / float64(s.Draws)
	}
	return ch, nil
}
