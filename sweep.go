package lighthouses

import (
	"context"
	"math"
	"time"

	"github.com/gonum/floats"
	"github.com/gonum/stat"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Sample pairs the computed dark area for one N with the closed form.
// Theorem describes the center-sourced model; for the other models it is
// only a reference line.
type Sample struct {
	N        int
	Computed DarkArea
	Theorem  float64
	Elapsed  time.Duration
	Err      error
}

// AbsError is |Computed - Theorem|, zero when both are unbounded and +Inf
// when exactly one is.
func (s Sample) AbsError() float64 {
	thInf := math.IsInf(s.Theorem, 1)
	switch {
	case s.Err != nil:
		return math.NaN()
	case s.Computed.Unbounded && thInf:
		return 0
	case s.Computed.Unbounded || thInf:
		return math.Inf(1)
	}
	return math.Abs(s.Computed.Value - s.Theorem)
}

// Matches reports whether the computed area agrees with the closed form
// within tol, absolute or relative.
func (s Sample) Matches(tol float64) bool {
	if s.Err != nil {
		return false
	}
	if math.IsInf(s.Theorem, 1) || s.Computed.Unbounded {
		return math.IsInf(s.Theorem, 1) && s.Computed.Unbounded
	}
	return floats.EqualWithinAbsOrRel(s.Computed.Value, s.Theorem, tol, tol)
}

// Sweep runs every N in ns on up to Config.Workers goroutines. Samples come
// back in the order of ns. A failing N is recorded in its Sample and does
// not stop the others; only ctx does.
func Sweep(ctx context.Context, ns []int, opts ...Option) ([]Sample, error) {
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, len(ns))

	start := cfg.Clock.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples[i] = measure(cfg, n, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "sweep over %d values", len(ns))
	}
	logf("%s: swept %d values in %v", cfg.Strategy.Name(), len(ns), cfg.Clock.Now().Sub(start))
	return samples, nil
}

func measure(cfg Config, n int, opts []Option) Sample {
	s := Sample{N: n, Theorem: math.NaN()}
	begin := cfg.Clock.Now()
	report, err := Run(n, opts...)
	s.Elapsed = cfg.Clock.Now().Sub(begin)
	if err != nil {
		logf("%s: N=%d failed: %v", cfg.Strategy.Name(), n, err)
		s.Err = err
		return s
	}
	s.Computed = report.DarkArea
	s.Theorem, _ = Theorem(n)
	return s
}

// Summary condenses a sweep.
type Summary struct {
	Count   int // samples that evaluated
	Failed  int
	Matched int

	// Over samples where both values are finite.
	MeanAbsError float64
	MaxAbsError  float64
}

// Summarize counts matches within tol and averages the finite errors.
func Summarize(samples []Sample, tol float64) Summary {
	var sum Summary
	var errs []float64
	for _, s := range samples {
		if s.Err != nil {
			sum.Failed++
			continue
		}
		sum.Count++
		if s.Matches(tol) {
			sum.Matched++
		}
		if s.Computed.Unbounded || math.IsInf(s.Theorem, 1) {
			continue
		}
		errs = append(errs, s.AbsError())
	}
	if len(errs) > 0 {
		sum.MeanAbsError = stat.Mean(errs, nil)
		sum.MaxAbsError = floats.Max(errs)
	}
	return sum
}

// Increases returns each N whose bounded dark area is larger than that of
// the sample right before it.
func Increases(samples []Sample) []int {
	var out []int
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev.Err != nil || cur.Err != nil || !prev.Computed.Bounded() || !cur.Computed.Bounded() {
			continue
		}
		if prev.Computed.Value < cur.Computed.Value {
			out = append(out, cur.N)
		}
	}
	return out
}
