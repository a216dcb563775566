package lighthouses

import (
	"github.com/faiface/pixel"
	"github.com/pkg/errors"
)

// Attempt is one candidate the chain search tried.
type Attempt struct {
	Index   int // lighthouse the light came from
	Offset  int // steps counter-clockwise from the target
	Source  pixel.Vec
	Tangent pixel.Vec
	Valid   bool
	Reason  Reason
	Angle   float64
	Blocker int
}

// Illumination is the outcome of a chain search.
type Illumination struct {
	Strategy string
	Target   int
	Winner   Attempt
	// Attempts lists every candidate tried, in search order, winner last.
	Attempts []Attempt
	// Unresolved is set when no candidate validated and the search fell back
	// to its last attempt.
	Unresolved bool
}

// Rejected returns the attempts that did not validate.
func (ill *Illumination) Rejected() []Attempt {
	var out []Attempt
	for _, a := range ill.Attempts {
		if !a.Valid {
			out = append(out, a)
		}
	}
	return out
}

// Search walks the lighthouses counter-clockwise from the target, nearest
// first, and returns the first one whose grazing ray strategy accepts. Only
// the nearer half of the circle is tried.
//
// Options read: WithTarget, WithExhaustion, WithTolerance.
func Search(layout *Layout, strategy Strategy, opts ...Option) (*Illumination, error) {
	if layout == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil layout")
	}
	if strategy == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil strategy")
	}
	cfg, err := configure(append([]Option{WithStrategy(strategy)}, opts...))
	if err != nil {
		return nil, err
	}
	if cfg.Target < 0 || cfg.Target >= layout.N {
		return nil, errors.Wrapf(ErrInvalidArgument, "target %d outside 0..%d", cfg.Target, layout.N-1)
	}

	target := layout.At(cfg.Target)
	ill := &Illumination{
		Strategy: strategy.Name(),
		Target:   target.Index,
		Attempts: make([]Attempt, 0, layout.Candidates()),
	}
	for offset := 1; offset <= layout.Candidates(); offset++ {
		a, err := look(layout, strategy, target, offset, cfg.Tolerance)
		if err != nil {
			return nil, err
		}
		ill.Attempts = append(ill.Attempts, a)
		if a.Valid {
			ill.Winner = a
			return ill, nil
		}
		logf("%s: N=%d candidate %d rejected: %v", strategy.Name(), layout.N, a.Index, a.Reason)
	}

	policy := cfg.Exhaustion
	if policy == StrategyDefault {
		policy = strategy.Exhaustion()
	}
	if policy == BestEffort && len(ill.Attempts) > 0 {
		ill.Winner = ill.Attempts[len(ill.Attempts)-1]
		ill.Unresolved = true
		logf("%s: N=%d unresolved, falling back to candidate %d", strategy.Name(), layout.N, ill.Winner.Index)
		return ill, nil
	}
	return nil, errors.Wrapf(ErrNoValidIllumination, "%s: N=%d, target %d, %d candidates tried",
		strategy.Name(), layout.N, target.Index, len(ill.Attempts))
}
