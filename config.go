package lighthouses

import (
	"runtime"

	"github.com/faiface/pixel"
	"github.com/jdeal-mediamath/clockwork"
	"github.com/pkg/errors"
)

const (
	// Radius of every lighthouse disk.
	Radius = 1.0

	// DefaultTolerance shrinks disks during obstruction scans so a ray that
	// grazes a disk up to rounding error is not reported as blocked.
	DefaultTolerance = 1e-9

	// MatchTolerance is the absolute-or-relative tolerance Sample.Matches is
	// usually called with.
	MatchTolerance = 1e-6
)

// Construction selects how lighthouse centers are placed on the circle.
type Construction int

const (
	// FixedBasis rotates center 0 by i*360/N for every i.
	FixedBasis Construction = iota
	// Incremental rotates the previous center by 360/N, accumulating
	// rounding error with i.
	Incremental
)

func (c Construction) String() string {
	switch c {
	case FixedBasis:
		return "fixed-basis"
	case Incremental:
		return "incremental"
	}
	return "unknown"
}

// ExhaustionPolicy decides what a chain search does when no candidate
// validates.
type ExhaustionPolicy int

const (
	// StrategyDefault defers to Strategy.Exhaustion.
	StrategyDefault ExhaustionPolicy = iota
	// RaiseOnExhaustion fails with ErrNoValidIllumination.
	RaiseOnExhaustion
	// BestEffort returns the last attempt with Illumination.Unresolved set.
	BestEffort
)

func (p ExhaustionPolicy) String() string {
	switch p {
	case StrategyDefault:
		return "strategy-default"
	case RaiseOnExhaustion:
		return "raise"
	case BestEffort:
		return "best-effort"
	}
	return "unknown"
}

// Config holds everything a run can be tuned with. Zero values are not
// meaningful; start from DefaultConfig.
type Config struct {
	Center       pixel.Vec
	Target       int
	Construction Construction
	Strategy     Strategy
	Exhaustion   ExhaustionPolicy
	Tolerance    float64
	Workers      int
	Clock        clockwork.Clock
}

// DefaultConfig places lighthouses around the origin, targets lighthouse 0
// and uses the center-sourced light model.
func DefaultConfig() Config {
	return Config{
		Center:       pixel.ZV,
		Target:       0,
		Construction: FixedBasis,
		Strategy:     CenterSourced{},
		Exhaustion:   StrategyDefault,
		Tolerance:    DefaultTolerance,
		Workers:      runtime.GOMAXPROCS(0),
		Clock:        clockwork.NewRealClock(),
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithCenter sets the placement center used by Run and Sweep.
func WithCenter(c pixel.Vec) Option {
	return func(cfg *Config) { cfg.Center = c }
}

// WithTarget makes lighthouse k the illuminated one.
func WithTarget(k int) Option {
	return func(cfg *Config) { cfg.Target = k }
}

func WithConstruction(c Construction) Option {
	return func(cfg *Config) { cfg.Construction = c }
}

func WithStrategy(s Strategy) Option {
	return func(cfg *Config) { cfg.Strategy = s }
}

// WithExhaustion overrides the strategy's own exhaustion policy.
func WithExhaustion(p ExhaustionPolicy) Option {
	return func(cfg *Config) { cfg.Exhaustion = p }
}

func WithTolerance(tol float64) Option {
	return func(cfg *Config) { cfg.Tolerance = tol }
}

// WithWorkers bounds the number of N values Sweep evaluates at once.
func WithWorkers(n int) Option {
	return func(cfg *Config) { cfg.Workers = n }
}

// WithClock replaces the clock Sweep times samples with.
func WithClock(c clockwork.Clock) Option {
	return func(cfg *Config) { cfg.Clock = c }
}

func configure(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !finite(cfg.Center) {
		return cfg, errors.Wrapf(ErrInvalidArgument, "placement center %v", cfg.Center)
	}
	if cfg.Strategy == nil {
		return cfg, errors.Wrap(ErrInvalidArgument, "nil strategy")
	}
	if !(cfg.Tolerance >= 0 && cfg.Tolerance < Radius) {
		return cfg, errors.Wrapf(ErrInvalidArgument, "tolerance %v outside [0, %v)", cfg.Tolerance, Radius)
	}
	if cfg.Construction != FixedBasis && cfg.Construction != Incremental {
		return cfg, errors.Wrapf(ErrInvalidArgument, "construction %d", cfg.Construction)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return cfg, nil
}
