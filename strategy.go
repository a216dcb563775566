package lighthouses

import (
	"strings"

	"github.com/faiface/pixel"
	"github.com/pkg/errors"
)

// Reason explains a verdict.
type Reason int

const (
	Accepted Reason = iota
	// RejectAperture: the grazing ray leaves the source outside half the
	// aperture measured from the placement center.
	RejectAperture
	// RejectAngle: the ray would have to bend back through the source disk.
	RejectAngle
	// RejectObstructed: another disk sits on the ray.
	RejectObstructed
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectAperture:
		return "outside aperture"
	case RejectAngle:
		return "bends into source"
	case RejectObstructed:
		return "obstructed"
	}
	return "unknown"
}

// Candidate is everything a strategy may look at when judging one source
// lighthouse.
type Candidate struct {
	N      int
	Offset int // steps counter-clockwise from the target

	Source  pixel.Vec // where the light leaves the candidate
	Tangent pixel.Vec // where it grazes the target

	Lighthouse      Lighthouse
	Target          Lighthouse
	PlacementCenter pixel.Vec

	// Between holds the lighthouses strictly between target and candidate,
	// nearest to the target first.
	Between []Lighthouse

	Tolerance float64
}

// Verdict is a strategy's decision about a Candidate.
type Verdict struct {
	Valid   bool
	Reason  Reason
	Angle   float64 // the angle the strategy tested, in degrees
	Blocker int     // index of the blocking lighthouse, or -1
}

func accept(angle float64) Verdict {
	return Verdict{Valid: true, Reason: Accepted, Angle: angle, Blocker: -1}
}

func reject(reason Reason, angle float64, blocker int) Verdict {
	return Verdict{Reason: reason, Angle: angle, Blocker: blocker}
}

// Strategy is a light-source model. It picks the point light leaves a
// candidate from and decides whether the grazing ray from there counts.
type Strategy interface {
	Name() string
	Emitter(l Lighthouse) pixel.Vec
	Judge(c Candidate) (Verdict, error)
	Exhaustion() ExhaustionPolicy
	// UnboundedAt reports layouts whose dark area the model declares
	// unbounded without searching.
	UnboundedAt(n int) bool
}

// CenterSourced emits from the candidate's center. A ray is valid when it
// leaves within 180/N degrees of the line to the placement center.
type CenterSourced struct{}

func (CenterSourced) Name() string { return "center-sourced" }

func (CenterSourced) Emitter(l Lighthouse) pixel.Vec { return l.Center }

func (CenterSourced) Judge(c Candidate) (Verdict, error) {
	angle := SignedAngleDegrees(c.PlacementCenter, c.Source, c.Tangent)
	if angle > 180/float64(c.N) {
		return reject(RejectAperture, angle, -1), nil
	}
	return accept(angle), nil
}

func (CenterSourced) Exhaustion() ExhaustionPolicy { return RaiseOnExhaustion }

func (CenterSourced) UnboundedAt(n int) bool { return false }

// EdgeGated emits from the left cone edge. The ray must not bend back into
// the source (angle tangent-edge-center of at least 90 degrees) and must
// clear every lighthouse between source and target.
type EdgeGated struct{}

func (EdgeGated) Name() string { return "edge-gated" }

func (EdgeGated) Emitter(l Lighthouse) pixel.Vec { return l.Left }

func (EdgeGated) Judge(c Candidate) (Verdict, error) {
	angle := SignedAngleDegrees(c.Tangent, c.Source, c.Lighthouse.Center)
	if angle < 90 {
		return reject(RejectAngle, angle, -1), nil
	}
	blocker, err := closestBlocker(pixel.L(c.Source, c.Tangent), c.Between, c.Tolerance)
	if err != nil {
		return Verdict{}, err
	}
	if blocker >= 0 {
		return reject(RejectObstructed, angle, blocker), nil
	}
	return accept(angle), nil
}

func (EdgeGated) Exhaustion() ExhaustionPolicy { return RaiseOnExhaustion }

func (EdgeGated) UnboundedAt(n int) bool { return n == 2 }

// EdgeScan emits from the left cone edge and only checks obstruction, against
// the target and every lighthouse in between.
type EdgeScan struct{}

func (EdgeScan) Name() string { return "edge-scan" }

func (EdgeScan) Emitter(l Lighthouse) pixel.Vec { return l.Left }

func (EdgeScan) Judge(c Candidate) (Verdict, error) {
	scan := make([]Lighthouse, 0, len(c.Between)+1)
	scan = append(scan, c.Target)
	scan = append(scan, c.Between...)
	blocker, err := closestBlocker(pixel.L(c.Source, c.Tangent), scan, c.Tolerance)
	if err != nil {
		return Verdict{}, err
	}
	if blocker >= 0 {
		return reject(RejectObstructed, 0, blocker), nil
	}
	return accept(0), nil
}

func (EdgeScan) Exhaustion() ExhaustionPolicy { return BestEffort }

func (EdgeScan) UnboundedAt(n int) bool { return n == 2 }

// StrategyByName maps "center", "edge-gated" and "edge-scan" (or the full
// strategy names) to a Strategy.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "center", "center-sourced", "a":
		return CenterSourced{}, nil
	case "edge-gated", "gated", "b":
		return EdgeGated{}, nil
	case "edge-scan", "scan", "c":
		return EdgeScan{}, nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown strategy %q", name)
}
