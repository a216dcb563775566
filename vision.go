package lighthouses

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/pkg/errors"
)

// Tangent returns the point where a ray leaving source grazes the unit disk
// centered at target. Of the two grazing rays it picks the one obtained by
// turning the source->target direction counter-clockwise.
//
// The source must lie outside the disk.
func Tangent(source, target pixel.Vec) (pixel.Vec, error) {
	d, err := Distance(source, target)
	if err != nil {
		return pixel.ZV, err
	}
	if d < Radius {
		return pixel.ZV, errors.Wrapf(ErrDomain, "source %v is inside the disk at %v (distance %.6g)", source, target, d)
	}
	graze := math.Asin(Radius / d)
	dir := Rotate(source, target, graze).Sub(source)
	// dir has length d; the tangent point sits sqrt(d²-r²) along it.
	return source.Add(dir.Scaled(math.Sqrt(d*d-Radius*Radius) / d)), nil
}

// look solves the tangent from the strategy's emitter on candidate to the
// target disk and asks the strategy whether the ray counts.
func look(layout *Layout, strategy Strategy, target Lighthouse, offset int, tol float64) (Attempt, error) {
	candidate := layout.At(target.Index + offset)
	source := strategy.Emitter(candidate)
	tangent, err := Tangent(source, target.Center)
	if err != nil {
		return Attempt{}, errors.Wrapf(err, "%s: candidate %d", strategy.Name(), candidate.Index)
	}
	verdict, err := strategy.Judge(Candidate{
		N:               layout.N,
		Offset:          offset,
		Source:          source,
		Tangent:         tangent,
		Lighthouse:      candidate,
		Target:          target,
		PlacementCenter: layout.PlacementCenter,
		Between:         layout.Span(target.Index+1, offset-1),
		Tolerance:       tol,
	})
	if err != nil {
		return Attempt{}, errors.Wrapf(err, "%s: candidate %d", strategy.Name(), candidate.Index)
	}
	return Attempt{
		Index:   candidate.Index,
		Offset:  offset,
		Source:  source,
		Tangent: tangent,
		Valid:   verdict.Valid,
		Reason:  verdict.Reason,
		Angle:   verdict.Angle,
		Blocker: verdict.Blocker,
	}, nil
}
