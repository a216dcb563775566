package lighthouses

import (
	"fmt"
	"math"

	"github.com/faiface/pixel"
	"github.com/pkg/errors"
)

// DarkArea is the area of the plane, outside all disks, that the emitting
// lighthouse never lights.
type DarkArea struct {
	// Value is +Inf when Unbounded.
	Value     float64
	Unbounded bool

	// Intercept is where the winning ray crosses the axis from the placement
	// center through the target, and Nugget the distance from there to the
	// tangent point. Both are zero when the area is not the result of a
	// bounded evaluation.
	Intercept pixel.Vec
	Nugget    float64
}

// UnboundedArea is the dark area of a ray that never turns back toward the
// target's axis.
func UnboundedArea() DarkArea {
	return DarkArea{Value: math.Inf(1), Unbounded: true}
}

func (d DarkArea) Bounded() bool {
	return !d.Unbounded
}

func (d DarkArea) String() string {
	if d.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%.9g", d.Value)
}

// Evaluate turns the winning ray of ill into a dark area. The ray is
// expressed in the target's frame first, where the target sits on the
// horizontal axis through the placement center.
func Evaluate(layout *Layout, ill *Illumination) (DarkArea, error) {
	if layout == nil || ill == nil {
		return DarkArea{}, errors.Wrap(ErrInvalidArgument, "nothing to evaluate")
	}
	pc := layout.PlacementCenter
	turn := Aperture(layout.N) * float64(ill.Target)
	source := Rotate(pc, ill.Winner.Source, -turn)
	tangent := Rotate(pc, ill.Winner.Tangent, -turn)

	if source.Y <= tangent.Y {
		return UnboundedArea(), nil
	}
	x0, err := XIntercept(pixel.L(source, tangent), pc.Y)
	if err != nil {
		return DarkArea{}, err
	}
	intercept := pixel.V(x0, pc.Y)
	nugget, err := Distance(intercept, tangent)
	if err != nil {
		return DarkArea{}, err
	}
	return DarkArea{
		Value:     darkness(layout.N, nugget),
		Intercept: Rotate(pc, intercept, turn),
		Nugget:    nugget,
	}, nil
}

// darkness is the area left dark around all n lighthouses when the two rays
// grazing each disk meet nugget away from their tangent points: n kites of
// area nugget less the disk sectors they cover.
func darkness(n int, nugget float64) float64 {
	return float64(n) * (nugget - math.Atan(nugget))
}

// Theorem is the closed-form dark area of n center-sourced lighthouses:
// zero for one lighthouse, unbounded (+Inf) for an even count.
func Theorem(n int) (float64, error) {
	switch {
	case n < 1:
		return math.NaN(), errors.Wrapf(ErrInvalidArgument, "need at least one lighthouse, got %d", n)
	case n == 1:
		return 0, nil
	case n%2 == 0:
		return math.Inf(1), nil
	}
	nf := float64(n)
	cos := math.Cos(math.Pi / (2 * nf))
	sin := math.Sin(math.Pi / nf)
	x := (math.Sqrt(4*nf*nf*cos*cos-1) + 2*nf*nf*sin*cos*cos) / (nf*nf*sin*sin - 1)
	return darkness(n, x), nil
}

// Run builds the layout for n, searches it with the configured strategy and
// evaluates the dark area.
func Run(n int, opts ...Option) (*Report, error) {
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	layout, err := NewLayout(n, cfg.Center, opts...)
	if err != nil {
		return nil, err
	}
	report := &Report{Layout: layout}
	if n == 1 {
		return report, nil
	}

	ill, err := Search(layout, cfg.Strategy, opts...)
	if cfg.Strategy.UnboundedAt(n) {
		if err != nil && !IsKind(err, ErrNoValidIllumination) {
			return nil, err
		}
		report.Illumination = ill
		report.DarkArea = UnboundedArea()
		return report, nil
	}
	if err != nil {
		return nil, err
	}
	report.Illumination = ill
	report.DarkArea, err = Evaluate(layout, ill)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: N=%d", cfg.Strategy.Name(), n)
	}
	return report, nil
}
