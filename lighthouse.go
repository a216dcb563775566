// Package lighthouses computes how much of the plane stays dark when N unit
// lighthouses on a circle of radius N each light their neighbour's shadow
// side. Three light-source models are provided, and Sweep compares them
// against the closed form over many N.
package lighthouses

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/pkg/errors"
)

// Lighthouse is one opaque unit disk on the placement circle together with
// the edge points of its illumination cone.
type Lighthouse struct {
	Index  int
	Center pixel.Vec

	// Middle lies on the segment from Center toward the placement center,
	// on the disk boundary. Left and Right are Middle turned by half the
	// cone angle either way around Center.
	Left   pixel.Vec
	Middle pixel.Vec
	Right  pixel.Vec
}

// Disk is the area the lighthouse blocks.
func (l Lighthouse) Disk() pixel.Circle {
	return pixel.Circle{Center: l.Center, Radius: Radius}
}

// Cone returns the two rays bounding the illumination cone.
func (l Lighthouse) Cone() (left, right pixel.Line) {
	return pixel.L(l.Center, l.Left), pixel.L(l.Center, l.Right)
}

// Layout is N lighthouses spaced evenly, counter-clockwise, on a circle of
// radius N. It is never modified after NewLayout returns.
type Layout struct {
	N               int
	PlacementCenter pixel.Vec
	Construction    Construction
	Lighthouses     []Lighthouse
}

// NewLayout places n lighthouses around center. Only WithConstruction is
// read from opts.
func NewLayout(n int, center pixel.Vec, opts ...Option) (*Layout, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "need at least one lighthouse, got %d", n)
	}
	cfg, err := configure(append([]Option{WithCenter(center)}, opts...))
	if err != nil {
		return nil, err
	}

	centers := placeCenters(n, center, cfg.Construction)
	layout := &Layout{
		N:               n,
		PlacementCenter: center,
		Construction:    cfg.Construction,
		Lighthouses:     make([]Lighthouse, n),
	}
	for i, c := range centers {
		left, middle, right := conePoints(n, c, center)
		layout.Lighthouses[i] = Lighthouse{
			Index:  i,
			Center: c,
			Left:   left,
			Middle: middle,
			Right:  right,
		}
	}
	return layout, nil
}

func placeCenters(n int, pc pixel.Vec, mode Construction) []pixel.Vec {
	alpha := Aperture(n)
	centers := make([]pixel.Vec, n)
	centers[0] = pc.Add(pixel.V(float64(n), 0))
	for i := 1; i < n; i++ {
		if mode == Incremental {
			centers[i] = Rotate(pc, centers[i-1], alpha)
			continue
		}
		centers[i] = Rotate(pc, centers[0], alpha*float64(i))
	}
	return centers
}

func conePoints(n int, center, pc pixel.Vec) (left, middle, right pixel.Vec) {
	nf := float64(n)
	middle = pixel.V(
		((nf-1)*center.X+pc.X)/nf,
		((nf-1)*center.Y+pc.Y)/nf,
	)
	half := Aperture(n) / 2
	return Rotate(center, middle, half), middle, Rotate(center, middle, -half)
}

// Aperture is the angle in radians between neighbouring lighthouses, which
// is also the width of each illumination cone.
func Aperture(n int) float64 {
	return 2 * math.Pi / float64(n)
}

// At returns lighthouse i, wrapping i around the circle in both directions.
func (l *Layout) At(i int) Lighthouse {
	i %= l.N
	if i < 0 {
		i += l.N
	}
	return l.Lighthouses[i]
}

// Target returns lighthouse 0, the one the default search illuminates.
func (l *Layout) Target() Lighthouse {
	return l.Lighthouses[0]
}

// Span returns count lighthouses counter-clockwise from index start.
func (l *Layout) Span(start, count int) []Lighthouse {
	if count <= 0 {
		return nil
	}
	span := make([]Lighthouse, 0, count)
	for i := 0; i < count; i++ {
		span = append(span, l.At(start+i))
	}
	return span
}

// Candidates is the number of lighthouses a chain search tries: the nearer
// half of the circle on one side of the target.
func (l *Layout) Candidates() int {
	return l.N / 2
}

// Disks returns the disks of every lighthouse, in index order.
func (l *Layout) Disks() []pixel.Circle {
	disks := make([]pixel.Circle, len(l.Lighthouses))
	for i, lh := range l.Lighthouses {
		disks[i] = lh.Disk()
	}
	return disks
}
