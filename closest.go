package lighthouses

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/pkg/errors"
)

// Rotate turns point counter-clockwise around origin by angle radians.
// Angles of 0 and ±π are handled exactly.
func Rotate(origin, point pixel.Vec, angle float64) pixel.Vec {
	switch angle {
	case 0:
		return point
	case math.Pi, -math.Pi:
		return origin.Scaled(2).Sub(point)
	}
	return origin.Add(point.Sub(origin).Rotated(angle))
}

// Distance is the Euclidean distance between p1 and p2.
func Distance(p1, p2 pixel.Vec) (float64, error) {
	if !finite(p1) || !finite(p2) {
		return math.NaN(), errors.Wrapf(ErrDomain, "distance between %v and %v", p1, p2)
	}
	return distBetweenPoints(p1, p2), nil
}

func distBetweenPoints(a pixel.Vec, b pixel.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func finite(v pixel.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// SignedAngleDegrees measures the angle at vertex p2, counter-clockwise from
// ray p2->p1 to ray p2->p3, in [0, 360).
//
//	    p1
//	   /
//	  /
//	p2 _ _ _ p3
func SignedAngleDegrees(p1, p2, p3 pixel.Vec) float64 {
	ang := (p3.Sub(p2).Angle() - p1.Sub(p2).Angle()) * 180 / math.Pi
	if ang < 0 {
		ang += 360
	}
	if ang >= 360 {
		ang -= 360
	}
	return ang
}

// PerpendicularDistance is the distance from p to the infinite line through
// line.A and line.B.
func PerpendicularDistance(line pixel.Line, p pixel.Vec) (float64, error) {
	dir := line.B.Sub(line.A)
	length := dir.Len()
	if length == 0 || math.IsNaN(length) {
		return math.NaN(), errors.Wrapf(ErrInvalidArgument, "degenerate line %v", line)
	}
	return math.Abs(dir.Cross(p.Sub(line.A))) / length, nil
}

// LineCircleOverlap reports whether the infinite line through line.A and
// line.B passes strictly inside disk. A tangent line grazes, it does not
// overlap.
func LineCircleOverlap(line pixel.Line, disk pixel.Circle) (bool, error) {
	if !(disk.Radius > 0) {
		return false, errors.Wrapf(ErrInvalidArgument, "radius %v", disk.Radius)
	}
	d, err := PerpendicularDistance(line, disk.Center)
	if err != nil {
		return false, err
	}
	return d < disk.Radius, nil
}

// XIntercept returns the x coordinate where the line through line.A and
// line.B crosses the horizontal line at height y.
func XIntercept(line pixel.Line, y float64) (float64, error) {
	dy := line.B.Y - line.A.Y
	if dy == 0 {
		return math.NaN(), errors.Wrapf(ErrDomain, "line %v never crosses y=%v", line, y)
	}
	return line.A.X + (y-line.A.Y)*(line.B.X-line.A.X)/dy, nil
}

// closestBlocker returns the index of the disk nearest to ray.A that the
// ray's line passes through, or -1. Disks are shrunk by tol first.
func closestBlocker(ray pixel.Line, disks []Lighthouse, tol float64) (int, error) {
	blocker := -1
	minDist := -1.0
	for _, l := range disks {
		disk := l.Disk()
		disk.Radius -= tol
		hit, err := LineCircleOverlap(ray, disk)
		if err != nil {
			return -1, err
		}
		if !hit {
			continue
		}
		dist := distBetweenPoints(ray.A, l.Center)
		if minDist < 0 || dist < minDist {
			minDist = dist
			blocker = l.Index
		}
	}
	return blocker, nil
}
