package lighthouses

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/faiface/pixel"
	"github.com/gonum/floats"
)

const tol = 1e-9

func vecAlmostEqual(a, b pixel.Vec) bool {
	return floats.EqualWithinAbs(a.X, b.X, tol) && floats.EqualWithinAbs(a.Y, b.Y, tol)
}

func TestRotateIdentity(t *testing.T) {
	origin := pixel.V(1.5, -2)
	p := pixel.V(0.1, 7.3)
	if got := Rotate(origin, p, 0); got != p {
		t.Errorf("Expected rotation by 0 to return %v exactly, got %v", p, got)
	}
	if got := Rotate(origin, p, 2*math.Pi); !vecAlmostEqual(got, p) {
		t.Errorf("Expected rotation by 2π to return %v, got %v", p, got)
	}
}

func TestRotateHalfTurnIsReflection(t *testing.T) {
	origin := pixel.V(3, 1)
	p := pixel.V(5, 4)
	want := pixel.V(1, -2)
	if got := Rotate(origin, p, math.Pi); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := Rotate(origin, p, -math.Pi); got != want {
		t.Errorf("Expected %v for -π, got %v", want, got)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	got := Rotate(pixel.ZV, pixel.V(4, 0), math.Pi/2)
	if !vecAlmostEqual(got, pixel.V(0, 4)) {
		t.Errorf("Expected (0, 4), got %v", got)
	}
}

func TestRotateInverse(t *testing.T) {
	origin := pixel.V(-2, 5)
	points := []pixel.Vec{pixel.V(0, 0), pixel.V(10, -3), pixel.V(-2, 5.5), pixel.V(1e3, 1e3)}
	angles := []float64{0.1, 1, math.Pi / 3, 2.5, -4, 17}
	for _, p := range points {
		for _, a := range angles {
			back := Rotate(origin, Rotate(origin, p, a), -a)
			if !floats.EqualWithinAbsOrRel(back.X, p.X, tol, tol) || !floats.EqualWithinAbsOrRel(back.Y, p.Y, tol, tol) {
				t.Errorf("Rotating %v by %v and back gave %v", p, a, back)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	d, err := Distance(pixel.V(1, 1), pixel.V(4, 5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d != 5 {
		t.Errorf("Expected 5, got %v", d)
	}

	bad := []pixel.Vec{
		pixel.V(math.NaN(), 0),
		pixel.V(0, math.Inf(1)),
		pixel.V(math.Inf(-1), 0),
	}
	for _, p := range bad {
		if _, err := Distance(p, pixel.ZV); !IsKind(err, ErrDomain) {
			t.Errorf("Expected ErrDomain for %v, got %v", p, err)
		}
	}
}

func TestSignedAngleDegrees(t *testing.T) {
	cases := []struct {
		name       string
		p1, p2, p3 pixel.Vec
		want       float64
	}{
		{"quarter ccw", pixel.V(1, 0), pixel.ZV, pixel.V(0, 1), 90},
		{"quarter cw wraps", pixel.V(0, 1), pixel.ZV, pixel.V(1, 0), 270},
		{"straight", pixel.V(-1, 0), pixel.ZV, pixel.V(1, 0), 180},
		{"same ray", pixel.V(2, 2), pixel.V(1, 1), pixel.V(3, 3), 0},
		{"offset vertex", pixel.V(5, 3), pixel.V(4, 3), pixel.V(4, 4), 90},
	}
	for _, c := range cases {
		got := SignedAngleDegrees(c.p1, c.p2, c.p3)
		if !floats.EqualWithinAbs(got, c.want, tol) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
		if got < 0 || got >= 360 {
			t.Errorf("%s: %v outside [0, 360)", c.name, got)
		}
	}
}

func TestLineCircleOverlap(t *testing.T) {
	unit := pixel.Circle{Center: pixel.ZV, Radius: 1}
	cases := []struct {
		name string
		line pixel.Line
		want bool
	}{
		{"tangent grazes", pixel.L(pixel.V(-5, 1), pixel.V(5, 1)), false},
		{"inside", pixel.L(pixel.V(-5, 0.5), pixel.V(5, 0.5)), true},
		{"outside", pixel.L(pixel.V(-5, 1.5), pixel.V(5, 1.5)), false},
		{"through center", pixel.L(pixel.V(-3, -3), pixel.V(7, 7)), true},
		{"segment short of circle", pixel.L(pixel.V(3, 0), pixel.V(4, 0)), true},
		{"vertical tangent", pixel.L(pixel.V(-1, 8), pixel.V(-1, 9)), false},
	}
	for _, c := range cases {
		got, err := LineCircleOverlap(c.line, unit)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}

	tiny := pixel.Circle{Center: pixel.V(2, 2), Radius: 1e-12}
	if hit, _ := LineCircleOverlap(pixel.L(pixel.ZV, pixel.V(4, 4)), tiny); !hit {
		t.Error("Expected a line through the center to overlap any positive radius")
	}
}

func TestLineCircleOverlapInvalid(t *testing.T) {
	line := pixel.L(pixel.ZV, pixel.V(1, 0))
	for _, r := range []float64{0, -1, math.NaN()} {
		if _, err := LineCircleOverlap(line, pixel.Circle{Radius: r}); !IsKind(err, ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for radius %v, got %v", r, err)
		}
	}
	point := pixel.L(pixel.V(1, 1), pixel.V(1, 1))
	if _, err := LineCircleOverlap(point, pixel.Circle{Radius: 1}); !IsKind(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for a degenerate line, got %v", err)
	}
}

func TestXIntercept(t *testing.T) {
	x, err := XIntercept(pixel.L(pixel.V(0, 2), pixel.V(2, 0)), 0)
	if err != nil || x != 2 {
		t.Errorf("Expected 2, got %v (%v)", x, err)
	}
	x, err = XIntercept(pixel.L(pixel.V(3, -1), pixel.V(3, 5)), 10)
	if err != nil || x != 3 {
		t.Errorf("Expected vertical line to cross at 3, got %v (%v)", x, err)
	}
	if _, err := XIntercept(pixel.L(pixel.V(0, 1), pixel.V(5, 1)), 0); !IsKind(err, ErrDomain) {
		t.Errorf("Expected ErrDomain for a horizontal line, got %v", err)
	}
}

func TestClosestBlocker(t *testing.T) {
	disks := []Lighthouse{
		{Index: 7, Center: pixel.V(10, 0)},
		{Index: 3, Center: pixel.V(4, 0.5)},
		{Index: 9, Center: pixel.V(6, 5)},
	}
	ray := pixel.L(pixel.ZV, pixel.V(1, 0))
	got, err := closestBlocker(ray, disks, DefaultTolerance)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("Expected nearest blocker 3, got %d in %s", got, spew.Sdump(disks))
	}

	grazing := []Lighthouse{{Index: 1, Center: pixel.V(5, 1+1e-12)}}
	if got, _ := closestBlocker(ray, grazing, DefaultTolerance); got != -1 {
		t.Errorf("Expected a grazing disk within tolerance not to block, got %d", got)
	}
}
