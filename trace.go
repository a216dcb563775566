package lighthouses

import (
	"image/color"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

// Colors a renderer can use for the pieces of a Report.
var (
	PlacementColor  = colornames.Red
	CenterColor     = colornames.Yellow
	EdgeColor       = colornames.Gray
	AcceptedColor   = colornames.Green
	RejectedColor   = colornames.Red
	UnresolvedColor = colornames.Orange
	InterceptColor  = colornames.Orange
)

// Ray is the segment from where the light leaves to the tangent point.
func (a Attempt) Ray() pixel.Line {
	return pixel.L(a.Source, a.Tangent)
}

// Color is green for an accepted ray and red for a rejected one.
func (a Attempt) Color() color.RGBA {
	if a.Valid {
		return AcceptedColor
	}
	return RejectedColor
}

// Dashed reports whether the ray should be drawn dashed, which rejected
// rays are.
func (a Attempt) Dashed() bool {
	return !a.Valid
}

// WinnerColor is the winner's color, or UnresolvedColor when the search fell
// back to an invalid attempt.
func (ill *Illumination) WinnerColor() color.RGBA {
	if ill.Unresolved {
		return UnresolvedColor
	}
	return ill.Winner.Color()
}

// Report is everything computed for one N, as plain data for a renderer.
type Report struct {
	Layout *Layout
	// Illumination is nil for N = 1, and when a model that declares the
	// layout unbounded up front found no valid ray.
	Illumination *Illumination
	DarkArea     DarkArea
}

// Rays returns every attempted ray in search order.
func (r *Report) Rays() []pixel.Line {
	if r.Illumination == nil {
		return nil
	}
	rays := make([]pixel.Line, len(r.Illumination.Attempts))
	for i, a := range r.Illumination.Attempts {
		rays[i] = a.Ray()
	}
	return rays
}
