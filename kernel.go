package vignette

import (
	"math"

	"github.com/gogpu/vignette/internal/blend"
)

// The constants below encode the visual identity of the effect. They are
// not tunable: changing any of them changes the rendered output of every
// preset.
const (
	// diamondScale calibrates the Manhattan norm so the diamond reads at
	// the same visual size as the oval and rectangle.
	diamondScale = 0.7

	// starBase and starAmplitude shape the five-fold radius modulation
	// of the star variant.
	starBase      = 0.8
	starAmplitude = 0.2
	starPoints    = 5

	// falloffFloor guards the falloff division when the outer radius
	// approaches the inner radius. It also defines the hard-step
	// behavior for outer <= inner.
	falloffFloor = 0.01

	// dimBase and dimAmplitude form the vertical brightness bias of the
	// non-colored path: 0.5 + sin(v*pi)*0.9. The asymmetry is part of
	// the effect's signature, not a defect.
	dimBase      = 0.5
	dimAmplitude = 0.9
)

// Distance computes the scalar shape distance for the normalized
// coordinate (u, v) under p. The configured center maps to distance zero;
// along each axis the frame edge maps to 2 (before shape strength), the
// range the preset radii are calibrated against.
func Distance(u, v float64, p Params) float64 {
	sinR, cosR := math.Sincos(p.Rotation)
	dx := u - p.Center.X
	dy := v - p.Center.Y

	// Rotate about the center, counter-clockwise positive.
	rx := dx*cosR - dy*sinR
	ry := dx*sinR + dy*cosR

	// Signed device-like coordinates: aspect correction on x, y flipped
	// to up-positive, both doubled twice ([0,1] -> [-1,1] -> [-2,2]).
	xt := rx * p.AspectRatio * 4
	yt := -ry * 4

	switch p.Shape {
	case ShapeRectangle:
		return math.Max(math.Abs(xt), math.Abs(yt)) * p.ShapeStrength
	case ShapeDiamond:
		return (math.Abs(xt) + math.Abs(yt)) * diamondScale * p.ShapeStrength
	case ShapeStar:
		ax, ay := math.Abs(xt), math.Abs(yt)
		r := math.Hypot(ax, ay)
		a := math.Atan2(ay, ax) * starPoints
		return r * (starBase + starAmplitude*math.Sin(a)) * p.ShapeStrength
	default: // ShapeOval
		return math.Hypot(xt, yt)
	}
}

// Falloff converts a shape distance into the effect factor in [0, 1]:
// 1 inside the inner radius, 0 beyond the outer radius. A degenerate
// radius pair (outer <= inner) collapses into a hard step governed by
// the 0.01 floor.
func Falloff(dist float64, p Params) float64 {
	sub := math.Max(0, dist-p.InnerRadius) / math.Max(p.OuterRadius-p.InnerRadius, falloffFloor)
	return clamp01(1 - sub)
}

// verticalDim is the brightness bias of the non-colored path. It peaks at
// 1.4 mid-frame and drops to 0.5 at the top and bottom edges.
func verticalDim(v float64) float64 {
	return dimBase + math.Sin(v*math.Pi)*dimAmplitude
}

// Evaluate computes the output color for one pixel.
//
// (u, v) is the pixel's normalized texture coordinate in [0,1]^2, src the
// color sampled from the underlying frame, and p the frame's parameter
// snapshot. Evaluate is pure and deterministic; it never mutates p and has
// no precondition beyond finite inputs (see Params.Validate). Alpha always
// passes through from src.
func Evaluate(u, v float64, src RGBA, p Params) RGBA {
	factor := Falloff(Distance(u, v, p), p)

	if !p.UseColor {
		// Darkening path: fade the source toward a dimmed copy of
		// itself. The dimmed copy carries the vertical bias, so a
		// fully inside pixel at full opacity lands on src*dim.
		t := factor * verticalDim(v) * p.Opacity
		inv := 1 - p.Opacity
		return RGBA{
			R: src.R*inv + src.R*t,
			G: src.G*inv + src.G*t,
			B: src.B*inv + src.B*t,
			A: src.A,
		}
	}

	amount := (1 - factor) * p.Opacity
	s := blend.RGB{R: src.R, G: src.G, B: src.B}
	tint := blend.RGB{R: p.Color.R, G: p.Color.G, B: p.Color.B}

	var out blend.RGB
	switch p.Blend {
	case BlendMultiply:
		out = blend.Multiply(s, tint, amount)
	case BlendScreen:
		out = blend.Screen(s, tint, amount)
	case BlendOverlay:
		out = blend.Overlay(s, tint, amount)
	default: // BlendNormal
		out = blend.Normal(s, tint, amount)
	}

	return RGBA{R: out.R, G: out.G, B: out.B, A: src.A}
}
