package vignette

import (
	"fmt"
	"math"
)

// Shape selects the distance-field variant driving the falloff.
type Shape int

const (
	// ShapeOval uses the Euclidean norm: a circular vignette, stretched
	// into an ellipse by the aspect ratio.
	ShapeOval Shape = iota

	// ShapeRectangle uses the Chebyshev norm: a rectangular frame.
	ShapeRectangle

	// ShapeDiamond uses the Manhattan norm: a diamond frame.
	ShapeDiamond

	// ShapeStar modulates the radius with five-fold angular symmetry.
	ShapeStar

	shapeCount
)

// String returns the canonical shape name.
func (s Shape) String() string {
	switch s {
	case ShapeOval:
		return "oval"
	case ShapeRectangle:
		return "rectangle"
	case ShapeDiamond:
		return "diamond"
	case ShapeStar:
		return "star"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape returns the Shape with the given canonical name.
func ParseShape(name string) (Shape, error) {
	for s := ShapeOval; s < shapeCount; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("vignette: unknown shape %q", name)
}

// BlendMode selects the compositing rule for the colored vignette path.
// It has no effect when Params.UseColor is false.
type BlendMode int

const (
	// BlendNormal linearly interpolates the source toward the tint.
	BlendNormal BlendMode = iota

	// BlendMultiply multiplies the source with a white-to-tint ramp.
	BlendMultiply

	// BlendScreen screens the source with a black-to-tint ramp.
	BlendScreen

	// BlendOverlay overlays a gray-to-tint ramp onto the source.
	BlendOverlay

	blendModeCount
)

// String returns the canonical blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// ParseBlendMode returns the BlendMode with the given canonical name.
func ParseBlendMode(name string) (BlendMode, error) {
	for m := BlendNormal; m < blendModeCount; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("vignette: unknown blend mode %q", name)
}

// Point is a normalized 2D coordinate.
type Point struct {
	X, Y float64
}

// Params is the per-frame parameter snapshot driving the compositor.
//
// A Params value is read-only during a frame's evaluation pass: the Filter
// copies it at Apply time and Evaluate never mutates it. Construct one
// fresh from user settings or a preset, Clamp it, and hand it over.
type Params struct {
	// InnerRadius is the distance at which the falloff begins.
	InnerRadius float64

	// OuterRadius is the distance at which the falloff completes.
	// Values at or below InnerRadius collapse the falloff into a hard
	// step; this is defined behavior, not an error.
	OuterRadius float64

	// Opacity is the overall effect strength in [0, 1].
	Opacity float64

	// Center is the normalized effect center, typically in [0,1]x[0,1].
	Center Point

	// AspectRatio scales the horizontal axis of the distance field.
	// 1 keeps the shape symmetric; values above 1 widen it.
	AspectRatio float64

	// Rotation rotates the shape axes, in radians, counter-clockwise
	// positive. Host-facing layers usually carry degrees; convert with
	// Radians.
	Rotation float64

	// Shape selects the distance-field variant.
	Shape Shape

	// ShapeStrength multiplies the rectangle, diamond and star distance
	// fields. Zero degenerates those shapes into an always-maximal
	// vignette; preserved as defined behavior.
	ShapeStrength float64

	// UseColor switches from plain darkening to a colored tint.
	UseColor bool

	// Color is the tint color. Only R, G and B are used, and only when
	// UseColor is set.
	Color RGBA

	// Blend selects the tint compositing rule. Only used when UseColor
	// is set.
	Blend BlendMode
}

// DefaultParams returns the neutral oval darkening configuration.
func DefaultParams() Params {
	return Params{
		InnerRadius:   0.9,
		OuterRadius:   1.5,
		Opacity:       0.8,
		Center:        Point{X: 0.5, Y: 0.5},
		AspectRatio:   1.0,
		Rotation:      0,
		Shape:         ShapeOval,
		ShapeStrength: 1.0,
		UseColor:      false,
		Color:         Black,
		Blend:         BlendNormal,
	}
}

// Radians converts a host-boundary rotation in degrees to the radians the
// kernel expects.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Clamp normalizes user-supplied fields in place: opacity and tint
// channels to [0, 1], radii and shape strength to non-negative values.
// It does not touch Center, AspectRatio or Rotation; off-canvas centers
// and extreme aspect ratios are legitimate configurations.
func (p *Params) Clamp() {
	p.Opacity = clamp01(p.Opacity)
	p.Color.R = clamp01(p.Color.R)
	p.Color.G = clamp01(p.Color.G)
	p.Color.B = clamp01(p.Color.B)
	if p.InnerRadius < 0 {
		p.InnerRadius = 0
	}
	if p.OuterRadius < 0 {
		p.OuterRadius = 0
	}
	if p.ShapeStrength < 0 {
		p.ShapeStrength = 0
	}
}

// Validate reports contract violations: non-finite numeric fields or
// out-of-range enums. Degenerate but finite configurations (outer radius
// at or below inner, zero shape strength) are valid by design.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"inner radius", p.InnerRadius},
		{"outer radius", p.OuterRadius},
		{"opacity", p.Opacity},
		{"center x", p.Center.X},
		{"center y", p.Center.Y},
		{"aspect ratio", p.AspectRatio},
		{"rotation", p.Rotation},
		{"shape strength", p.ShapeStrength},
		{"color r", p.Color.R},
		{"color g", p.Color.G},
		{"color b", p.Color.B},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("vignette: %s is not finite", c.name)
		}
	}
	if p.Shape < ShapeOval || p.Shape >= shapeCount {
		return fmt.Errorf("vignette: invalid shape %d", int(p.Shape))
	}
	if p.Blend < BlendNormal || p.Blend >= blendModeCount {
		return fmt.Errorf("vignette: invalid blend mode %d", int(p.Blend))
	}
	return nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
