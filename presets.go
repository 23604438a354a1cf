package vignette

// The preset table reproduces the sixteen fixed looks the effect ships
// with. Each entry is a plain Params literal; the host settings layer
// treats them as starting points, not as a separate mechanism.

// presetOrder lists preset names in menu order.
var presetOrder = []string{
	"classic",
	"subtle",
	"strong",
	"spotlight",
	"portrait",
	"widescreen",
	"frame",
	"letterbox",
	"diamond",
	"gem",
	"star",
	"sheriff",
	"noir",
	"sepia",
	"frost",
	"sunset",
}

var presets = map[string]Params{
	// Plain darkening ovals.
	"classic": DefaultParams(),
	"subtle": {
		InnerRadius: 1.2, OuterRadius: 1.9, Opacity: 0.45,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval,
	},
	"strong": {
		InnerRadius: 0.5, OuterRadius: 1.1, Opacity: 1,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval,
	},
	"spotlight": {
		InnerRadius: 0.35, OuterRadius: 0.9, Opacity: 0.95,
		Center: Point{X: 0.5, Y: 0.38}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval,
	},
	"portrait": {
		InnerRadius: 0.8, OuterRadius: 1.35, Opacity: 0.7,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 0.7, ShapeStrength: 1,
		Shape: ShapeOval,
	},
	"widescreen": {
		InnerRadius: 0.9, OuterRadius: 1.5, Opacity: 0.8,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1.6, ShapeStrength: 1,
		Shape: ShapeOval,
	},

	// Rectangular frames.
	"frame": {
		InnerRadius: 1.3, OuterRadius: 1.6, Opacity: 0.85,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1.1,
		Shape: ShapeRectangle,
	},
	"letterbox": {
		InnerRadius: 1.0, OuterRadius: 1.15, Opacity: 1,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 0.25, ShapeStrength: 1,
		Shape: ShapeRectangle,
	},

	// Diamonds and stars.
	"diamond": {
		InnerRadius: 0.9, OuterRadius: 1.5, Opacity: 0.8,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeDiamond,
	},
	"gem": {
		InnerRadius: 0.7, OuterRadius: 1.3, Opacity: 0.75,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeDiamond, Rotation: Radians(45),
		UseColor: true, Color: RGBA{R: 0.17, G: 0.08, B: 0.36, A: 1},
		Blend: BlendMultiply,
	},
	"star": {
		InnerRadius: 0.9, OuterRadius: 1.5, Opacity: 0.8,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeStar,
	},
	"sheriff": {
		InnerRadius: 0.75, OuterRadius: 1.2, Opacity: 0.9,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 0.9,
		Shape: ShapeStar, Rotation: Radians(18),
	},

	// Colored tints.
	"noir": {
		InnerRadius: 0.6, OuterRadius: 1.2, Opacity: 0.95,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval, UseColor: true,
		Color: RGBA{R: 0.02, G: 0.02, B: 0.04, A: 1}, Blend: BlendNormal,
	},
	"sepia": {
		InnerRadius: 0.8, OuterRadius: 1.4, Opacity: 0.8,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval, UseColor: true,
		Color: RGBA{R: 0.72, G: 0.53, B: 0.35, A: 1}, Blend: BlendMultiply,
	},
	"frost": {
		InnerRadius: 0.9, OuterRadius: 1.4, Opacity: 0.65,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval, UseColor: true,
		Color: RGBA{R: 0.62, G: 0.78, B: 0.92, A: 1}, Blend: BlendScreen,
	},
	"sunset": {
		InnerRadius: 0.7, OuterRadius: 1.3, Opacity: 0.75,
		Center: Point{X: 0.5, Y: 0.5}, AspectRatio: 1, ShapeStrength: 1,
		Shape: ShapeOval, UseColor: true,
		Color: RGBA{R: 0.95, G: 0.55, B: 0.25, A: 1}, Blend: BlendOverlay,
	},
}

// Preset returns the named preset, reporting whether it exists.
// The returned Params is a copy; callers may modify it freely.
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns all preset names in menu order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}
