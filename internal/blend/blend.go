// Package blend implements the tint compositing rules for the colored
// vignette path.
//
// Each mode interpolates a blend color from a mode-specific neutral value
// toward the tint by the vignette opacity, then combines it with the
// source channel-wise. The neutral values are chosen so that zero opacity
// is an exact identity: white for multiply, black for screen, mid-gray
// for overlay, and the source itself for normal.
//
// All channels are straight-alpha floats; alpha is handled by the caller.
package blend

// RGB is a straight-alpha color triple. Channels are nominally in [0, 1];
// out-of-range inputs pass through the math unclamped.
type RGB struct {
	R, G, B float64
}

// Normal interpolates the source toward the tint by amount.
func Normal(src, tint RGB, amount float64) RGB {
	return RGB{
		R: lerp(src.R, tint.R, amount),
		G: lerp(src.G, tint.G, amount),
		B: lerp(src.B, tint.B, amount),
	}
}

// Multiply multiplies the source with a white-to-tint ramp.
func Multiply(src, tint RGB, amount float64) RGB {
	return RGB{
		R: src.R * lerp(1, tint.R, amount),
		G: src.G * lerp(1, tint.G, amount),
		B: src.B * lerp(1, tint.B, amount),
	}
}

// Screen screens the source with a black-to-tint ramp.
func Screen(src, tint RGB, amount float64) RGB {
	return RGB{
		R: screen(src.R, lerp(0, tint.R, amount)),
		G: screen(src.G, lerp(0, tint.G, amount)),
		B: screen(src.B, lerp(0, tint.B, amount)),
	}
}

// Overlay overlays a mid-gray-to-tint ramp onto the source.
func Overlay(src, tint RGB, amount float64) RGB {
	return RGB{
		R: overlay(src.R, lerp(0.5, tint.R, amount)),
		G: overlay(src.G, lerp(0.5, tint.G, amount)),
		B: overlay(src.B, lerp(0.5, tint.B, amount)),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// screen computes 1 - (1-s)*(1-b).
func screen(s, b float64) float64 {
	return 1 - (1-s)*(1-b)
}

// overlay multiplies below the 0.5 threshold and screens above it,
// keyed on the source channel.
func overlay(s, b float64) float64 {
	if s < 0.5 {
		return 2 * s * b
	}
	return 1 - 2*(1-s)*(1-b)
}
