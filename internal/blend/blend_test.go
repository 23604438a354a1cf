package blend

import (
	"math"
	"testing"
)

const eps = 1e-12

func closeRGB(a, b RGB, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol
}

var (
	src  = RGB{R: 0.4, G: 0.6, B: 0.8}
	tint = RGB{R: 0.72, G: 0.53, B: 0.35}
)

func TestZeroAmountIsIdentity(t *testing.T) {
	modes := []struct {
		name string
		fn   func(RGB, RGB, float64) RGB
	}{
		{"normal", Normal},
		{"multiply", Multiply},
		{"screen", Screen},
		{"overlay", Overlay},
	}
	for _, m := range modes {
		if got := m.fn(src, tint, 0); !closeRGB(got, src, eps) {
			t.Errorf("%s at amount 0: got %+v, want %+v", m.name, got, src)
		}
	}
}

func TestNormal(t *testing.T) {
	if got := Normal(src, tint, 1); !closeRGB(got, tint, eps) {
		t.Errorf("full normal: got %+v, want tint %+v", got, tint)
	}
	half := RGB{R: 0.56, G: 0.565, B: 0.575}
	if got := Normal(src, tint, 0.5); !closeRGB(got, half, 1e-9) {
		t.Errorf("half normal: got %+v, want %+v", got, half)
	}
}

func TestMultiply(t *testing.T) {
	want := RGB{R: src.R * tint.R, G: src.G * tint.G, B: src.B * tint.B}
	if got := Multiply(src, tint, 1); !closeRGB(got, want, eps) {
		t.Errorf("full multiply: got %+v, want %+v", got, want)
	}

	// A white tint is neutral for multiply at any amount.
	white := RGB{R: 1, G: 1, B: 1}
	for _, amount := range []float64{0, 0.3, 1} {
		if got := Multiply(src, white, amount); !closeRGB(got, src, eps) {
			t.Errorf("white multiply at %v: got %+v", amount, got)
		}
	}

	// Black at full amount crushes everything to black.
	if got := Multiply(src, RGB{}, 1); !closeRGB(got, RGB{}, eps) {
		t.Errorf("black multiply: got %+v", got)
	}
}

func TestScreen(t *testing.T) {
	want := RGB{
		R: 1 - (1-src.R)*(1-tint.R),
		G: 1 - (1-src.G)*(1-tint.G),
		B: 1 - (1-src.B)*(1-tint.B),
	}
	if got := Screen(src, tint, 1); !closeRGB(got, want, eps) {
		t.Errorf("full screen: got %+v, want %+v", got, want)
	}

	// A black tint is neutral for screen.
	for _, amount := range []float64{0, 0.5, 1} {
		if got := Screen(src, RGB{}, amount); !closeRGB(got, src, 1e-9) {
			t.Errorf("black screen at %v: got %+v", amount, got)
		}
	}

	// White at full amount lifts everything to white.
	white := RGB{R: 1, G: 1, B: 1}
	if got := Screen(src, white, 1); !closeRGB(got, white, eps) {
		t.Errorf("white screen: got %+v", got)
	}
}

func TestOverlay(t *testing.T) {
	// Below 0.5 the source multiplies, above it screens.
	got := Overlay(src, tint, 1)
	want := RGB{
		R: 2 * src.R * tint.R,               // 0.4 < 0.5
		G: 1 - 2*(1-src.G)*(1-tint.G),       // 0.6 >= 0.5
		B: 1 - 2*(1-src.B)*(1-tint.B),       // 0.8 >= 0.5
	}
	if !closeRGB(got, want, eps) {
		t.Errorf("full overlay: got %+v, want %+v", got, want)
	}

	// Mid-gray is neutral for overlay at any amount.
	gray := RGB{R: 0.5, G: 0.5, B: 0.5}
	for _, amount := range []float64{0, 0.4, 1} {
		if got := Overlay(src, gray, amount); !closeRGB(got, src, 1e-9) {
			t.Errorf("gray overlay at %v: got %+v", amount, got)
		}
	}
}

func TestPartialAmountStaysBetween(t *testing.T) {
	// For every mode, a partial amount lands between the identity and
	// the full-amount result, channel-wise.
	modes := []func(RGB, RGB, float64) RGB{Normal, Multiply, Screen, Overlay}
	for _, fn := range modes {
		full := fn(src, tint, 1)
		mid := fn(src, tint, 0.5)
		check := func(s, f, m float64) bool {
			lo, hi := math.Min(s, f), math.Max(s, f)
			return m >= lo-eps && m <= hi+eps
		}
		if !check(src.R, full.R, mid.R) || !check(src.G, full.G, mid.G) ||
			!check(src.B, full.B, mid.B) {
			t.Errorf("partial amount escaped [src, full]: src %+v full %+v mid %+v",
				src, full, mid)
		}
	}
}
