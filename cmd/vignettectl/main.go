// Command vignettectl applies the vignette filter to an image file.
//
// With no input it renders the filter over a generated test card, which
// is handy for previewing presets:
//
//	vignettectl -preset sepia -output sepia.png
//	vignettectl -input frame.png -shape star -rotation 18 -output out.png
//
// Defaults can also come from a .env file (VIGNETTE_PRESET,
// VIGNETTE_OUTPUT, VIGNETTE_WORKERS).
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vignette"
	"github.com/gogpu/vignette/locale"
)

func main() {
	// A missing .env is fine; flags override anything it sets.
	_ = godotenv.Load()

	var (
		input    = flag.String("input", "", "input image (PNG or JPEG); empty renders a test card")
		output   = flag.String("output", envOr("VIGNETTE_OUTPUT", "vignette.png"), "output PNG file")
		width    = flag.Int("width", 800, "test card width (ignored with -input)")
		height   = flag.Int("height", 600, "test card height (ignored with -input)")
		scale    = flag.Float64("scale", 1, "pre-filter scale factor for the input image")
		preset   = flag.String("preset", envOr("VIGNETTE_PRESET", ""), "preset name (see -list)")
		list     = flag.Bool("list", false, "list presets and exit")
		shape    = flag.String("shape", "oval", "shape: oval, rectangle, diamond, star")
		blend    = flag.String("blend", "normal", "blend mode: normal, multiply, screen, overlay")
		colorHex = flag.String("color", "", "tint color as hex (e.g. #b08656); enables colored mode")
		opacity  = flag.Float64("opacity", 0.8, "effect opacity in [0,1]")
		inner    = flag.Float64("inner", 0.9, "inner radius")
		outer    = flag.Float64("outer", 1.5, "outer radius")
		centerX  = flag.Float64("center-x", 0.5, "normalized center x")
		centerY  = flag.Float64("center-y", 0.5, "normalized center y")
		aspect   = flag.Float64("aspect", 1, "aspect ratio")
		rotation = flag.Float64("rotation", 0, "rotation in degrees")
		strength = flag.Float64("strength", 1, "shape strength")
		workers  = flag.Int("workers", envInt("VIGNETTE_WORKERS", 0), "worker goroutines (0 = all cores)")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		vignette.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		listPresets()
		return
	}

	// Only flags the user actually set override the preset; defaults do
	// not, so "-preset gem -rotation 0" clears the preset's rotation
	// while "-preset gem" alone keeps it.
	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	params, err := buildParams(effectFlags{
		preset:   *preset,
		shape:    *shape,
		blend:    *blend,
		colorHex: *colorHex,
		opacity:  *opacity,
		inner:    *inner,
		outer:    *outer,
		centerX:  *centerX,
		centerY:  *centerY,
		aspect:   *aspect,
		rotation: *rotation,
		strength: *strength,
		set:      set,
	})
	if err != nil {
		log.Fatalf("vignettectl: %v", err)
	}

	src, err := loadSource(*input, *width, *height, *scale)
	if err != nil {
		log.Fatalf("vignettectl: %v", err)
	}

	f, err := vignette.NewFilter(params, vignette.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("vignettectl: %v", err)
	}
	defer f.Close()

	dst := vignette.NewPixmap(src.Width(), src.Height())
	if err := f.Apply(src, dst); err != nil {
		log.Fatalf("vignettectl: %v", err)
	}

	if err := dst.SavePNG(*output); err != nil {
		log.Fatalf("vignettectl: failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d)", *output, dst.Width(), dst.Height())
}

// listPresets prints preset names with display names in the user's
// language.
func listPresets() {
	tag := locale.Match(os.Getenv("LANG"))
	for _, name := range vignette.PresetNames() {
		p, _ := vignette.Preset(name)
		mode := "darken"
		if p.UseColor {
			mode = p.Blend.String()
		}
		fmt.Printf("%-12s %-18s %s/%s\n", name, locale.PresetName(tag, name), p.Shape, mode)
	}
}

// effectFlags carries the effect-related flag values plus the names the
// user explicitly set on the command line.
type effectFlags struct {
	preset, shape, blend, colorHex                                      string
	opacity, inner, outer, centerX, centerY, aspect, rotation, strength float64
	set                                                                 map[string]bool
}

// buildParams resolves the preset and applies the explicitly set flags
// on top. Unset flags never override preset values, so zero and
// negative settings (rotation 0, off-canvas centers) work like any
// other.
func buildParams(ef effectFlags) (vignette.Params, error) {
	params := vignette.DefaultParams()
	if ef.preset != "" {
		p, ok := vignette.Preset(ef.preset)
		if !ok {
			return params, fmt.Errorf("unknown preset %q (try -list)", ef.preset)
		}
		params = p
	}

	if ef.set["shape"] {
		s, err := vignette.ParseShape(ef.shape)
		if err != nil {
			return params, err
		}
		params.Shape = s
	}
	if ef.set["blend"] {
		m, err := vignette.ParseBlendMode(ef.blend)
		if err != nil {
			return params, err
		}
		params.Blend = m
		params.UseColor = true
	}
	if ef.set["color"] {
		params.Color = vignette.Hex(ef.colorHex)
		params.UseColor = true
	}
	if ef.set["opacity"] {
		params.Opacity = ef.opacity
	}
	if ef.set["inner"] {
		params.InnerRadius = ef.inner
	}
	if ef.set["outer"] {
		params.OuterRadius = ef.outer
	}
	if ef.set["center-x"] {
		params.Center.X = ef.centerX
	}
	if ef.set["center-y"] {
		params.Center.Y = ef.centerY
	}
	if ef.set["aspect"] {
		params.AspectRatio = ef.aspect
	}
	if ef.set["rotation"] {
		params.Rotation = vignette.Radians(ef.rotation)
	}
	if ef.set["strength"] {
		params.ShapeStrength = ef.strength
	}

	params.Clamp()
	return params, nil
}

// loadSource decodes the input file, or renders the test card when no
// input is given. A scale factor other than 1 resamples with Catmull-Rom.
func loadSource(path string, width, height int, scale float64) (*vignette.Pixmap, error) {
	if path == "" {
		return testCard(width, height), nil
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if scale > 0 && scale != 1 {
		b := img.Bounds()
		w := int(float64(b.Dx()) * scale)
		h := int(float64(b.Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v collapses the image", scale)
		}
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		img = scaled
	}

	return vignette.FromImage(img), nil
}

// testCard renders a color gradient with a centered grid, enough
// structure to judge every shape and blend mode.
func testCard(width, height int) *vignette.Pixmap {
	pm := vignette.NewPixmap(width, height)

	for y := 0; y < height; y++ {
		ty := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			tx := float64(x) / float64(width)
			c := vignette.RGB(0.25+0.5*tx, 0.3+0.4*ty, 0.55-0.25*tx)
			if x%64 == 0 || y%64 == 0 {
				c = vignette.RGB(0.85, 0.85, 0.85)
			}
			pm.SetPixel(x, y, c)
		}
	}
	return pm
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
