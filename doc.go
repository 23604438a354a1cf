// Package vignette implements a configurable vignette post-process filter
// for video frames and still images.
//
// # Overview
//
// A vignette darkens or tints an image toward its edges. The effect is
// driven by a per-pixel distance field with four shape variants (oval,
// rectangle, diamond, star) and composited either as a plain darkening or
// as a colored tint through one of four blend modes (normal, multiply,
// screen, overlay).
//
// # Quick Start
//
//	import "github.com/gogpu/vignette"
//
//	params := vignette.DefaultParams()
//	params.Shape = vignette.ShapeOval
//	params.Opacity = 0.8
//
//	f, err := vignette.NewFilter(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f.Apply(src, dst) // src, dst are *vignette.Pixmap
//
// # Architecture
//
// The library is organized into:
//   - Public API: Params, Evaluate (the per-pixel kernel), Filter, Pixmap,
//     RGBA, Presets
//   - Internal: blend (tint compositing), parallel (row-band worker pool)
//   - Backends: backend/wgpu (WGSL compute shader path)
//
// # Coordinate System
//
// The kernel works in normalized texture coordinates:
//   - (0,0) at top-left, (1,1) at bottom-right
//   - Rotation in radians, counter-clockwise positive
//   - The distance field lives in signed device-like coordinates where the
//     configured center maps to the origin and y increases upward
//
// # Determinism
//
// Evaluate is pure: identical inputs produce identical outputs on every
// invocation, which is what makes golden-image testing of the filter
// possible. Pixels are independent, so the Filter evaluates them on as many
// goroutines as it likes with no coordination beyond the frame's read-only
// parameter snapshot.
package vignette

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
