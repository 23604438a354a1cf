package main

import (
	"testing"

	"github.com/gogpu/vignette"
)

func TestBuildParamsPresetPassthrough(t *testing.T) {
	got, err := buildParams(effectFlags{preset: "gem", set: map[string]bool{}})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := vignette.Preset("gem")
	if got != want {
		t.Errorf("preset changed without overrides: %+v", got)
	}
}

func TestBuildParamsExplicitZeroOverrides(t *testing.T) {
	// -rotation 0 must clear the gem preset's 45 degree rotation even
	// though 0 is the flag's default value.
	got, err := buildParams(effectFlags{
		preset: "gem",
		set:    map[string]bool{"rotation": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Rotation != 0 {
		t.Errorf("Rotation = %v, want 0", got.Rotation)
	}

	// The same rotation value left unset keeps the preset's.
	got, err = buildParams(effectFlags{preset: "gem", set: map[string]bool{}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Rotation != vignette.Radians(45) {
		t.Errorf("unset rotation overrode preset: %v", got.Rotation)
	}
}

func TestBuildParamsOffCanvasCenter(t *testing.T) {
	got, err := buildParams(effectFlags{
		centerX: -0.25,
		centerY: 1.4,
		set:     map[string]bool{"center-x": true, "center-y": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Center.X != -0.25 || got.Center.Y != 1.4 {
		t.Errorf("off-canvas center rejected: %+v", got.Center)
	}
}

func TestBuildParamsOverrides(t *testing.T) {
	got, err := buildParams(effectFlags{
		shape:    "star",
		blend:    "screen",
		colorHex: "#b88658",
		opacity:  0.5,
		rotation: 18,
		set: map[string]bool{
			"shape": true, "blend": true, "color": true,
			"opacity": true, "rotation": true,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Shape != vignette.ShapeStar || got.Blend != vignette.BlendScreen {
		t.Errorf("shape/blend overrides lost: %+v", got)
	}
	if !got.UseColor {
		t.Error("blend/color flags did not enable colored mode")
	}
	if got.Opacity != 0.5 || got.Rotation != vignette.Radians(18) {
		t.Errorf("numeric overrides lost: %+v", got)
	}
}

func TestBuildParamsErrors(t *testing.T) {
	if _, err := buildParams(effectFlags{preset: "nope", set: map[string]bool{}}); err == nil {
		t.Error("unknown preset accepted")
	}
	if _, err := buildParams(effectFlags{
		shape: "hexagon", set: map[string]bool{"shape": true},
	}); err == nil {
		t.Error("unknown shape accepted")
	}
	if _, err := buildParams(effectFlags{
		blend: "darken", set: map[string]bool{"blend": true},
	}); err == nil {
		t.Error("unknown blend mode accepted")
	}
}
