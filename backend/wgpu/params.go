// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"math"

	"github.com/gogpu/vignette"
)

// gpuParamsSize is the byte size of the Params uniform block: sixteen
// 32-bit words.
const gpuParamsSize = 64

// GPUParams is the GPU-compatible layout of vignette.Params plus the
// frame dimensions. Field order and types must match the Params struct
// in shaders/vignette.wgsl.
type GPUParams struct {
	InnerRadius   float32
	OuterRadius   float32
	Opacity       float32
	CenterX       float32
	CenterY       float32
	AspectRatio   float32
	Rotation      float32
	ShapeStrength float32
	ColorR        float32
	ColorG        float32
	ColorB        float32
	UseColor      uint32
	Shape         uint32
	BlendMode     uint32
	Width         uint32
	Height        uint32
}

// convertParams maps a CPU parameter snapshot to the uniform layout.
func convertParams(p vignette.Params, width, height int) GPUParams {
	var useColor uint32
	if p.UseColor {
		useColor = 1
	}
	return GPUParams{
		InnerRadius:   float32(p.InnerRadius),
		OuterRadius:   float32(p.OuterRadius),
		Opacity:       float32(p.Opacity),
		CenterX:       float32(p.Center.X),
		CenterY:       float32(p.Center.Y),
		AspectRatio:   float32(p.AspectRatio),
		Rotation:      float32(p.Rotation),
		ShapeStrength: float32(p.ShapeStrength),
		ColorR:        float32(p.Color.R),
		ColorG:        float32(p.Color.G),
		ColorB:        float32(p.Color.B),
		UseColor:      useColor,
		Shape:         uint32(p.Shape),
		BlendMode:     uint32(p.Blend),
		Width:         uint32(width),
		Height:        uint32(height),
	}
}

// Byte serialization for GPU buffer upload. SPIR-V consumers expect
// little-endian 32-bit words.

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}

// paramsToBytes serializes the uniform block.
func paramsToBytes(p GPUParams) []byte {
	buf := make([]byte, gpuParamsSize)
	writeFloat32(buf, 0, p.InnerRadius)
	writeFloat32(buf, 4, p.OuterRadius)
	writeFloat32(buf, 8, p.Opacity)
	writeFloat32(buf, 12, p.CenterX)
	writeFloat32(buf, 16, p.CenterY)
	writeFloat32(buf, 20, p.AspectRatio)
	writeFloat32(buf, 24, p.Rotation)
	writeFloat32(buf, 28, p.ShapeStrength)
	writeFloat32(buf, 32, p.ColorR)
	writeFloat32(buf, 36, p.ColorG)
	writeFloat32(buf, 40, p.ColorB)
	writeUint32(buf, 44, p.UseColor)
	writeUint32(buf, 48, p.Shape)
	writeUint32(buf, 52, p.BlendMode)
	writeUint32(buf, 56, p.Width)
	writeUint32(buf, 60, p.Height)
	return buf
}
