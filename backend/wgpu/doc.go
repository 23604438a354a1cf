// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu provides the WebGPU backend for the vignette filter.
//
// The backend compiles the embedded WGSL compute shader with
// github.com/gogpu/naga and builds its pipelines through the
// github.com/gogpu/wgpu HAL. Importing the package registers it as the
// library's accelerator:
//
//	import _ "github.com/gogpu/vignette/backend/wgpu"
//
// Pipeline setup runs against a shared device supplied by the host via
// vignette.SetAcceleratorDeviceProvider. Until the HAL exposes buffer
// binding for dispatch, frames are evaluated by a CPU mirror of the
// shader, so registering the backend is always safe: output is identical
// to the pure CPU path.
package wgpu
