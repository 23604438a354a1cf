// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/vignette"
)

//go:embed shaders/vignette.wgsl
var vignetteShaderWGSL string

func init() {
	if err := vignette.RegisterAccelerator(New()); err != nil {
		vignette.Logger().Warn("wgpu: accelerator registration failed",
			slog.String("error", err.Error()))
	}
}

// VignetteAccelerator evaluates the vignette through a WGSL compute
// pipeline. Shader compilation happens at Init; device-bound resources
// (module, layouts, pipeline) are created once a host shares its device
// through SetDeviceProvider.
//
// HAL buffer binding is not exposed yet, so ApplyVignette dispatches the
// CPU mirror of the shader. The pipeline setup still runs against real
// devices, which keeps the backend honest about shader validity and
// resource lifetimes.
type VignetteAccelerator struct {
	mu sync.Mutex

	logger *slog.Logger

	device hal.Device
	queue  hal.Queue

	shaderModule     hal.ShaderModule
	pipeline         hal.ComputePipeline
	pipelineLayout   hal.PipelineLayout
	paramsBindLayout hal.BindGroupLayout
	pixelsBindLayout hal.BindGroupLayout

	// Compiled SPIR-V, cached for verification and later dispatch.
	spirvCode []uint32

	shaderReady   bool
	pipelineReady bool
}

// New creates an unregistered accelerator. Most callers rely on the
// package's blank-import registration instead.
func New() *VignetteAccelerator {
	return &VignetteAccelerator{logger: vignette.Logger()}
}

// Name returns the accelerator name.
func (a *VignetteAccelerator) Name() string { return "wgpu" }

// SetLogger replaces the accelerator's logger. Called by the root
// package when its logger changes.
func (a *VignetteAccelerator) SetLogger(l *slog.Logger) {
	a.mu.Lock()
	a.logger = l
	a.mu.Unlock()
}

// Init compiles the WGSL shader to SPIR-V. It needs no GPU device and
// never touches one; device resources wait for SetDeviceProvider.
func (a *VignetteAccelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	spirvBytes, err := naga.Compile(vignetteShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile vignette shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	a.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range a.spirvCode {
		a.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	a.shaderReady = true
	a.logger.Debug("wgpu: vignette shader compiled",
		slog.Int("spirv_words", len(a.spirvCode)))
	return nil
}

// halProvider is the device-sharing surface hosts implement to hand over
// raw HAL handles.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// SetDeviceProvider receives a shared GPU device from the host and
// builds the compute pipeline on it. Providers exposing HAL handles
// (HalDevice/HalQueue) bind immediately; gpucontext providers are
// accepted but cannot be bound until the HAL bridge lands.
func (a *VignetteAccelerator) SetDeviceProvider(provider any) error {
	hp, ok := provider.(halProvider)
	if !ok {
		if _, ok := provider.(DeviceHandle); ok {
			a.mu.Lock()
			l := a.logger
			a.mu.Unlock()
			l.Debug("wgpu: gpucontext provider accepted, dispatch stays on CPU mirror")
			return nil
		}
		return fmt.Errorf("wgpu: unsupported device provider %T", provider)
	}

	device, _ := hp.HalDevice().(hal.Device)
	queue, _ := hp.HalQueue().(hal.Queue)
	if device == nil || queue == nil {
		return fmt.Errorf("wgpu: provider returned no usable device")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.shaderReady {
		return fmt.Errorf("wgpu: accelerator not initialized")
	}

	a.device = device
	a.queue = queue

	if err := a.createPipeline(); err != nil {
		a.destroyLocked()
		return err
	}
	a.pipelineReady = true
	a.logger.Info("wgpu: vignette pipeline ready")
	return nil
}

// createPipeline builds the shader module, bind group layouts and the
// compute pipeline. Caller holds the mutex.
func (a *VignetteAccelerator) createPipeline() error {
	module, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "vignette_shader",
		Source: hal.ShaderSource{
			SPIRV: a.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	a.shaderModule = module

	paramsLayout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "vignette_params_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: gpuParamsSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create params bind group layout: %w", err)
	}
	a.paramsBindLayout = paramsLayout

	pixelsLayout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "vignette_pixels_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pixels bind group layout: %w", err)
	}
	a.pixelsBindLayout = pixelsLayout

	layout, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "vignette_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{a.paramsBindLayout, a.pixelsBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	a.pipelineLayout = layout

	pipeline, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "vignette_pipeline",
		Layout: a.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     a.shaderModule,
			EntryPoint: "cs_vignette",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create compute pipeline: %w", err)
	}
	a.pipeline = pipeline

	return nil
}

// ApplyVignette composites the vignette over the target in place.
//
// The uniform block is prepared for dispatch on every call; until HAL
// buffer binding is available the pixels run through the CPU mirror,
// which produces output identical to the reference kernel.
func (a *VignetteAccelerator) ApplyVignette(target vignette.RenderTarget, p vignette.Params) error {
	a.mu.Lock()
	shaderReady := a.shaderReady
	a.mu.Unlock()

	if !shaderReady {
		return vignette.ErrFallbackToCPU
	}
	if target.Data == nil || target.Width <= 0 || target.Height <= 0 {
		return fmt.Errorf("wgpu: invalid render target %dx%d", target.Width, target.Height)
	}
	if target.Stride < target.Width*4 {
		return fmt.Errorf("wgpu: stride %d too small for width %d", target.Stride, target.Width)
	}

	gp := convertParams(p, target.Width, target.Height)
	uniform := paramsToBytes(gp)
	_ = uniform // uploaded once HAL exposes buffer binding

	a.applyMirror(target, p)
	return nil
}

// applyMirror runs the shader's algorithm on the CPU via the reference
// kernel. Same sampling as the dispatch: one evaluation per pixel at the
// pixel center.
func (a *VignetteAccelerator) applyMirror(target vignette.RenderTarget, p vignette.Params) {
	invW := 1 / float64(target.Width)
	invH := 1 / float64(target.Height)

	for y := 0; y < target.Height; y++ {
		v := (float64(y) + 0.5) * invH
		row := y * target.Stride

		for x := 0; x < target.Width; x++ {
			i := row + x*4
			src := vignette.RGBA{
				R: float64(target.Data[i+0]) / 255,
				G: float64(target.Data[i+1]) / 255,
				B: float64(target.Data[i+2]) / 255,
				A: float64(target.Data[i+3]) / 255,
			}

			out := vignette.Evaluate((float64(x)+0.5)*invW, v, src, p)

			target.Data[i+0] = quantize(out.R)
			target.Data[i+1] = quantize(out.G)
			target.Data[i+2] = quantize(out.B)
			target.Data[i+3] = quantize(out.A)
		}
	}
}

func quantize(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c * 255)
}

// SPIRVCode returns the compiled SPIR-V code (for verification).
func (a *VignetteAccelerator) SPIRVCode() []uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.spirvCode
}

// IsShaderReady reports whether the shader compiled successfully.
func (a *VignetteAccelerator) IsShaderReady() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shaderReady
}

// IsPipelineReady reports whether device pipelines are built.
func (a *VignetteAccelerator) IsPipelineReady() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pipelineReady
}

// Close releases all GPU resources.
func (a *VignetteAccelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyLocked()
}

// destroyLocked releases device resources in reverse creation order.
// Caller holds the mutex.
func (a *VignetteAccelerator) destroyLocked() {
	if a.device == nil {
		return
	}

	if a.pipeline != nil {
		a.device.DestroyComputePipeline(a.pipeline)
		a.pipeline = nil
	}
	if a.pipelineLayout != nil {
		a.device.DestroyPipelineLayout(a.pipelineLayout)
		a.pipelineLayout = nil
	}
	if a.paramsBindLayout != nil {
		a.device.DestroyBindGroupLayout(a.paramsBindLayout)
		a.paramsBindLayout = nil
	}
	if a.pixelsBindLayout != nil {
		a.device.DestroyBindGroupLayout(a.pixelsBindLayout)
		a.pixelsBindLayout = nil
	}
	if a.shaderModule != nil {
		a.device.DestroyShaderModule(a.shaderModule)
		a.shaderModule = nil
	}

	a.pipelineReady = false
}
