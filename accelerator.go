package vignette

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this frame.
// The Filter transparently falls back to CPU evaluation.
var ErrFallbackToCPU = errors.New("vignette: falling back to CPU rendering")

// RenderTarget provides pixel buffer access for accelerated output.
// The Data slice must be in straight-alpha RGBA format, 4 bytes per
// pixel, laid out row by row with the given Stride.
type RenderTarget struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// Accelerator is an optional GPU acceleration provider.
//
// When registered via RegisterAccelerator, Filter.Apply tries the
// accelerator first. If it returns ErrFallbackToCPU or any other error,
// the frame transparently falls back to CPU evaluation.
//
// Implementations are provided by backend packages (e.g., backend/wgpu).
// Users opt in via blank import:
//
//	import _ "github.com/gogpu/vignette/backend/wgpu"
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu").
	Name() string

	// Init initializes backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// ApplyVignette composites the vignette described by p over the
	// target in place. The target holds the source pixels on entry and
	// the filtered pixels on return.
	//
	// Returns ErrFallbackToCPU if the frame cannot be accelerated. On
	// any error the target must still hold the unmodified source
	// pixels: the Filter re-filters the same buffer on the CPU, so a
	// partially written target would be composited twice.
	ApplyVignette(target RenderTarget, p Params) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share a GPU device with an external provider (e.g., a gogpu window).
// When SetDeviceProvider is called, the accelerator reuses the provided
// device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers an accelerator for optional GPU rendering.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration; if it fails, the accelerator is not registered and the
// error is returned.
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("vignette: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	propagateLogger(a, Logger())
	return nil
}

// ActiveAccelerator returns the currently registered accelerator, or nil
// if none.
func ActiveAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling GPU device sharing. If no accelerator is
// registered or it doesn't support device sharing, this is a no-op.
func SetAcceleratorDeviceProvider(provider any) error {
	a := ActiveAccelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}
