package vignette

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/vignette/internal/parallel"
)

// Filter applies the vignette compositor to pixmaps.
//
// A Filter owns a worker pool and a parameter snapshot. Apply copies the
// snapshot under a lock before touching any pixel, so concurrent
// SetParams calls never tear a frame; within one Apply the parameters
// are immutable.
type Filter struct {
	mu         sync.Mutex
	params     Params
	pool       *parallel.WorkerPool
	bandHeight int
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithWorkers sets the number of evaluation goroutines.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) FilterOption {
	return func(f *Filter) {
		if f.pool != nil {
			f.pool.Close()
		}
		f.pool = parallel.NewWorkerPool(n)
	}
}

// WithBandHeight sets the number of pixel rows per work item.
// Zero or negative selects the default band height.
func WithBandHeight(rows int) FilterOption {
	return func(f *Filter) {
		f.bandHeight = rows
	}
}

// NewFilter creates a filter for the given parameters.
// The parameters must be finite and carry valid enum values; callers
// normalize user input with Params.Clamp first.
func NewFilter(p Params, opts ...FilterOption) (*Filter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := &Filter{params: p}
	for _, opt := range opts {
		opt(f)
	}
	if f.pool == nil {
		f.pool = parallel.NewWorkerPool(0)
	}
	return f, nil
}

// Params returns the current parameter snapshot.
func (f *Filter) Params() Params {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params
}

// SetParams replaces the parameter snapshot for subsequent frames.
// Safe to call concurrently with Apply; the running frame keeps its
// own snapshot.
func (f *Filter) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	f.params = p
	f.mu.Unlock()
	return nil
}

// Close releases the filter's worker pool. The filter must not be used
// after Close.
func (f *Filter) Close() {
	if f.pool != nil {
		f.pool.Close()
	}
}

// Apply composites the vignette over src and writes the result to dst.
// src and dst must have identical dimensions; dst may be src for
// in-place filtering.
//
// If an accelerator is registered it is tried first; on any error the
// frame falls back to CPU evaluation.
func (f *Filter) Apply(src, dst *Pixmap) error {
	if src == nil || dst == nil {
		return fmt.Errorf("vignette: src and dst must not be nil")
	}
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return fmt.Errorf("vignette: size mismatch: src %dx%d, dst %dx%d",
			src.Width(), src.Height(), dst.Width(), dst.Height())
	}

	w, h := src.Width(), src.Height()
	if w == 0 || h == 0 {
		return nil
	}

	// Frame-stable snapshot.
	f.mu.Lock()
	p := f.params
	f.mu.Unlock()

	if a := ActiveAccelerator(); a != nil {
		if dst != src {
			copy(dst.Data(), src.Data())
		}
		target := RenderTarget{
			Data:   dst.Data(),
			Width:  w,
			Height: h,
			Stride: w * 4,
		}
		err := a.ApplyVignette(target, p)
		if err == nil {
			return nil
		}
		Logger().Warn("vignette: accelerator failed, using CPU",
			slog.String("accelerator", a.Name()),
			slog.String("error", err.Error()))
		if dst != src {
			// Out of place the source is intact, so resync dst even if
			// the accelerator broke the no-write-on-error contract.
			// In place there is nothing to resync from; the contract
			// carries the guarantee.
			copy(dst.Data(), src.Data())
		}
	}

	bands := parallel.SplitRows(h, f.bandHeight)
	if len(bands) <= 1 || f.pool == nil || !f.pool.IsRunning() {
		applyBand(src, dst, p, 0, h)
		return nil
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		band := b
		work[i] = func() {
			applyBand(src, dst, p, band.Y0, band.Y1)
		}
	}
	f.pool.ExecuteAll(work)

	Logger().Debug("vignette: frame filtered",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("bands", len(bands)))
	return nil
}

// applyBand evaluates the kernel over rows [y0, y1). Pixels are sampled
// at their centers, matching the texture coordinates a rasterizer would
// interpolate.
func applyBand(src, dst *Pixmap, p Params, y0, y1 int) {
	w, h := src.Width(), src.Height()
	srcData := src.Data()
	dstData := dst.Data()

	invW := 1 / float64(w)
	invH := 1 / float64(h)

	for y := y0; y < y1; y++ {
		v := (float64(y) + 0.5) * invH
		row := y * w * 4

		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) * invW
			i := row + x*4

			c := RGBA{
				R: float64(srcData[i+0]) / 255,
				G: float64(srcData[i+1]) / 255,
				B: float64(srcData[i+2]) / 255,
				A: float64(srcData[i+3]) / 255,
			}

			out := Evaluate(u, v, c, p)

			dstData[i+0] = uint8(clamp255(out.R * 255))
			dstData[i+1] = uint8(clamp255(out.G * 255))
			dstData[i+2] = uint8(clamp255(out.B * 255))
			dstData[i+3] = uint8(clamp255(out.A * 255))
		}
	}
}
